package httputil

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/AdamBeresnev/padel-rounds/internal/score"
	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"missing row", fmt.Errorf("failed to get game: %w", sql.ErrNoRows), http.StatusNotFound},
		{"missing set", score.ErrMissingRequiredSet, http.StatusBadRequest},
		{"bad number", fmt.Errorf("set 1: %w", score.ErrInvalidScoreFormat), http.StatusBadRequest},
		{"too many sets", score.ErrTooManySets, http.StatusBadRequest},
		{"unorderable", &round.UnorderableError{Reason: "x"}, http.StatusInternalServerError},
		{"other", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FromError(rec, "Failed to save result", tc.err)
			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}
