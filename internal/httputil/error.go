package httputil

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AdamBeresnev/padel-rounds/internal/score"
)

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("bad request", "message", msg, "error", err)
	} else {
		slog.Warn("bad request", "message", msg)
	}
	http.Error(w, msg, http.StatusBadRequest)
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("not found", "message", msg, "error", err)
	} else {
		slog.Warn("not found", "message", msg)
	}
	http.Error(w, msg, http.StatusNotFound)
}

// FromError picks the response for errors coming out of the services.
// Phases that cannot be ordered are stored data problems, so they are 500s.
func FromError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		NotFound(w, msg+": not found", err)
	case errors.Is(err, score.ErrMissingRequiredSet),
		errors.Is(err, score.ErrInvalidScoreFormat),
		errors.Is(err, score.ErrTooManySets):
		BadRequest(w, err.Error(), err)
	default:
		InternalServerError(w, msg, err)
	}
}
