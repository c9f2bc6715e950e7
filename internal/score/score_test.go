package score

import (
	"errors"
	"testing"

	"github.com/AdamBeresnev/padel-rounds/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		raw     []string
		pairs   []string
		local   []int
		visitor []int
	}{
		{
			name:    "trailing empties are trimmed",
			raw:     []string{"10", "8", "", ""},
			pairs:   []string{"10-8"},
			local:   []int{10},
			visitor: []int{8},
		},
		{
			name:    "two sets",
			raw:     []string{"10", "8", "11", "6"},
			pairs:   []string{"10-8", "11-6"},
			local:   []int{10, 11},
			visitor: []int{8, 6},
		},
		{
			name:    "five sets",
			raw:     []string{"6", "4", "3", "6", "7", "5", "6", "7", "7", "6"},
			pairs:   []string{"6-4", "3-6", "7-5", "6-7", "7-6"},
			local:   []int{6, 3, 7, 6, 7},
			visitor: []int{4, 6, 5, 7, 6},
		},
		{
			name:    "local value without visitor",
			raw:     []string{"6", "4", "5", ""},
			pairs:   []string{"6-4"},
			local:   []int{6, 5},
			visitor: []int{4},
		},
		{
			name:    "whitespace counts as empty",
			raw:     []string{" 6", "4 ", "  ", ""},
			pairs:   []string{"6-4"},
			local:   []int{6},
			visitor: []int{4},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.pairs, s.Pairs())
			assert.Equal(t, tc.local, s.LocalScores())
			assert.Equal(t, tc.visitor, s.VisitorScores())
		})
	}
}

func TestParse_OnlyFirstSetPresent(t *testing.T) {
	s, err := Parse([]string{"10", "8", "", ""})
	require.NoError(t, err)

	local, ok := s.Local(1)
	require.True(t, ok)
	assert.Equal(t, 10, local)
	visitor, ok := s.Visitor(1)
	require.True(t, ok)
	assert.Equal(t, 8, visitor)

	for n := 2; n <= MaxSets; n++ {
		_, ok := s.Local(n)
		assert.False(t, ok, "local %d", n)
		_, ok = s.Visitor(n)
		assert.False(t, ok, "visitor %d", n)
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		raw      []string
		expected error
	}{
		{"all empty", []string{"", ""}, ErrMissingRequiredSet},
		{"nil input", nil, ErrMissingRequiredSet},
		{"only local", []string{"6", ""}, ErrMissingRequiredSet},
		{"not a number", []string{"10", "abc"}, ErrInvalidScoreFormat},
		{"gap in the middle", []string{"6", "4", "", "6"}, ErrInvalidScoreFormat},
		{"negative", []string{"6", "-1"}, ErrInvalidScoreFormat},
		{"too many sets", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}, ErrTooManySets},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.expected), "got %v", err)
		})
	}
}

func TestParse_DoesNotModifyInput(t *testing.T) {
	raw := []string{"10", "8", "", ""}
	_, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "8", "", ""}, raw)
}

func TestPairs_Idempotent(t *testing.T) {
	s, err := Parse([]string{"6", "2", "6", "3"})
	require.NoError(t, err)
	assert.Equal(t, s.Pairs(), s.Pairs())

	var empty SetScore
	assert.Empty(t, empty.Pairs())
	assert.True(t, empty.IsZero())
}

func TestColumnsRoundTrip(t *testing.T) {
	s, err := Parse([]string{"6", "4", "3", "6", "7"})
	require.NoError(t, err)

	cols := s.Columns()
	assert.Equal(t, 6, *cols[0])
	assert.Equal(t, 4, *cols[1])
	assert.Equal(t, 7, *cols[4])
	assert.Nil(t, cols[5])
	assert.Nil(t, cols[9])

	rebuilt, err := FromColumns(cols)
	require.NoError(t, err)
	assert.Equal(t, s, rebuilt)

	// Columns hands out copies
	*cols[0] = 99
	local, _ := s.Local(1)
	assert.Equal(t, 6, local)
}

func TestFromColumns_RejectsGaps(t *testing.T) {
	var cols [2 * MaxSets]*int
	cols[0] = utils.Ptr(6)
	cols[1] = utils.Ptr(4)
	cols[4] = utils.Ptr(6)

	_, err := FromColumns(cols)
	assert.ErrorIs(t, err, ErrNonContiguous)
}

func TestSetsWon(t *testing.T) {
	s, err := Parse([]string{"6", "4", "3", "6", "7", "5", "5"})
	require.NoError(t, err)

	local, visitor := s.SetsWon()
	assert.Equal(t, 2, local)
	assert.Equal(t, 1, visitor)
	assert.Equal(t, "6-4 3-6 7-5", s.String())
}
