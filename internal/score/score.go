// Package score holds padel results: up to five sets, each scored for the
// local and the visitor side.
//
// A set without a local value ends the result, every later set must be
// empty as well.
package score

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const MaxSets = 5

var (
	ErrMissingRequiredSet = errors.New("the first set is required")
	ErrInvalidScoreFormat = errors.New("set score is not a valid number")
	ErrTooManySets        = fmt.Errorf("at most %d sets can be recorded", MaxSets)
	ErrNonContiguous      = errors.New("set recorded after an empty set")
)

// Set is one complete set result
type Set struct {
	Local   int
	Visitor int
}

func (s Set) String() string {
	return fmt.Sprintf("%d-%d", s.Local, s.Visitor)
}

// SetScore is immutable once built, use Parse or FromColumns.
type SetScore struct {
	local   [MaxSets]*int
	visitor [MaxSets]*int
}

// Parse builds a SetScore from alternating local/visitor entries as they
// come from a result form. Trailing empty entries are dropped, the first
// set is mandatory and a visitor value may be missing only for the last
// local value given.
func Parse(raw []string) (SetScore, error) {
	var s SetScore

	entries := make([]string, len(raw))
	for i, r := range raw {
		entries[i] = strings.TrimSpace(r)
	}
	for len(entries) > 0 && entries[len(entries)-1] == "" {
		entries = entries[:len(entries)-1]
	}

	if len(entries) < 2 {
		return s, ErrMissingRequiredSet
	}
	if len(entries) > 2*MaxSets {
		return s, ErrTooManySets
	}

	for i, e := range entries {
		v, err := strconv.Atoi(e)
		if err != nil || v < 0 {
			return SetScore{}, fmt.Errorf("set %d %s score %q: %w", i/2+1, side(i), e, ErrInvalidScoreFormat)
		}
		if i%2 == 0 {
			s.local[i/2] = &v
		} else {
			s.visitor[i/2] = &v
		}
	}

	return s, nil
}

func side(i int) string {
	if i%2 == 0 {
		return "local"
	}
	return "visitor"
}

// FromColumns rebuilds a score from its stored columns in the order
// local1, visitor1, local2, visitor2 and so on.
func FromColumns(cols [2 * MaxSets]*int) (SetScore, error) {
	var s SetScore
	ended := false
	for i, c := range cols {
		if c == nil {
			ended = true
			continue
		}
		if ended {
			return SetScore{}, fmt.Errorf("set %d %s score: %w", i/2+1, side(i), ErrNonContiguous)
		}
		v := *c
		if i%2 == 0 {
			s.local[i/2] = &v
		} else {
			s.visitor[i/2] = &v
		}
	}
	return s, nil
}

// Columns flattens the score for storage, see FromColumns.
func (s SetScore) Columns() [2 * MaxSets]*int {
	var cols [2 * MaxSets]*int
	for i := 0; i < MaxSets; i++ {
		cols[2*i] = copyInt(s.local[i])
		cols[2*i+1] = copyInt(s.visitor[i])
	}
	return cols
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Local returns the local score of set n, counting from 1.
func (s SetScore) Local(n int) (int, bool) {
	return valueAt(s.local, n)
}

// Visitor returns the visitor score of set n, counting from 1.
func (s SetScore) Visitor(n int) (int, bool) {
	return valueAt(s.visitor, n)
}

func valueAt(values [MaxSets]*int, n int) (int, bool) {
	if n < 1 || n > MaxSets || values[n-1] == nil {
		return 0, false
	}
	return *values[n-1], true
}

// Sets returns the complete sets in order, stopping at the first set
// missing either value.
func (s SetScore) Sets() []Set {
	sets := make([]Set, 0, MaxSets)
	for i := 0; i < MaxSets; i++ {
		if s.local[i] == nil || s.visitor[i] == nil {
			break
		}
		sets = append(sets, Set{Local: *s.local[i], Visitor: *s.visitor[i]})
	}
	return sets
}

// Pairs renders the complete sets as "local-visitor".
func (s SetScore) Pairs() []string {
	sets := s.Sets()
	pairs := make([]string, len(sets))
	for i, set := range sets {
		pairs[i] = set.String()
	}
	return pairs
}

func (s SetScore) LocalScores() []int {
	local, _ := s.scoreLists()
	return local
}

func (s SetScore) VisitorScores() []int {
	_, visitor := s.scoreLists()
	return visitor
}

// Walks the columns in stored order and stops at the first gap, so a
// trailing local value without its visitor is still listed.
func (s SetScore) scoreLists() ([]int, []int) {
	var local, visitor []int
	for i, c := range s.Columns() {
		if c == nil {
			break
		}
		if i%2 == 0 {
			local = append(local, *c)
		} else {
			visitor = append(visitor, *c)
		}
	}
	return local, visitor
}

// SetsWon counts the complete sets each side won. Tied sets count for
// neither.
func (s SetScore) SetsWon() (local int, visitor int) {
	for _, set := range s.Sets() {
		switch {
		case set.Local > set.Visitor:
			local++
		case set.Visitor > set.Local:
			visitor++
		}
	}
	return local, visitor
}

func (s SetScore) IsZero() bool {
	return s.local[0] == nil
}

func (s SetScore) String() string {
	return strings.Join(s.Pairs(), " ")
}
