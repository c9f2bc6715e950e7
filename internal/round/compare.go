package round

import (
	"cmp"
	"fmt"
	"slices"
)

// UnorderableError is returned when two phases have no defined order
// relative to each other.
type UnorderableError struct {
	A, B   Key
	Reason string
}

func (e *UnorderableError) Error() string {
	return fmt.Sprintf("cannot order rounds %q and %q: %s", e.A, e.B, e.Reason)
}

// Compare returns -1, 0 or +1 like cmp.Compare.
//
// Categories decide first and Gold sorts before Silver, Bronze and Wood.
// Within a category, knockout and placement rounds compare by their
// position in the ranking table with the more decisive round sorting
// last, so a Final is greater than a Semifinal. Any ranked round is
// greater than a pool. Identical rounds fall back to the number of teams.
func Compare(a, b Key) (int, error) {
	if !a.Category.Valid() || !b.Category.Valid() {
		return 0, &UnorderableError{A: a, B: b, Reason: "unknown category"}
	}
	if a.Kind != b.Kind && (!orderable(a.Kind) || !orderable(b.Kind)) {
		return 0, &UnorderableError{A: a, B: b, Reason: "round has no ranking"}
	}

	if a.Category != b.Category {
		return cmp.Compare(categoryPriority[a.Category], categoryPriority[b.Category]), nil
	}

	if a.Kind == b.Kind {
		return cmp.Compare(a.Teams, b.Teams), nil
	}

	pa, aRanked := a.Kind.ranked()
	pb, bRanked := b.Kind.ranked()
	switch {
	case aRanked && bRanked:
		// Earlier in the table is greater
		return cmp.Compare(pb, pa), nil
	case aRanked:
		return 1, nil
	case bRanked:
		return -1, nil
	}

	// Both are pools
	return 0, &UnorderableError{A: a, B: b, Reason: "different pools are not ranked against each other"}
}

func orderable(k Kind) bool {
	_, ok := k.ranked()
	return ok || k.IsPool()
}

func Less(a, b Key) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}

// Sort orders keys ascending. On error keys is left untouched.
func Sort(keys []Key) error {
	return SortFunc(keys, func(k Key) Key { return k })
}

// SortFunc stably orders items by the phase key each one maps to. If any
// pair cannot be ordered the first error is returned and items is left
// in its original order.
func SortFunc[T any](items []T, key func(T) Key) error {
	sorted := slices.Clone(items)
	var sortErr error
	slices.SortStableFunc(sorted, func(x, y T) int {
		if sortErr != nil {
			return 0
		}
		c, err := Compare(key(x), key(y))
		if err != nil {
			sortErr = err
			return 0
		}
		return c
	})
	if sortErr != nil {
		return sortErr
	}

	copy(items, sorted)
	return nil
}
