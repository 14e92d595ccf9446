package store

import (
	"cmp"
	"slices"
)

// sortNewestFirst orders by creation time descending. Records created in the
// same instant fall back to insertion order, newest first.
func sortNewestFirst(recs []storedRecord) {
	slices.SortFunc(recs, func(a, b storedRecord) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})
}
