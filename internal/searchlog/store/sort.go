package store

import (
	"cmp"
	"slices"

	"udaan/internal/searchlog/models"
)

func sortNewestFirst(entries []models.Entry) {
	slices.SortStableFunc(entries, func(a, b models.Entry) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
