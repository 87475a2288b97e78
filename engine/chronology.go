// Package engine implements the placement and scoring rules for the timeline
// game. Every function here is pure: no I/O, no package-level mutable state,
// safe to call from any number of concurrent sessions. Callers are expected to
// validate card data (models.Card.Validate) before invoking the engine.
package engine

import (
	"sort"

	"timeline/models"
)

// Compare orders two cards by occurrence date. It returns -1 if a occurs
// strictly before b, 1 if strictly after, and 0 if the instants are equal.
func Compare(a, b *models.Card) int {
	switch {
	case a.OccurredAt.Before(b.OccurredAt):
		return -1
	case a.OccurredAt.After(b.OccurredAt):
		return 1
	default:
		return 0
	}
}

// SortTimeline returns a copy of the timeline sorted ascending by occurrence
// date. The input slice is never modified. The sort is stable so cards with
// equal dates keep their relative order.
func SortTimeline(timeline []*models.Card) []*models.Card {
	sorted := make([]*models.Card, len(timeline))
	copy(sorted, timeline)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j]) < 0
	})
	return sorted
}
