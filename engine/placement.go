package engine

import "timeline/models"

// Verdict is the engine's determination for one placement attempt.
type Verdict struct {
	IsCorrect       bool
	CorrectPosition int
	Feedback        string
}

// ValidatePlacement decides whether inserting card at proposedIndex keeps the
// timeline chronological, and computes the canonical correct index.
//
// The input timeline is treated as already sorted but is re-sorted defensively,
// so a pre-shuffled timeline yields the same result. The canonical position is
// the index of the first entry whose date is on or after the card's date; a
// card with a date equal to an existing entry is therefore placed before that
// entry. Correctness is judged independently by splicing the card in at
// proposedIndex and checking that every adjacent pair is non-decreasing, which
// means that with duplicate dates any chronologically valid index is accepted
// even when it differs from CorrectPosition.
//
// proposedIndex must be within [0, len(timeline)]; out-of-range indices are a
// caller contract violation and must be rejected upstream. The returned
// Verdict carries no feedback text; see FeedbackGenerator.
func ValidatePlacement(card *models.Card, timeline []*models.Card, proposedIndex int) Verdict {
	sorted := SortTimeline(timeline)

	correctPosition := len(sorted)
	for i, existing := range sorted {
		if Compare(existing, card) >= 0 {
			correctPosition = i
			break
		}
	}

	// Splice the card in at the proposed index and check adjacency.
	hypothetical := make([]*models.Card, 0, len(sorted)+1)
	hypothetical = append(hypothetical, sorted[:proposedIndex]...)
	hypothetical = append(hypothetical, card)
	hypothetical = append(hypothetical, sorted[proposedIndex:]...)

	isCorrect := true
	for i := 1; i < len(hypothetical); i++ {
		if Compare(hypothetical[i-1], hypothetical[i]) > 0 {
			isCorrect = false
			break
		}
	}

	return Verdict{
		IsCorrect:       isCorrect,
		CorrectPosition: correctPosition,
	}
}

// Evaluate runs ValidatePlacement and attaches feedback text from the given
// generator. This is the full verdict the service layer records and returns.
func Evaluate(fb *FeedbackGenerator, card *models.Card, timeline []*models.Card, proposedIndex int) Verdict {
	verdict := ValidatePlacement(card, timeline, proposedIndex)
	verdict.Feedback = fb.Generate(card, len(timeline), proposedIndex, verdict.CorrectPosition, verdict.IsCorrect)
	return verdict
}
