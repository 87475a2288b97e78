package engine

import (
	"fmt"
	"math/rand"
	"sync"

	"timeline/models"
)

// Template pools for placement feedback. Every template names the card's
// title and 4-digit year; corrective templates also take a direction.
var (
	correctTemplates = []string{
		"Correct! %s happened in %d.",
		"Nice one! %s took place in %d.",
		"Spot on! %s was indeed %d.",
		"Well played! %s lands right there in %d.",
	}

	incorrectTemplates = []string{
		"Not quite. %s (%d) belongs %s in the timeline.",
		"Close, but %s happened in %d, so it goes %s.",
		"Wrong spot. %s (%d) should be placed %s.",
	}

	emptyTimelineTemplate = "That's not it. %s happened in %d, try a different position."
)

// FeedbackGenerator picks feedback messages from the template pools using its
// own pseudo-random source, so tests can seed it and assert pool membership.
// Safe for concurrent use.
type FeedbackGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFeedbackGenerator creates a feedback generator seeded from src.
func NewFeedbackGenerator(src rand.Source) *FeedbackGenerator {
	return &FeedbackGenerator{rng: rand.New(src)}
}

// Generate produces the feedback message for one placement outcome.
// The result is always non-empty and always names the card.
func (g *FeedbackGenerator) Generate(card *models.Card, timelineLen, placedPosition, correctPosition int, isCorrect bool) string {
	year := card.Year()

	if isCorrect {
		return fmt.Sprintf(g.pick(correctTemplates), card.Title, year)
	}

	if timelineLen == 0 {
		return fmt.Sprintf(emptyTimelineTemplate, card.Title, year)
	}

	direction := "earlier"
	if placedPosition < correctPosition {
		direction = "later"
	}
	return fmt.Sprintf(g.pick(incorrectTemplates), card.Title, year, direction)
}

func (g *FeedbackGenerator) pick(pool []string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return pool[g.rng.Intn(len(pool))]
}
