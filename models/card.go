package models

import (
	"fmt"
	"time"
)

// Card represents a historical event card in the database
type Card struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	OccurredAt  time.Time `db:"occurred_at" json:"occurredAt"`
	Category    string    `db:"category" json:"category"`
	Difficulty  int       `db:"difficulty" json:"difficulty"`
	Description string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}

// Validate checks the boundary contract for a card before it may enter a deck
// or a placement request. The engine assumes cards have already passed this.
func (c *Card) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("card title must not be empty")
	}
	if c.OccurredAt.IsZero() {
		return fmt.Errorf("card %q has no occurrence date", c.Title)
	}
	if c.Category == "" {
		return fmt.Errorf("card %q has no category", c.Title)
	}
	if c.Difficulty < 1 || c.Difficulty > 5 {
		return fmt.Errorf("card %q difficulty %d outside [1,5]", c.Title, c.Difficulty)
	}
	return nil
}

// Year returns the 4-digit year of the card's occurrence date
func (c *Card) Year() int {
	return c.OccurredAt.Year()
}
