package repository

import (
	"context"
	"fmt"

	"timeline/database"
	"timeline/models"

	"github.com/jackc/pgx/v5"
)

// CardRepository implements the CardRepository interface
type CardRepository struct {
	q queryable
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *database.DB) *CardRepository {
	return &CardRepository{q: db.Pool}
}

// newCardRepositoryWithTx creates a new card repository with a transaction
func newCardRepositoryWithTx(tx queryable) *CardRepository {
	return &CardRepository{q: tx}
}

// Create inserts a new card
func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	query := `
		INSERT INTO cards (title, occurred_at, category, difficulty, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		card.Title,
		card.OccurredAt,
		card.Category,
		card.Difficulty,
		card.Description,
	).Scan(&card.ID, &card.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create card %q: %w", card.Title, err)
	}

	return nil
}

// GetByID retrieves a card by its ID
func (r *CardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	query := `
		SELECT id, title, occurred_at, category, difficulty, description, created_at
		FROM cards
		WHERE id = $1
	`

	var card models.Card
	err := r.q.QueryRow(ctx, query, id).Scan(
		&card.ID,
		&card.Title,
		&card.OccurredAt,
		&card.Category,
		&card.Difficulty,
		&card.Description,
		&card.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", id, err)
	}

	return &card, nil
}

// GetAll returns cards, optionally filtered by category and maximum difficulty
func (r *CardRepository) GetAll(ctx context.Context, category string, maxDifficulty int) ([]*models.Card, error) {
	query := `
		SELECT id, title, occurred_at, category, difficulty, description, created_at
		FROM cards
	`
	query, args := appendCardFilters(query, category, maxDifficulty)
	query += ` ORDER BY occurred_at`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// GetRandomDeck returns n random cards matching the filters
func (r *CardRepository) GetRandomDeck(ctx context.Context, n int, category string, maxDifficulty int) ([]*models.Card, error) {
	query := `
		SELECT id, title, occurred_at, category, difficulty, description, created_at
		FROM cards
	`
	query, args := appendCardFilters(query, category, maxDifficulty)
	args = append(args, n)
	query += fmt.Sprintf(` ORDER BY RANDOM() LIMIT $%d`, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to deal random cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// appendCardFilters adds WHERE clauses for the optional category and
// difficulty filters and returns the corresponding args
func appendCardFilters(query string, category string, maxDifficulty int) (string, []any) {
	var args []any
	var conditions []string

	if category != "" {
		args = append(args, category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if maxDifficulty > 0 {
		args = append(args, maxDifficulty)
		conditions = append(conditions, fmt.Sprintf("difficulty <= $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	return query, args
}

func scanCards(rows pgx.Rows) ([]*models.Card, error) {
	var cards []*models.Card
	for rows.Next() {
		var card models.Card
		if err := rows.Scan(
			&card.ID,
			&card.Title,
			&card.OccurredAt,
			&card.Category,
			&card.Difficulty,
			&card.Description,
			&card.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	return cards, nil
}
