package repository

import (
	"context"
	"fmt"

	"timeline/database"
	"timeline/models"
)

// MoveRepository implements the MoveRepository interface
type MoveRepository struct {
	q queryable
}

// NewMoveRepository creates a new move repository
func NewMoveRepository(db *database.DB) *MoveRepository {
	return &MoveRepository{q: db.Pool}
}

// newMoveRepositoryWithTx creates a new move repository with a transaction
func newMoveRepositoryWithTx(tx queryable) *MoveRepository {
	return &MoveRepository{q: tx}
}

// Create inserts a new move record and sets its ID
func (r *MoveRepository) Create(ctx context.Context, move *models.Move) error {
	query := `
		INSERT INTO moves (session_id, card_id, placed_index, correct_index, correct,
		                   time_to_place_seconds, attempts, points_awarded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		move.SessionID,
		move.CardID,
		move.PlacedIndex,
		move.CorrectIndex,
		move.Correct,
		move.TimeToPlaceSeconds,
		move.Attempts,
		move.PointsAwarded,
	).Scan(&move.ID, &move.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create move for session %d: %w", move.SessionID, err)
	}

	return nil
}

// GetBySession returns all moves for a session in order of creation
func (r *MoveRepository) GetBySession(ctx context.Context, sessionID int64) ([]*models.Move, error) {
	query := `
		SELECT id, session_id, card_id, placed_index, correct_index, correct,
		       time_to_place_seconds, attempts, points_awarded, created_at
		FROM moves
		WHERE session_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.q.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves for session %d: %w", sessionID, err)
	}
	defer rows.Close()

	var moves []*models.Move
	for rows.Next() {
		var move models.Move
		if err := rows.Scan(
			&move.ID,
			&move.SessionID,
			&move.CardID,
			&move.PlacedIndex,
			&move.CorrectIndex,
			&move.Correct,
			&move.TimeToPlaceSeconds,
			&move.Attempts,
			&move.PointsAwarded,
			&move.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, &move)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read moves: %w", err)
	}

	return moves, nil
}

// CountAttempts returns how many times a card has been attempted in a session
func (r *MoveRepository) CountAttempts(ctx context.Context, sessionID, cardID int64) (int, error) {
	query := `SELECT COUNT(*) FROM moves WHERE session_id = $1 AND card_id = $2`

	var count int
	if err := r.q.QueryRow(ctx, query, sessionID, cardID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attempts for card %d in session %d: %w", cardID, sessionID, err)
	}

	return count, nil
}

// GetStatsByPlayer returns aggregated move statistics for a player
func (r *MoveRepository) GetStatsByPlayer(ctx context.Context, playerName string) (*models.MoveStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE m.correct),
			COUNT(*) FILTER (WHERE NOT m.correct),
			COALESCE(SUM(m.points_awarded), 0),
			COALESCE(MAX(m.points_awarded), 0)
		FROM moves m
		JOIN game_sessions s ON s.id = m.session_id
		WHERE s.player_name = $1
	`

	var stats models.MoveStats
	err := r.q.QueryRow(ctx, query, playerName).Scan(
		&stats.TotalMoves,
		&stats.CorrectMoves,
		&stats.IncorrectMoves,
		&stats.TotalPoints,
		&stats.BestMovePoints,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get move stats for player %q: %w", playerName, err)
	}

	return &stats, nil
}
