package repository

import (
	"context"
	"fmt"

	"timeline/database"
	"timeline/models"

	"github.com/jackc/pgx/v5"
)

// SessionRepository implements the SessionRepository interface
type SessionRepository struct {
	q queryable
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{q: db.Pool}
}

// newSessionRepositoryWithTx creates a new session repository with a transaction
func newSessionRepositoryWithTx(tx queryable) *SessionRepository {
	return &SessionRepository{q: tx}
}

// Create inserts a new session and sets its ID
func (r *SessionRepository) Create(ctx context.Context, session *models.GameSession) error {
	query := `
		INSERT INTO game_sessions (player_name, state, score, hand_size)
		VALUES ($1, $2, $3, $4)
		RETURNING id, started_at
	`

	err := r.q.QueryRow(ctx, query,
		session.PlayerName,
		session.State,
		session.Score,
		session.HandSize,
	).Scan(&session.ID, &session.StartedAt)

	if err != nil {
		return fmt.Errorf("failed to create session for %q: %w", session.PlayerName, err)
	}

	return nil
}

// GetByID retrieves a session by its ID
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.GameSession, error) {
	query := `
		SELECT id, player_name, state, score, hand_size,
		       total_moves, correct_moves, incorrect_moves,
		       started_at, completed_at
		FROM game_sessions
		WHERE id = $1
	`

	var session models.GameSession
	err := r.q.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.PlayerName,
		&session.State,
		&session.Score,
		&session.HandSize,
		&session.TotalMoves,
		&session.CorrectMoves,
		&session.IncorrectMoves,
		&session.StartedAt,
		&session.CompletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %d: %w", id, err)
	}

	return &session, nil
}

// Update persists the session's mutable fields
func (r *SessionRepository) Update(ctx context.Context, session *models.GameSession) error {
	query := `
		UPDATE game_sessions
		SET state = $1, score = $2, hand_size = $3,
		    total_moves = $4, correct_moves = $5, incorrect_moves = $6,
		    completed_at = $7
		WHERE id = $8
	`

	result, err := r.q.Exec(ctx, query,
		session.State,
		session.Score,
		session.HandSize,
		session.TotalMoves,
		session.CorrectMoves,
		session.IncorrectMoves,
		session.CompletedAt,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session %d: %w", session.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("session %d not found", session.ID)
	}

	return nil
}

// DealCards records cards as dealt into the session at the given location
func (r *SessionRepository) DealCards(ctx context.Context, sessionID int64, cardIDs []int64, location models.CardLocation) error {
	query := `
		INSERT INTO session_cards (session_id, card_id, location, placed_at)
		VALUES ($1, $2, $3, CASE WHEN $3 = 'timeline' THEN NOW() ELSE NULL END)
	`

	for _, cardID := range cardIDs {
		if _, err := r.q.Exec(ctx, query, sessionID, cardID, location); err != nil {
			return fmt.Errorf("failed to deal card %d into session %d: %w", cardID, sessionID, err)
		}
	}

	return nil
}

// GetTimeline returns the session's placed cards in chronological order
func (r *SessionRepository) GetTimeline(ctx context.Context, sessionID int64) ([]*models.Card, error) {
	return r.getSessionCards(ctx, sessionID, models.CardLocationTimeline)
}

// GetHand returns the cards still in the player's hand
func (r *SessionRepository) GetHand(ctx context.Context, sessionID int64) ([]*models.Card, error) {
	return r.getSessionCards(ctx, sessionID, models.CardLocationHand)
}

func (r *SessionRepository) getSessionCards(ctx context.Context, sessionID int64, location models.CardLocation) ([]*models.Card, error) {
	// Timeline order is chronological; placed_at breaks equal-date ties in
	// placement order. Hand cards keep the same ordering for a stable UI.
	query := `
		SELECT c.id, c.title, c.occurred_at, c.category, c.difficulty, c.description, c.created_at
		FROM session_cards sc
		JOIN cards c ON c.id = sc.card_id
		WHERE sc.session_id = $1 AND sc.location = $2
		ORDER BY c.occurred_at, sc.placed_at NULLS LAST, c.id
	`

	rows, err := r.q.Query(ctx, query, sessionID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s cards for session %d: %w", location, sessionID, err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// MoveCardToTimeline moves a hand card onto the timeline
func (r *SessionRepository) MoveCardToTimeline(ctx context.Context, sessionID, cardID int64) error {
	query := `
		UPDATE session_cards
		SET location = 'timeline', placed_at = NOW()
		WHERE session_id = $1 AND card_id = $2 AND location = 'hand'
	`

	result, err := r.q.Exec(ctx, query, sessionID, cardID)
	if err != nil {
		return fmt.Errorf("failed to move card %d to timeline in session %d: %w", cardID, sessionID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("card %d is not in the hand of session %d", cardID, sessionID)
	}

	return nil
}

// GetRecentByPlayer returns a player's most recent sessions
func (r *SessionRepository) GetRecentByPlayer(ctx context.Context, playerName string, limit int) ([]*models.GameSession, error) {
	query := `
		SELECT id, player_name, state, score, hand_size,
		       total_moves, correct_moves, incorrect_moves,
		       started_at, completed_at
		FROM game_sessions
		WHERE player_name = $1
		ORDER BY started_at DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, playerName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions for player %q: %w", playerName, err)
	}
	defer rows.Close()

	var sessions []*models.GameSession
	for rows.Next() {
		var session models.GameSession
		if err := rows.Scan(
			&session.ID,
			&session.PlayerName,
			&session.State,
			&session.Score,
			&session.HandSize,
			&session.TotalMoves,
			&session.CorrectMoves,
			&session.IncorrectMoves,
			&session.StartedAt,
			&session.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	return sessions, nil
}

// GetPlayerNames returns the distinct player names with at least one session
func (r *SessionRepository) GetPlayerNames(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT player_name FROM game_sessions ORDER BY player_name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list player names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan player name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read player names: %w", err)
	}

	return names, nil
}

// GetStatsByPlayer returns aggregated session outcomes for a player
func (r *SessionRepository) GetStatsByPlayer(ctx context.Context, playerName string) (*models.SessionStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE state = 'won'),
			COUNT(*) FILTER (WHERE state = 'abandoned'),
			COALESCE(MAX(score), 0),
			COALESCE(SUM(score), 0)
		FROM game_sessions
		WHERE player_name = $1
	`

	var stats models.SessionStats
	err := r.q.QueryRow(ctx, query, playerName).Scan(
		&stats.SessionsPlayed,
		&stats.SessionsWon,
		&stats.SessionsAbandoned,
		&stats.BestScore,
		&stats.TotalScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get session stats for player %q: %w", playerName, err)
	}

	return &stats, nil
}
