package service

import (
	"context"

	"timeline/events"
	"timeline/models"
)

// CardRepository defines the interface for card data access
type CardRepository interface {
	// Create inserts a new card
	Create(ctx context.Context, card *models.Card) error

	// GetByID retrieves a card by its ID
	GetByID(ctx context.Context, id int64) (*models.Card, error)

	// GetAll returns cards, optionally filtered by category and maximum
	// difficulty (empty string / zero disables the filter)
	GetAll(ctx context.Context, category string, maxDifficulty int) ([]*models.Card, error)

	// GetRandomDeck returns n random cards matching the filters
	GetRandomDeck(ctx context.Context, n int, category string, maxDifficulty int) ([]*models.Card, error)
}

// SessionRepository defines the interface for game session data access
type SessionRepository interface {
	// Create inserts a new session and sets its ID
	Create(ctx context.Context, session *models.GameSession) error

	// GetByID retrieves a session by its ID
	GetByID(ctx context.Context, id int64) (*models.GameSession, error)

	// Update persists the session's mutable fields (state, score, counts, completion)
	Update(ctx context.Context, session *models.GameSession) error

	// DealCards records cards as dealt into the session at the given location
	DealCards(ctx context.Context, sessionID int64, cardIDs []int64, location models.CardLocation) error

	// GetTimeline returns the session's placed cards in chronological order
	GetTimeline(ctx context.Context, sessionID int64) ([]*models.Card, error)

	// GetHand returns the cards still in the player's hand
	GetHand(ctx context.Context, sessionID int64) ([]*models.Card, error)

	// MoveCardToTimeline moves a hand card onto the timeline
	MoveCardToTimeline(ctx context.Context, sessionID, cardID int64) error

	// GetRecentByPlayer returns a player's most recent sessions
	GetRecentByPlayer(ctx context.Context, playerName string, limit int) ([]*models.GameSession, error)

	// GetPlayerNames returns the distinct player names with at least one session
	GetPlayerNames(ctx context.Context) ([]string, error)

	// GetStatsByPlayer returns aggregated session outcomes for a player
	GetStatsByPlayer(ctx context.Context, playerName string) (*models.SessionStats, error)
}

// MoveRepository defines the interface for move data access
type MoveRepository interface {
	// Create inserts a new move record and sets its ID
	Create(ctx context.Context, move *models.Move) error

	// GetBySession returns all moves for a session in order of creation
	GetBySession(ctx context.Context, sessionID int64) ([]*models.Move, error)

	// CountAttempts returns how many times a card has been attempted in a session
	CountAttempts(ctx context.Context, sessionID, cardID int64) (int, error)

	// GetStatsByPlayer returns aggregated move statistics for a player
	GetStatsByPlayer(ctx context.Context, playerName string) (*models.MoveStats, error)
}

// GameService defines the interface for game session operations
type GameService interface {
	// StartSession deals a seed card and a hand, creating a new session
	StartSession(ctx context.Context, playerName string, category string, maxDifficulty int) (*models.SessionDetail, error)

	// SubmitPlacement validates a placement server-side, records the move and
	// applies the verdict to the session. clientCorrect is the verdict the
	// client computed for itself, if it sent one; a disagreeing verdict is
	// rejected with ErrVerdictMismatch.
	SubmitPlacement(ctx context.Context, sessionID, cardID int64, proposedIndex int, timeToPlaceSeconds float64, clientCorrect *bool) (*models.MoveResult, error)

	// AbandonSession marks a playing session as abandoned
	AbandonSession(ctx context.Context, sessionID int64) error

	// GetSession returns a session with its timeline and hand
	GetSession(ctx context.Context, sessionID int64) (*models.SessionDetail, error)
}

// CardService defines the interface for card catalog operations
type CardService interface {
	// ListCards returns cards matching the filters
	ListCards(ctx context.Context, category string, maxDifficulty int) ([]*models.Card, error)

	// GetCard retrieves a single card
	GetCard(ctx context.Context, id int64) (*models.Card, error)

	// CreateCard validates and stores a new card
	CreateCard(ctx context.Context, card *models.Card) (*models.Card, error)
}

// StatsService defines the interface for statistics operations
type StatsService interface {
	// GetScoreboard returns the top players with their statistics
	GetScoreboard(ctx context.Context, limit int) ([]*models.ScoreboardEntry, error)

	// GetPlayerStats returns detailed statistics for a specific player
	GetPlayerStats(ctx context.Context, playerName string) (*models.PlayerStats, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	CardRepository() CardRepository
	SessionRepository() SessionRepository
	MoveRepository() MoveRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
