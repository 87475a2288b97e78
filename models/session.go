package models

import "time"

// SessionState represents the lifecycle state of a game session
type SessionState string

const (
	SessionStatePlaying   SessionState = "playing"
	SessionStateWon       SessionState = "won"
	SessionStateAbandoned SessionState = "abandoned"
)

// CardLocation says where a dealt card currently sits within a session
type CardLocation string

const (
	CardLocationTimeline CardLocation = "timeline"
	CardLocationHand     CardLocation = "hand"
)

// GameSession represents one play-through in the database
type GameSession struct {
	ID             int64        `db:"id" json:"id"`
	PlayerName     string       `db:"player_name" json:"playerName"`
	State          SessionState `db:"state" json:"state"`
	Score          int          `db:"score" json:"score"`
	HandSize       int          `db:"hand_size" json:"handSize"`
	TotalMoves     int          `db:"total_moves" json:"totalMoves"`
	CorrectMoves   int          `db:"correct_moves" json:"correctMoves"`
	IncorrectMoves int          `db:"incorrect_moves" json:"incorrectMoves"`
	StartedAt      time.Time    `db:"started_at" json:"startedAt"`
	CompletedAt    *time.Time   `db:"completed_at" json:"completedAt,omitempty"`
}

// Move represents one recorded placement attempt
type Move struct {
	ID                 int64     `db:"id" json:"id"`
	SessionID          int64     `db:"session_id" json:"sessionId"`
	CardID             int64     `db:"card_id" json:"cardId"`
	PlacedIndex        int       `db:"placed_index" json:"placedIndex"`
	CorrectIndex       int       `db:"correct_index" json:"correctIndex"`
	Correct            bool      `db:"correct" json:"correct"`
	TimeToPlaceSeconds float64   `db:"time_to_place_seconds" json:"timeToPlaceSeconds"`
	Attempts           int       `db:"attempts" json:"attempts"`
	PointsAwarded      int       `db:"points_awarded" json:"pointsAwarded"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
}

// SessionDetail bundles a session with its current timeline and hand
// (returned to the caller, not stored)
type SessionDetail struct {
	Session  *GameSession `json:"session"`
	Timeline []*Card      `json:"timeline"`
	Hand     []*Card      `json:"hand"`
}

// MoveResult represents the outcome of a submitted placement (returned to the caller)
type MoveResult struct {
	Correct         bool   `json:"correct"`
	CorrectPosition int    `json:"correctPosition"`
	Feedback        string `json:"feedback"`
	PointsAwarded   int    `json:"pointsAwarded"`
	SessionScore    int    `json:"sessionScore"`
	HandSize        int    `json:"handSize"`
	WonGame         bool   `json:"wonGame"`
	Card            *Card  `json:"card"`
}
