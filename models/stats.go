package models

// SessionStats represents aggregated session outcomes for one player
type SessionStats struct {
	SessionsPlayed    int `json:"sessionsPlayed"`
	SessionsWon       int `json:"sessionsWon"`
	SessionsAbandoned int `json:"sessionsAbandoned"`
	BestScore         int `json:"bestScore"`
	TotalScore        int `json:"totalScore"`
}

// MoveStats represents aggregated placement statistics
type MoveStats struct {
	TotalMoves     int `json:"totalMoves"`
	CorrectMoves   int `json:"correctMoves"`
	IncorrectMoves int `json:"incorrectMoves"`
	TotalPoints    int `json:"totalPoints"`
	BestMovePoints int `json:"bestMovePoints"`
}

// PlayerStats represents combined statistics for a player
type PlayerStats struct {
	PlayerName        string  `json:"playerName"`
	SessionsPlayed    int     `json:"sessionsPlayed"`
	SessionsWon       int     `json:"sessionsWon"`
	SessionsAbandoned int     `json:"sessionsAbandoned"`
	WinPercentage     float64 `json:"winPercentage"`
	TotalMoves        int     `json:"totalMoves"`
	CorrectMoves      int     `json:"correctMoves"`
	Accuracy          float64 `json:"accuracy"` // Percentage as 0-100
	TotalPoints       int     `json:"totalPoints"`
	BestSessionScore  int     `json:"bestSessionScore"`
}

// ScoreboardEntry represents a player's entry in the scoreboard
type ScoreboardEntry struct {
	Rank           int     `json:"rank"`
	PlayerName     string  `json:"playerName"`
	SessionsPlayed int     `json:"sessionsPlayed"`
	SessionsWon    int     `json:"sessionsWon"`
	WinPercentage  float64 `json:"winPercentage"`
	Accuracy       float64 `json:"accuracy"` // Percentage as 0-100
	BestScore      int     `json:"bestScore"`
	TotalPoints    int     `json:"totalPoints"`
}
