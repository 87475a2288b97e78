package testutil

import (
	"time"

	"timeline/models"
)

// CreateTestCard creates a test card with default values
func CreateTestCard(title string, year int) *models.Card {
	return &models.Card{
		Title:      title,
		OccurredAt: time.Date(year, 6, 15, 0, 0, 0, 0, time.UTC),
		Category:   "History",
		Difficulty: 2,
	}
}

// CreateTestCardWithDetails creates a test card with a specific category and difficulty
func CreateTestCardWithDetails(title string, year int, category string, difficulty int) *models.Card {
	card := CreateTestCard(title, year)
	card.Category = category
	card.Difficulty = difficulty
	return card
}

// CreateTestSession creates a playing session with default values
func CreateTestSession(playerName string, handSize int) *models.GameSession {
	return &models.GameSession{
		PlayerName: playerName,
		State:      models.SessionStatePlaying,
		HandSize:   handSize,
	}
}

// CreateTestMove creates a test move for a session and card
func CreateTestMove(sessionID, cardID int64, placedIndex, correctIndex int, correct bool, points int) *models.Move {
	return &models.Move{
		SessionID:          sessionID,
		CardID:             cardID,
		PlacedIndex:        placedIndex,
		CorrectIndex:       correctIndex,
		Correct:            correct,
		TimeToPlaceSeconds: 2.5,
		Attempts:           1,
		PointsAwarded:      points,
	}
}
