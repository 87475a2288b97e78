package service

import (
	"context"
	"fmt"
	"sort"

	"timeline/models"
)

// statsService implements the StatsService interface
type statsService struct {
	uowFactory UnitOfWorkFactory
}

// NewStatsService creates a new stats service
func NewStatsService(uowFactory UnitOfWorkFactory) StatsService {
	return &statsService{
		uowFactory: uowFactory,
	}
}

// GetScoreboard returns the top players with their statistics
func (s *statsService) GetScoreboard(ctx context.Context, limit int) ([]*models.ScoreboardEntry, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	players, err := uow.SessionRepository().GetPlayerNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	entries := make([]*models.ScoreboardEntry, 0, len(players))

	for _, player := range players {
		sessionStats, err := uow.SessionRepository().GetStatsByPlayer(ctx, player)
		if err != nil {
			return nil, fmt.Errorf("failed to get session stats for player %q: %w", player, err)
		}

		moveStats, err := uow.MoveRepository().GetStatsByPlayer(ctx, player)
		if err != nil {
			return nil, fmt.Errorf("failed to get move stats for player %q: %w", player, err)
		}

		entry := &models.ScoreboardEntry{
			PlayerName:     player,
			SessionsPlayed: sessionStats.SessionsPlayed,
			SessionsWon:    sessionStats.SessionsWon,
			BestScore:      sessionStats.BestScore,
			TotalPoints:    moveStats.TotalPoints,
		}
		if sessionStats.SessionsPlayed > 0 {
			entry.WinPercentage = float64(sessionStats.SessionsWon) / float64(sessionStats.SessionsPlayed) * 100
		}
		if moveStats.TotalMoves > 0 {
			entry.Accuracy = float64(moveStats.CorrectMoves) / float64(moveStats.TotalMoves) * 100
		}

		entries = append(entries, entry)
	}

	// Rank by total points, best single score breaking ties
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].BestScore > entries[j].BestScore
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	for i, entry := range entries {
		entry.Rank = i + 1
	}

	return entries, nil
}

// GetPlayerStats returns detailed statistics for a specific player
func (s *statsService) GetPlayerStats(ctx context.Context, playerName string) (*models.PlayerStats, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	sessionStats, err := uow.SessionRepository().GetStatsByPlayer(ctx, playerName)
	if err != nil {
		return nil, fmt.Errorf("failed to get session stats for player %q: %w", playerName, err)
	}
	if sessionStats.SessionsPlayed == 0 {
		return nil, ErrPlayerNotFound
	}

	moveStats, err := uow.MoveRepository().GetStatsByPlayer(ctx, playerName)
	if err != nil {
		return nil, fmt.Errorf("failed to get move stats for player %q: %w", playerName, err)
	}

	stats := &models.PlayerStats{
		PlayerName:        playerName,
		SessionsPlayed:    sessionStats.SessionsPlayed,
		SessionsWon:       sessionStats.SessionsWon,
		SessionsAbandoned: sessionStats.SessionsAbandoned,
		TotalMoves:        moveStats.TotalMoves,
		CorrectMoves:      moveStats.CorrectMoves,
		TotalPoints:       moveStats.TotalPoints,
		BestSessionScore:  sessionStats.BestScore,
	}
	if sessionStats.SessionsPlayed > 0 {
		stats.WinPercentage = float64(sessionStats.SessionsWon) / float64(sessionStats.SessionsPlayed) * 100
	}
	if moveStats.TotalMoves > 0 {
		stats.Accuracy = float64(moveStats.CorrectMoves) / float64(moveStats.TotalMoves) * 100
	}

	return stats, nil
}
