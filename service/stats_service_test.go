package service

import (
	"context"
	"testing"

	"timeline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetScoreboard(t *testing.T) {
	ctx := context.Background()
	mocks := newGameServiceMocks()
	svc := NewStatsService(mocks.factory)

	mocks.uow.On("Begin", ctx).Return(nil)
	mocks.uow.On("Rollback").Return(nil)

	mocks.sessionRepo.On("GetPlayerNames", ctx).Return([]string{"ada", "charles", "grace"}, nil)

	mocks.sessionRepo.On("GetStatsByPlayer", ctx, "ada").Return(&models.SessionStats{
		SessionsPlayed: 4, SessionsWon: 3, BestScore: 900, TotalScore: 2400,
	}, nil)
	mocks.moveRepo.On("GetStatsByPlayer", ctx, "ada").Return(&models.MoveStats{
		TotalMoves: 40, CorrectMoves: 30, TotalPoints: 2400,
	}, nil)

	mocks.sessionRepo.On("GetStatsByPlayer", ctx, "charles").Return(&models.SessionStats{
		SessionsPlayed: 2, SessionsWon: 2, BestScore: 1100, TotalScore: 2100,
	}, nil)
	mocks.moveRepo.On("GetStatsByPlayer", ctx, "charles").Return(&models.MoveStats{
		TotalMoves: 16, CorrectMoves: 16, TotalPoints: 2100,
	}, nil)

	mocks.sessionRepo.On("GetStatsByPlayer", ctx, "grace").Return(&models.SessionStats{
		SessionsPlayed: 1, BestScore: 150, TotalScore: 150,
	}, nil)
	mocks.moveRepo.On("GetStatsByPlayer", ctx, "grace").Return(&models.MoveStats{
		TotalMoves: 5, CorrectMoves: 2, TotalPoints: 150,
	}, nil)

	entries, err := svc.GetScoreboard(ctx, 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "ada", entries[0].PlayerName)
	assert.Equal(t, 2400, entries[0].TotalPoints)
	assert.InDelta(t, 75.0, entries[0].WinPercentage, 0.001)
	assert.InDelta(t, 75.0, entries[0].Accuracy, 0.001)

	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "charles", entries[1].PlayerName)
	assert.InDelta(t, 100.0, entries[1].Accuracy, 0.001)
}

func TestStatsService_GetPlayerStats(t *testing.T) {
	ctx := context.Background()
	mocks := newGameServiceMocks()
	svc := NewStatsService(mocks.factory)

	mocks.uow.On("Begin", ctx).Return(nil)
	mocks.uow.On("Rollback").Return(nil)

	mocks.sessionRepo.On("GetStatsByPlayer", ctx, "ada").Return(&models.SessionStats{
		SessionsPlayed: 5, SessionsWon: 2, SessionsAbandoned: 1, BestScore: 800, TotalScore: 1900,
	}, nil)
	mocks.moveRepo.On("GetStatsByPlayer", ctx, "ada").Return(&models.MoveStats{
		TotalMoves: 50, CorrectMoves: 35, IncorrectMoves: 15, TotalPoints: 1900, BestMovePoints: 550,
	}, nil)

	stats, err := svc.GetPlayerStats(ctx, "ada")

	require.NoError(t, err)
	assert.Equal(t, "ada", stats.PlayerName)
	assert.Equal(t, 5, stats.SessionsPlayed)
	assert.Equal(t, 2, stats.SessionsWon)
	assert.Equal(t, 1, stats.SessionsAbandoned)
	assert.InDelta(t, 40.0, stats.WinPercentage, 0.001)
	assert.InDelta(t, 70.0, stats.Accuracy, 0.001)
	assert.Equal(t, 800, stats.BestSessionScore)
}

func TestStatsService_GetPlayerStats_UnknownPlayer(t *testing.T) {
	ctx := context.Background()
	mocks := newGameServiceMocks()
	svc := NewStatsService(mocks.factory)

	mocks.uow.On("Begin", ctx).Return(nil)
	mocks.uow.On("Rollback").Return(nil)
	mocks.sessionRepo.On("GetStatsByPlayer", ctx, "nobody").Return(&models.SessionStats{}, nil)

	stats, err := svc.GetPlayerStats(ctx, "nobody")

	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.Nil(t, stats)
}
