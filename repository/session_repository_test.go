package repository

import (
	"context"
	"testing"
	"time"

	"timeline/models"
	"timeline/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	cardRepo := NewCardRepository(testDB.DB)
	repo := NewSessionRepository(testDB.DB)
	ctx := context.Background()

	seed := testutil.CreateTestCard("Seed event", 1900)
	early := testutil.CreateTestCard("Earlier event", 1800)
	late := testutil.CreateTestCard("Later event", 2000)
	require.NoError(t, cardRepo.Create(ctx, seed))
	require.NoError(t, cardRepo.Create(ctx, early))
	require.NoError(t, cardRepo.Create(ctx, late))

	t.Run("create and get", func(t *testing.T) {
		session := testutil.CreateTestSession("ada", 2)

		err := repo.Create(ctx, session)
		require.NoError(t, err)
		assert.NotZero(t, session.ID)
		assert.False(t, session.StartedAt.IsZero())

		got, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "ada", got.PlayerName)
		assert.Equal(t, models.SessionStatePlaying, got.State)
		assert.Equal(t, 2, got.HandSize)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("get not found", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("deal, place and read back cards", func(t *testing.T) {
		session := testutil.CreateTestSession("grace", 2)
		require.NoError(t, repo.Create(ctx, session))

		require.NoError(t, repo.DealCards(ctx, session.ID, []int64{seed.ID}, models.CardLocationTimeline))
		require.NoError(t, repo.DealCards(ctx, session.ID, []int64{early.ID, late.ID}, models.CardLocationHand))

		timeline, err := repo.GetTimeline(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, timeline, 1)
		assert.Equal(t, seed.ID, timeline[0].ID)

		hand, err := repo.GetHand(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, hand, 2)

		// Place the earlier card; timeline comes back in chronological order
		require.NoError(t, repo.MoveCardToTimeline(ctx, session.ID, early.ID))

		timeline, err = repo.GetTimeline(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, timeline, 2)
		assert.Equal(t, early.ID, timeline[0].ID)
		assert.Equal(t, seed.ID, timeline[1].ID)

		hand, err = repo.GetHand(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, hand, 1)
		assert.Equal(t, late.ID, hand[0].ID)
	})

	t.Run("move to timeline requires the card in hand", func(t *testing.T) {
		session := testutil.CreateTestSession("hopper", 0)
		require.NoError(t, repo.Create(ctx, session))

		err := repo.MoveCardToTimeline(ctx, session.ID, seed.ID)
		assert.Error(t, err)
	})

	t.Run("update state and counters", func(t *testing.T) {
		session := testutil.CreateTestSession("ada", 1)
		require.NoError(t, repo.Create(ctx, session))

		session.State = models.SessionStateWon
		session.Score = 640
		session.HandSize = 0
		session.TotalMoves = 5
		session.CorrectMoves = 4
		session.IncorrectMoves = 1
		completedAt := session.StartedAt.Add(90 * time.Second)
		session.CompletedAt = &completedAt

		require.NoError(t, repo.Update(ctx, session))

		got, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SessionStateWon, got.State)
		assert.Equal(t, 640, got.Score)
		assert.Equal(t, 0, got.HandSize)
		assert.Equal(t, 5, got.TotalMoves)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("player aggregates", func(t *testing.T) {
		names, err := repo.GetPlayerNames(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "ada")
		assert.Contains(t, names, "grace")

		stats, err := repo.GetStatsByPlayer(ctx, "ada")
		require.NoError(t, err)
		assert.Equal(t, 2, stats.SessionsPlayed)
		assert.Equal(t, 1, stats.SessionsWon)
		assert.Equal(t, 640, stats.BestScore)

		recent, err := repo.GetRecentByPlayer(ctx, "ada", 10)
		require.NoError(t, err)
		assert.Len(t, recent, 2)

		empty, err := repo.GetStatsByPlayer(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, 0, empty.SessionsPlayed)
	})
}
