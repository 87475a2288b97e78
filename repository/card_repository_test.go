package repository

import (
	"context"
	"testing"

	"timeline/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewCardRepository(testDB.DB)
	ctx := context.Background()

	t.Run("create and get by id", func(t *testing.T) {
		card := testutil.CreateTestCardWithDetails("Test treaty signed", 1648, "TestPolitics", 4)

		err := repo.Create(ctx, card)
		require.NoError(t, err)
		assert.NotZero(t, card.ID)
		assert.False(t, card.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, card.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, card.Title, got.Title)
		assert.Equal(t, 1648, got.OccurredAt.Year())
		assert.Equal(t, "TestPolitics", got.Category)
		assert.Equal(t, 4, got.Difficulty)
	})

	t.Run("get by id not found", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("get all with filters", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, testutil.CreateTestCardWithDetails("Filter a", 1900, "FilterCat", 1)))
		require.NoError(t, repo.Create(ctx, testutil.CreateTestCardWithDetails("Filter b", 1800, "FilterCat", 3)))
		require.NoError(t, repo.Create(ctx, testutil.CreateTestCardWithDetails("Filter c", 1850, "OtherCat", 1)))

		cards, err := repo.GetAll(ctx, "FilterCat", 0)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		// Chronological order
		assert.Equal(t, "Filter b", cards[0].Title)
		assert.Equal(t, "Filter a", cards[1].Title)

		easy, err := repo.GetAll(ctx, "FilterCat", 2)
		require.NoError(t, err)
		require.Len(t, easy, 1)
		assert.Equal(t, "Filter a", easy[0].Title)
	})

	t.Run("random deck respects filters and size", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			card := testutil.CreateTestCardWithDetails("Deck card", 1700+i, "DeckCat", 2)
			require.NoError(t, repo.Create(ctx, card))
		}

		deck, err := repo.GetRandomDeck(ctx, 3, "DeckCat", 0)
		require.NoError(t, err)
		assert.Len(t, deck, 3)
		for _, card := range deck {
			assert.Equal(t, "DeckCat", card.Category)
		}
	})

	t.Run("random deck smaller than requested", func(t *testing.T) {
		deck, err := repo.GetRandomDeck(ctx, 50, "OtherCat", 0)
		require.NoError(t, err)
		assert.Len(t, deck, 1)
	})
}
