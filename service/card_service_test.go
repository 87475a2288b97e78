package service

import (
	"context"
	"testing"
	"time"

	"timeline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCardService_CreateCard(t *testing.T) {
	ctx := context.Background()
	mocks := newGameServiceMocks()
	svc := NewCardService(mocks.factory)

	card := &models.Card{
		Title:      "Moon landing",
		OccurredAt: time.Date(1969, 7, 20, 0, 0, 0, 0, time.UTC),
		Category:   "Space",
		Difficulty: 1,
	}

	mocks.uow.On("Begin", ctx).Return(nil)
	mocks.uow.On("Commit").Return(nil)
	mocks.uow.On("Rollback").Return(nil)
	mocks.cardRepo.On("Create", ctx, card).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Card).ID = 11
	})

	created, err := svc.CreateCard(ctx, card)

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	mocks.assertExpectations(t)
}

func TestCardService_CreateCard_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	mocks := newGameServiceMocks()
	svc := NewCardService(mocks.factory)

	t.Run("missing date", func(t *testing.T) {
		_, err := svc.CreateCard(ctx, &models.Card{
			Title: "No date", Category: "History", Difficulty: 1,
		})
		assert.Error(t, err)
	})

	t.Run("difficulty out of range", func(t *testing.T) {
		_, err := svc.CreateCard(ctx, &models.Card{
			Title:      "Too hard",
			OccurredAt: time.Date(1969, 7, 20, 0, 0, 0, 0, time.UTC),
			Category:   "History",
			Difficulty: 6,
		})
		assert.Error(t, err)
	})

	// No unit of work is ever created for an invalid card
	mocks.factory.AssertNotCalled(t, "Create")
}

func TestCardService_GetCard_NotFound(t *testing.T) {
	ctx := context.Background()
	mocks := newGameServiceMocks()
	svc := NewCardService(mocks.factory)

	mocks.uow.On("Begin", ctx).Return(nil)
	mocks.uow.On("Rollback").Return(nil)
	mocks.cardRepo.On("GetByID", ctx, int64(404)).Return(nil, nil)

	card, err := svc.GetCard(ctx, 404)

	assert.ErrorIs(t, err, ErrCardNotFound)
	assert.Nil(t, card)
}
