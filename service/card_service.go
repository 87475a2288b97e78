package service

import (
	"context"
	"fmt"

	"timeline/models"
)

type cardService struct {
	uowFactory UnitOfWorkFactory
}

// NewCardService creates a new card service
func NewCardService(uowFactory UnitOfWorkFactory) CardService {
	return &cardService{
		uowFactory: uowFactory,
	}
}

// ListCards returns cards matching the filters
func (s *cardService) ListCards(ctx context.Context, category string, maxDifficulty int) ([]*models.Card, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	cards, err := uow.CardRepository().GetAll(ctx, category, maxDifficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return cards, nil
}

// GetCard retrieves a single card
func (s *cardService) GetCard(ctx context.Context, id int64) (*models.Card, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	card, err := uow.CardRepository().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	return card, nil
}

// CreateCard validates and stores a new card. Cards with unparseable or
// missing dates never make it past this boundary, so the engine can assume
// valid instants.
func (s *cardService) CreateCard(ctx context.Context, card *models.Card) (*models.Card, error) {
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("invalid card: %w", err)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.CardRepository().Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return card, nil
}
