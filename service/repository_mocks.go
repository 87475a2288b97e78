package service

import (
	"context"

	"timeline/events"
	"timeline/models"

	"github.com/stretchr/testify/mock"
)

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *models.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepository) GetAll(ctx context.Context, category string, maxDifficulty int) ([]*models.Card, error) {
	args := m.Called(ctx, category, maxDifficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Card), args.Error(1)
}

func (m *MockCardRepository) GetRandomDeck(ctx context.Context, n int, category string, maxDifficulty int) ([]*models.Card, error) {
	args := m.Called(ctx, n, category, maxDifficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Card), args.Error(1)
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *models.GameSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id int64) (*models.GameSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameSession), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, session *models.GameSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) DealCards(ctx context.Context, sessionID int64, cardIDs []int64, location models.CardLocation) error {
	args := m.Called(ctx, sessionID, cardIDs, location)
	return args.Error(0)
}

func (m *MockSessionRepository) GetTimeline(ctx context.Context, sessionID int64) ([]*models.Card, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Card), args.Error(1)
}

func (m *MockSessionRepository) GetHand(ctx context.Context, sessionID int64) ([]*models.Card, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Card), args.Error(1)
}

func (m *MockSessionRepository) MoveCardToTimeline(ctx context.Context, sessionID, cardID int64) error {
	args := m.Called(ctx, sessionID, cardID)
	return args.Error(0)
}

func (m *MockSessionRepository) GetRecentByPlayer(ctx context.Context, playerName string, limit int) ([]*models.GameSession, error) {
	args := m.Called(ctx, playerName, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GameSession), args.Error(1)
}

func (m *MockSessionRepository) GetPlayerNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSessionRepository) GetStatsByPlayer(ctx context.Context, playerName string) (*models.SessionStats, error) {
	args := m.Called(ctx, playerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionStats), args.Error(1)
}

// MockMoveRepository is a mock implementation of MoveRepository
type MockMoveRepository struct {
	mock.Mock
}

func (m *MockMoveRepository) Create(ctx context.Context, move *models.Move) error {
	args := m.Called(ctx, move)
	return args.Error(0)
}

func (m *MockMoveRepository) GetBySession(ctx context.Context, sessionID int64) ([]*models.Move, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Move), args.Error(1)
}

func (m *MockMoveRepository) CountAttempts(ctx context.Context, sessionID, cardID int64) (int, error) {
	args := m.Called(ctx, sessionID, cardID)
	return args.Int(0), args.Error(1)
}

func (m *MockMoveRepository) GetStatsByPlayer(ctx context.Context, playerName string) (*models.MoveStats, error) {
	args := m.Called(ctx, playerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MoveStats), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	cardRepo    CardRepository
	sessionRepo SessionRepository
	moveRepo    MoveRepository
	eventBus    EventPublisher
}

// SetRepositories wires the repositories the unit of work hands out
func (m *MockUnitOfWork) SetRepositories(cardRepo CardRepository, sessionRepo SessionRepository, moveRepo MoveRepository, eventBus EventPublisher) {
	m.cardRepo = cardRepo
	m.sessionRepo = sessionRepo
	m.moveRepo = moveRepo
	m.eventBus = eventBus
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) CardRepository() CardRepository {
	return m.cardRepo
}

func (m *MockUnitOfWork) SessionRepository() SessionRepository {
	return m.sessionRepo
}

func (m *MockUnitOfWork) MoveRepository() MoveRepository {
	return m.moveRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
