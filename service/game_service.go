package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"timeline/config"
	"timeline/engine"
	"timeline/events"
	"timeline/models"

	log "github.com/sirupsen/logrus"
)

type gameService struct {
	uowFactory UnitOfWorkFactory
	feedback   *engine.FeedbackGenerator
}

// NewGameService creates a new game service. The feedback source is injected
// so tests can seed it.
func NewGameService(uowFactory UnitOfWorkFactory, feedbackSrc rand.Source) GameService {
	return &gameService{
		uowFactory: uowFactory,
		feedback:   engine.NewFeedbackGenerator(feedbackSrc),
	}
}

func (s *gameService) StartSession(ctx context.Context, playerName string, category string, maxDifficulty int) (*models.SessionDetail, error) {
	if playerName == "" {
		return nil, fmt.Errorf("player name must not be empty")
	}

	cfg := config.Get()

	// Create unit of work
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	// Deal the seed card plus the hand in one draw
	deck, err := uow.CardRepository().GetRandomDeck(ctx, cfg.HandSize+1, category, maxDifficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to deal cards: %w", err)
	}
	if len(deck) < cfg.HandSize+1 {
		return nil, ErrDeckExhausted
	}

	seed := deck[0]
	hand := deck[1:]

	session := &models.GameSession{
		PlayerName: playerName,
		State:      models.SessionStatePlaying,
		HandSize:   len(hand),
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := uow.SessionRepository().DealCards(ctx, session.ID, []int64{seed.ID}, models.CardLocationTimeline); err != nil {
		return nil, fmt.Errorf("failed to place seed card: %w", err)
	}

	handIDs := make([]int64, len(hand))
	for i, card := range hand {
		handIDs[i] = card.ID
	}
	if err := uow.SessionRepository().DealCards(ctx, session.ID, handIDs, models.CardLocationHand); err != nil {
		return nil, fmt.Errorf("failed to deal hand: %w", err)
	}

	uow.EventBus().Publish(events.SessionStartedEvent{
		SessionID:  session.ID,
		PlayerName: playerName,
		HandSize:   len(hand),
		SeedCardID: seed.ID,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"sessionID": session.ID,
		"player":    playerName,
		"handSize":  len(hand),
	}).Info("Session started")

	return &models.SessionDetail{
		Session:  session,
		Timeline: []*models.Card{seed},
		Hand:     hand,
	}, nil
}

func (s *gameService) SubmitPlacement(ctx context.Context, sessionID, cardID int64, proposedIndex int, timeToPlaceSeconds float64, clientCorrect *bool) (*models.MoveResult, error) {
	if timeToPlaceSeconds < 0 {
		return nil, fmt.Errorf("time to place must not be negative")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	session, err := uow.SessionRepository().GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.State != models.SessionStatePlaying {
		return nil, ErrSessionNotPlaying
	}

	timelineCards, err := uow.SessionRepository().GetTimeline(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	if proposedIndex < 0 || proposedIndex > len(timelineCards) {
		return nil, ErrIndexOutOfRange
	}

	hand, err := uow.SessionRepository().GetHand(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hand: %w", err)
	}
	var card *models.Card
	for _, handCard := range hand {
		if handCard.ID == cardID {
			card = handCard
			break
		}
	}
	if card == nil {
		return nil, ErrCardNotInHand
	}

	// The server verdict is authoritative; the client's own computation is
	// only accepted when it agrees.
	verdict := engine.Evaluate(s.feedback, card, timelineCards, proposedIndex)

	if clientCorrect != nil && *clientCorrect != verdict.IsCorrect {
		log.WithFields(log.Fields{
			"sessionID":     sessionID,
			"cardID":        cardID,
			"placedIndex":   proposedIndex,
			"clientCorrect": *clientCorrect,
			"serverCorrect": verdict.IsCorrect,
		}).Warn("Client verdict disagrees with server validation")

		uow.EventBus().Publish(events.VerdictMismatchEvent{
			SessionID:     sessionID,
			CardID:        cardID,
			PlacedIndex:   proposedIndex,
			ClientCorrect: *clientCorrect,
			ServerCorrect: verdict.IsCorrect,
		})
		// Nothing was written; commit only flushes the mismatch event
		if err := uow.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil, ErrVerdictMismatch
	}

	previousAttempts, err := uow.MoveRepository().CountAttempts(ctx, sessionID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attempts: %w", err)
	}
	attempts := previousAttempts + 1

	points := engine.Score(verdict.IsCorrect, timeToPlaceSeconds, attempts, card.Difficulty)

	handSizeAfter := session.HandSize
	if verdict.IsCorrect {
		handSizeAfter--
	}

	progress := engine.Progress{
		TotalMoves:     session.TotalMoves,
		CorrectMoves:   session.CorrectMoves,
		IncorrectMoves: session.IncorrectMoves,
	}
	progress, wonGame := engine.Fold(progress, verdict, handSizeAfter)

	move := &models.Move{
		SessionID:          sessionID,
		CardID:             cardID,
		PlacedIndex:        proposedIndex,
		CorrectIndex:       verdict.CorrectPosition,
		Correct:            verdict.IsCorrect,
		TimeToPlaceSeconds: timeToPlaceSeconds,
		Attempts:           attempts,
		PointsAwarded:      points,
	}
	if err := uow.MoveRepository().Create(ctx, move); err != nil {
		return nil, fmt.Errorf("failed to record move: %w", err)
	}

	if verdict.IsCorrect {
		if err := uow.SessionRepository().MoveCardToTimeline(ctx, sessionID, cardID); err != nil {
			return nil, fmt.Errorf("failed to place card on timeline: %w", err)
		}
	}

	session.HandSize = handSizeAfter
	session.Score += points
	session.TotalMoves = progress.TotalMoves
	session.CorrectMoves = progress.CorrectMoves
	session.IncorrectMoves = progress.IncorrectMoves
	if wonGame {
		session.State = models.SessionStateWon
		now := time.Now().UTC()
		session.CompletedAt = &now
	}
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	uow.EventBus().Publish(events.MovePlacedEvent{
		SessionID:       sessionID,
		MoveID:          move.ID,
		CardID:          cardID,
		PlacedIndex:     proposedIndex,
		CorrectPosition: verdict.CorrectPosition,
		Correct:         verdict.IsCorrect,
		PointsAwarded:   points,
		Feedback:        verdict.Feedback,
		HandSize:        session.HandSize,
	})
	if wonGame {
		uow.EventBus().Publish(events.SessionWonEvent{
			SessionID:  sessionID,
			PlayerName: session.PlayerName,
			Score:      session.Score,
			TotalMoves: session.TotalMoves,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.MoveResult{
		Correct:         verdict.IsCorrect,
		CorrectPosition: verdict.CorrectPosition,
		Feedback:        verdict.Feedback,
		PointsAwarded:   points,
		SessionScore:    session.Score,
		HandSize:        session.HandSize,
		WonGame:         wonGame,
		Card:            card,
	}, nil
}

func (s *gameService) AbandonSession(ctx context.Context, sessionID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	session, err := uow.SessionRepository().GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if session.State != models.SessionStatePlaying {
		return ErrSessionNotPlaying
	}

	session.State = models.SessionStateAbandoned
	now := time.Now().UTC()
	session.CompletedAt = &now
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	uow.EventBus().Publish(events.SessionAbandonedEvent{
		SessionID:  sessionID,
		PlayerName: session.PlayerName,
	})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *gameService) GetSession(ctx context.Context, sessionID int64) (*models.SessionDetail, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	session, err := uow.SessionRepository().GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	timelineCards, err := uow.SessionRepository().GetTimeline(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}

	hand, err := uow.SessionRepository().GetHand(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hand: %w", err)
	}

	return &models.SessionDetail{
		Session:  session,
		Timeline: timelineCards,
		Hand:     hand,
	}, nil
}
