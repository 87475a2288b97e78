package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeSessionStarted   EventType = "session_started"
	EventTypeMovePlaced       EventType = "move_placed"
	EventTypeSessionWon       EventType = "session_won"
	EventTypeSessionAbandoned EventType = "session_abandoned"
	EventTypeVerdictMismatch  EventType = "verdict_mismatch"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// SessionStartedEvent represents a new game session being dealt
type SessionStartedEvent struct {
	SessionID  int64
	PlayerName string
	HandSize   int
	SeedCardID int64
}

func (e SessionStartedEvent) Type() EventType {
	return EventTypeSessionStarted
}

// MovePlacedEvent represents a placement attempt that was recorded
type MovePlacedEvent struct {
	SessionID       int64
	MoveID          int64
	CardID          int64
	PlacedIndex     int
	CorrectPosition int
	Correct         bool
	PointsAwarded   int
	Feedback        string
	HandSize        int
}

func (e MovePlacedEvent) Type() EventType {
	return EventTypeMovePlaced
}

// SessionWonEvent represents a session whose hand was emptied
type SessionWonEvent struct {
	SessionID  int64
	PlayerName string
	Score      int
	TotalMoves int
}

func (e SessionWonEvent) Type() EventType {
	return EventTypeSessionWon
}

// SessionAbandonedEvent represents a session the player gave up on
type SessionAbandonedEvent struct {
	SessionID  int64
	PlayerName string
}

func (e SessionAbandonedEvent) Type() EventType {
	return EventTypeSessionAbandoned
}

// VerdictMismatchEvent is emitted when a client-submitted correctness flag
// disagrees with the server-side recomputation
type VerdictMismatchEvent struct {
	SessionID     int64
	CardID        int64
	PlacedIndex   int
	ClientCorrect bool
	ServerCorrect bool
}

func (e VerdictMismatchEvent) Type() EventType {
	return EventTypeVerdictMismatch
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make([]Handler, 0)
	}
	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	// Call handlers asynchronously to avoid blocking
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// A transactional event bus for holding pending events coupled to the Unit of Work.
// Flushes to the underlying event bus.
type TransactionalBus struct {
	real    *Bus
	pending []Event // stashed until Flush
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// called after successful DB commit
func (b *TransactionalBus) Flush(ctx context.Context) error {
	log.WithFields(log.Fields{
		"pendingEventCount": len(b.pending),
	}).Debug("Flushing pending events to main event bus")

	// Use background context for event emission to avoid issues with transaction context expiration
	// Events should be processed independently of the transaction lifecycle
	eventCtx := context.Background()

	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
	return nil
}

// called after db rollback or to clear state.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
