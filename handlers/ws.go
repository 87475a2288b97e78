package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"timeline/events"
	"timeline/service"
)

// Package-level WebSocket upgrader
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// feedMessage is the JSON envelope written to WebSocket clients
type feedMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// SessionFeed streams game events for a session over WebSockets. It
// subscribes to the event bus once and fans events out to the connected
// clients watching each session.
type SessionFeed struct {
	gameService service.GameService

	mu   sync.RWMutex
	subs map[int64]map[chan feedMessage]struct{}
}

// NewSessionFeed creates a SessionFeed wired to the given event bus
func NewSessionFeed(bus *events.Bus, gameService service.GameService) *SessionFeed {
	f := &SessionFeed{
		gameService: gameService,
		subs:        make(map[int64]map[chan feedMessage]struct{}),
	}

	for _, eventType := range []events.EventType{
		events.EventTypeSessionStarted,
		events.EventTypeMovePlaced,
		events.EventTypeSessionWon,
		events.EventTypeSessionAbandoned,
	} {
		bus.Subscribe(eventType, f.onEvent)
	}

	return f
}

func (f *SessionFeed) onEvent(ctx context.Context, event events.Event) {
	var sessionID int64
	switch e := event.(type) {
	case events.SessionStartedEvent:
		sessionID = e.SessionID
	case events.MovePlacedEvent:
		sessionID = e.SessionID
	case events.SessionWonEvent:
		sessionID = e.SessionID
	case events.SessionAbandonedEvent:
		sessionID = e.SessionID
	default:
		return
	}

	msg := feedMessage{Type: string(event.Type()), Payload: event}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for ch := range f.subs[sessionID] {
		select {
		case ch <- msg:
		default:
			// Slow client, drop the event rather than block the bus
			log.WithField("sessionId", sessionID).Warn("Dropping feed event for slow WebSocket client")
		}
	}
}

func (f *SessionFeed) subscribe(sessionID int64) chan feedMessage {
	ch := make(chan feedMessage, 16)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subs[sessionID] == nil {
		f.subs[sessionID] = make(map[chan feedMessage]struct{})
	}
	f.subs[sessionID][ch] = struct{}{}
	return ch
}

func (f *SessionFeed) unsubscribe(sessionID int64, ch chan feedMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subs[sessionID], ch)
	if len(f.subs[sessionID]) == 0 {
		delete(f.subs, sessionID)
	}
}

// WebSocketHandler upgrades the connection and streams events for one session
func (f *SessionFeed) WebSocketHandler(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	detail, err := f.gameService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		standardResponse(c, http.StatusInternalServerError, "error", nil, "Could not upgrade to WebSocket")
		return
	}
	defer conn.Close()

	feed := f.subscribe(sessionID)
	defer f.unsubscribe(sessionID, feed)

	// Send the current session state first
	if err := conn.WriteJSON(feedMessage{Type: "session_state", Payload: detail}); err != nil {
		return
	}

	// Setup ping ticker for keep-alive
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	// Create a channel to handle client disconnections
	done := make(chan struct{})

	// Drain incoming messages in a separate goroutine
	go readUntilClosed(conn, done)

	for {
		select {
		case msg := <-feed:
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// readUntilClosed consumes client messages until the connection drops
func readUntilClosed(conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
