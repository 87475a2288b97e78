package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"timeline/events"
	"timeline/models"
	"timeline/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// MockGameService is a mock implementation of service.GameService
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) StartSession(ctx context.Context, playerName string, category string, maxDifficulty int) (*models.SessionDetail, error) {
	args := m.Called(ctx, playerName, category, maxDifficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionDetail), args.Error(1)
}

func (m *MockGameService) SubmitPlacement(ctx context.Context, sessionID, cardID int64, proposedIndex int, timeToPlaceSeconds float64, clientCorrect *bool) (*models.MoveResult, error) {
	args := m.Called(ctx, sessionID, cardID, proposedIndex, timeToPlaceSeconds, clientCorrect)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MoveResult), args.Error(1)
}

func (m *MockGameService) AbandonSession(ctx context.Context, sessionID int64) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockGameService) GetSession(ctx context.Context, sessionID int64) (*models.SessionDetail, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionDetail), args.Error(1)
}

func newTestRouter(gameService service.GameService) *gin.Engine {
	gameHandler := NewGameHandler(gameService)
	feed := NewSessionFeed(events.NewBus(), gameService)
	return NewRouter(gameHandler, NewCardHandler(nil), NewStatsHandler(nil, 10), feed)
}

func testDetail(sessionID int64) *models.SessionDetail {
	return &models.SessionDetail{
		Session: &models.GameSession{
			ID:         sessionID,
			PlayerName: "alice",
			State:      models.SessionStatePlaying,
			HandSize:   7,
			StartedAt:  time.Now(),
		},
		Timeline: []*models.Card{{ID: 1, Title: "Moon landing"}},
		Hand:     []*models.Card{{ID: 2, Title: "Fall of the Berlin Wall"}},
	}
}

func TestCreateSession(t *testing.T) {
	t.Run("creates a session", func(t *testing.T) {
		gameService := new(MockGameService)
		gameService.On("StartSession", mock.Anything, "alice", "history", 3).
			Return(testDetail(42), nil)

		router := newTestRouter(gameService)

		body, _ := json.Marshal(gin.H{
			"playerName":    "alice",
			"category":      "history",
			"maxDifficulty": 3,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Status string                `json:"status"`
			Data   *models.SessionDetail `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "created", resp.Status)
		assert.Equal(t, int64(42), resp.Data.Session.ID)
		assert.Len(t, resp.Data.Hand, 1)
		gameService.AssertExpectations(t)
	})

	t.Run("rejects missing player name", func(t *testing.T) {
		gameService := new(MockGameService)
		router := newTestRouter(gameService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader([]byte(`{}`)))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		gameService.AssertNotCalled(t, "StartSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps deck exhaustion to conflict", func(t *testing.T) {
		gameService := new(MockGameService)
		gameService.On("StartSession", mock.Anything, "alice", "", 0).
			Return(nil, service.ErrDeckExhausted)

		router := newTestRouter(gameService)

		body, _ := json.Marshal(gin.H{"playerName": "alice"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetSession(t *testing.T) {
	t.Run("returns the session detail", func(t *testing.T) {
		gameService := new(MockGameService)
		gameService.On("GetSession", mock.Anything, int64(42)).
			Return(testDetail(42), nil)

		router := newTestRouter(gameService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sessions/42", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns 404 for unknown session", func(t *testing.T) {
		gameService := new(MockGameService)
		gameService.On("GetSession", mock.Anything, int64(99)).
			Return(nil, service.ErrSessionNotFound)

		router := newTestRouter(gameService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sessions/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects a non-numeric session ID", func(t *testing.T) {
		gameService := new(MockGameService)
		router := newTestRouter(gameService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sessions/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSubmitMove(t *testing.T) {
	t.Run("records a placement", func(t *testing.T) {
		gameService := new(MockGameService)
		gameService.On("SubmitPlacement", mock.Anything, int64(42), int64(7), 0, 3.5, (*bool)(nil)).
			Return(&models.MoveResult{
				Correct:         true,
				CorrectPosition: 0,
				PointsAwarded:   230,
				SessionScore:    230,
				HandSize:        6,
			}, nil)

		router := newTestRouter(gameService)

		body, _ := json.Marshal(gin.H{
			"cardId":             7,
			"position":           0,
			"timeToPlaceSeconds": 3.5,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions/42/moves", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Status string             `json:"status"`
			Data   *models.MoveResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "move_recorded", resp.Status)
		assert.True(t, resp.Data.Correct)
		assert.Equal(t, 230, resp.Data.PointsAwarded)
		gameService.AssertExpectations(t)
	})

	t.Run("rejects a body without a position", func(t *testing.T) {
		gameService := new(MockGameService)
		router := newTestRouter(gameService)

		body, _ := json.Marshal(gin.H{"cardId": 7})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions/42/moves", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps a verdict mismatch to 422", func(t *testing.T) {
		clientCorrect := true
		gameService := new(MockGameService)
		gameService.On("SubmitPlacement", mock.Anything, int64(42), int64(7), 1, 2.0, &clientCorrect).
			Return(nil, service.ErrVerdictMismatch)

		router := newTestRouter(gameService)

		body, _ := json.Marshal(gin.H{
			"cardId":             7,
			"position":           1,
			"timeToPlaceSeconds": 2.0,
			"clientCorrect":      true,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions/42/moves", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAbandonSession(t *testing.T) {
	t.Run("abandons a playing session", func(t *testing.T) {
		gameService := new(MockGameService)
		gameService.On("AbandonSession", mock.Anything, int64(42)).Return(nil)

		router := newTestRouter(gameService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions/42/abandon", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		gameService.AssertExpectations(t)
	})

	t.Run("maps a finished session to conflict", func(t *testing.T) {
		gameService := new(MockGameService)
		gameService.On("AbandonSession", mock.Anything, int64(42)).
			Return(service.ErrSessionNotPlaying)

		router := newTestRouter(gameService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions/42/abandon", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
