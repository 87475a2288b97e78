package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"timeline/service"
)

// GameHandler handles all session-related requests
type GameHandler struct {
	gameService service.GameService
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// CreateSession handles requests to start a new game session
func (h *GameHandler) CreateSession(c *gin.Context) {
	var req struct {
		PlayerName    string `json:"playerName" binding:"required"`
		Category      string `json:"category"`
		MaxDifficulty int    `json:"maxDifficulty"`
	}

	if err := c.BindJSON(&req); err != nil {
		standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid request format")
		return
	}

	detail, err := h.gameService.StartSession(c.Request.Context(), req.PlayerName, req.Category, req.MaxDifficulty)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	standardResponse(c, http.StatusCreated, "created", detail, "")
}

// GetSession handles requests to fetch a session with its timeline and hand
func (h *GameHandler) GetSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	detail, err := h.gameService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	standardResponse(c, http.StatusOK, "ok", detail, "")
}

// SubmitMove handles placement attempts for a session
func (h *GameHandler) SubmitMove(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var req struct {
		CardID             int64   `json:"cardId" binding:"required"`
		Position           *int    `json:"position" binding:"required"`
		TimeToPlaceSeconds float64 `json:"timeToPlaceSeconds"`
		ClientCorrect      *bool   `json:"clientCorrect"`
	}

	if err := c.BindJSON(&req); err != nil {
		standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid request format")
		return
	}

	result, err := h.gameService.SubmitPlacement(c.Request.Context(), sessionID, req.CardID, *req.Position, req.TimeToPlaceSeconds, req.ClientCorrect)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	standardResponse(c, http.StatusOK, "move_recorded", result, "")
}

// AbandonSession handles requests to give up on a session
func (h *GameHandler) AbandonSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	if err := h.gameService.AbandonSession(c.Request.Context(), sessionID); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	standardResponse(c, http.StatusOK, "abandoned", nil, "")
}

// sessionIDParam parses the :id path parameter, writing the error response itself
func sessionIDParam(c *gin.Context) (int64, bool) {
	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid session ID")
		return 0, false
	}
	return sessionID, true
}
