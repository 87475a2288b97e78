package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"timeline/service"
)

// StatsHandler handles all statistics requests
type StatsHandler struct {
	statsService   service.StatsService
	scoreboardSize int
}

// NewStatsHandler creates a new StatsHandler. scoreboardSize is the default
// number of scoreboard entries returned when the request does not set a limit.
func NewStatsHandler(statsService service.StatsService, scoreboardSize int) *StatsHandler {
	return &StatsHandler{
		statsService:   statsService,
		scoreboardSize: scoreboardSize,
	}
}

// GetScoreboard handles requests for the top-players scoreboard
func (h *StatsHandler) GetScoreboard(c *gin.Context) {
	limit := h.scoreboardSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.statsService.GetScoreboard(c.Request.Context(), limit)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	standardResponse(c, http.StatusOK, "ok", entries, "")
}

// GetPlayerStats handles requests for one player's statistics
func (h *StatsHandler) GetPlayerStats(c *gin.Context) {
	playerName := c.Param("name")
	if playerName == "" {
		standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid player name")
		return
	}

	stats, err := h.statsService.GetPlayerStats(c.Request.Context(), playerName)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	standardResponse(c, http.StatusOK, "ok", stats, "")
}
