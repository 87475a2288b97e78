package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"timeline/models"
	"timeline/service"
)

// CardHandler handles all card catalog requests
type CardHandler struct {
	cardService service.CardService
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// ListCards handles requests to list cards, with optional filters
func (h *CardHandler) ListCards(c *gin.Context) {
	category := c.Query("category")

	maxDifficulty := 0
	if raw := c.Query("maxDifficulty"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid maxDifficulty")
			return
		}
		maxDifficulty = parsed
	}

	cards, err := h.cardService.ListCards(c.Request.Context(), category, maxDifficulty)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	standardResponse(c, http.StatusOK, "ok", cards, "")
}

// GetCard handles requests to fetch a single card
func (h *CardHandler) GetCard(c *gin.Context) {
	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid card ID")
		return
	}

	card, err := h.cardService.GetCard(c.Request.Context(), cardID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	standardResponse(c, http.StatusOK, "ok", card, "")
}

// CreateCard handles requests to add a card to the catalog
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req struct {
		Title       string    `json:"title" binding:"required"`
		OccurredAt  time.Time `json:"occurredAt" binding:"required"`
		Category    string    `json:"category" binding:"required"`
		Difficulty  int       `json:"difficulty" binding:"required"`
		Description string    `json:"description"`
	}

	if err := c.BindJSON(&req); err != nil {
		standardResponse(c, http.StatusBadRequest, "error", nil, "Invalid request format")
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), &models.Card{
		Title:       req.Title,
		OccurredAt:  req.OccurredAt,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Description: req.Description,
	})
	if err != nil {
		standardResponse(c, http.StatusBadRequest, "error", nil, err.Error())
		return
	}

	standardResponse(c, http.StatusCreated, "created", card, "")
}
