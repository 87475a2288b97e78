package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timeline/service"
)

// standardResponse sends a consistent JSON response
func standardResponse(c *gin.Context, code int, status string, data interface{}, err string) {
	response := gin.H{"status": status}

	if data != nil {
		response["data"] = data
	}

	if err != "" {
		response["error"] = err
	}

	c.JSON(code, response)
}

// serviceErrorResponse maps service sentinel errors onto HTTP status codes
func serviceErrorResponse(c *gin.Context, err error) {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrCardNotFound),
		errors.Is(err, service.ErrPlayerNotFound):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrSessionNotPlaying):
		code = http.StatusConflict
	case errors.Is(err, service.ErrCardNotInHand),
		errors.Is(err, service.ErrIndexOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrVerdictMismatch):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrDeckExhausted):
		code = http.StatusConflict
	}

	standardResponse(c, code, "error", nil, err.Error())
}
