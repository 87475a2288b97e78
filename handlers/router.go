package handlers

import (
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the API routes onto a Gin engine
func NewRouter(gameHandler *GameHandler, cardHandler *CardHandler, statsHandler *StatsHandler, feed *SessionFeed) *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		// Session creation
		api.POST("/sessions", gameHandler.CreateSession)

		// Session routes
		sessions := api.Group("/sessions/:id")
		{
			sessions.GET("", gameHandler.GetSession)
			sessions.POST("/moves", gameHandler.SubmitMove)
			sessions.POST("/abandon", gameHandler.AbandonSession)

			// WebSocket endpoint for real-time updates
			sessions.GET("/ws", feed.WebSocketHandler)
		}

		// Card catalog
		api.GET("/cards", cardHandler.ListCards)
		api.POST("/cards", cardHandler.CreateCard)
		api.GET("/cards/:id", cardHandler.GetCard)

		// Statistics
		api.GET("/stats/scoreboard", statsHandler.GetScoreboard)
		api.GET("/stats/players/:name", statsHandler.GetPlayerStats)
	}

	return router
}
