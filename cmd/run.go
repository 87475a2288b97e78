package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"timeline/config"
	"timeline/database"
	"timeline/events"
	"timeline/handlers"
	"timeline/repository"
	"timeline/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting timeline server...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	log.Println("Initializing event bus...")
	eventBus := events.NewBus()
	log.Println("Event bus initialized successfully")

	// Initialize unit of work factory
	log.Println("Initializing unit of work factory...")
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)
	log.Println("Unit of work factory initialized successfully")

	// Initialize services
	log.Println("Initializing services...")
	gameService := service.NewGameService(uowFactory, rand.NewSource(time.Now().UnixNano()))
	cardService := service.NewCardService(uowFactory)
	statsService := service.NewStatsService(uowFactory)
	log.Println("Services initialized successfully")

	// Initialize HTTP layer
	log.Println("Initializing HTTP server...")
	gameHandler := handlers.NewGameHandler(gameService)
	cardHandler := handlers.NewCardHandler(cardService)
	statsHandler := handlers.NewStatsHandler(statsService, cfg.ScoreboardSize)
	feed := handlers.NewSessionFeed(eventBus, gameService)
	router := handlers.NewRouter(gameHandler, cardHandler, statsHandler, feed)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s in %s mode...", cfg.ListenAddr, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for context cancellation or a server failure
	select {
	case err := <-serverErr:
		db.Close()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	// Close database connection
	log.Println("Closing database connection...")
	db.Close()

	log.Println("Shutdown completed")
	return nil
}
