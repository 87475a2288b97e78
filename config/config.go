package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL string

	// HTTP server configuration
	ListenAddr string

	// Game configuration
	HandSize       int // Cards dealt into the player's hand at session start
	ScoreboardSize int // Default number of scoreboard entries returned

	// Environment
	Environment string // "development", "test" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Server settings with defaults
		ListenAddr: ":8080",

		// Game settings with defaults
		HandSize:       7,
		ScoreboardSize: 10,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		config.ListenAddr = addr
	}
	if size := os.Getenv("HAND_SIZE"); size != "" {
		if parsedSize, err := strconv.Atoi(size); err == nil && parsedSize > 0 {
			config.HandSize = parsedSize
		}
	}
	if size := os.Getenv("SCOREBOARD_SIZE"); size != "" {
		if parsedSize, err := strconv.Atoi(size); err == nil && parsedSize > 0 {
			config.ScoreboardSize = parsedSize
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
