// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"kanban-core/storage"
)

const DefaultUpdatesChannel = "board-updates"

// Config carries everything the composition root needs to wire a board.
type Config struct {
	// StorageKey is the slot key the board persists under.
	StorageKey string
	// RedisConnectionString enables the redis slot and change publishing
	// when set; empty keeps the board in memory only.
	RedisConnectionString string
	// UpdatesChannel is the pub/sub channel board change events go to.
	UpdatesChannel string
	Debug          bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; missing files are fine, they are a
// local development convenience.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to load .env file")
	}

	cfg := Config{
		StorageKey:            os.Getenv("BOARD_STORAGE_KEY"),
		RedisConnectionString: os.Getenv("REDIS_CONNECTION_STRING"),
		UpdatesChannel:        os.Getenv("BOARD_UPDATES_CHANNEL"),
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = storage.DefaultKey
	}
	if cfg.UpdatesChannel == "" {
		cfg.UpdatesChannel = DefaultUpdatesChannel
	}
	if v := os.Getenv("DEBUG"); v != "" {
		dbg, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DEBUG: %w", err)
		}
		cfg.Debug = dbg
	}
	return cfg, nil
}
