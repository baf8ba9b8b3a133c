package config

import (
	"errors"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" env-default:"rentloo"`
	HTTPPort    string `env:"HTTP_PORT"    env-default:"8080"`

	// PostgresDSN selects the online voting backend. An empty DSN (or a
	// failed connection at startup) pins the process to offline mode for
	// its whole lifetime.
	PostgresDSN string `env:"POSTGRES_DSN"`

	// DataDir holds the local JSON snapshot files used by every
	// offline-persisted collection (cart, listings, orders, messages,
	// voting fallback, user vote reference).
	DataDir string `env:"DATA_DIR" env-default:"data"`

	// RosterPollInterval is the voting roster watcher tick, in seconds.
	RosterPollInterval int `env:"ROSTER_POLL_INTERVAL_SECONDS" env-default:"2"`
}

func Load() (Config, error) {
	// A missing .env file is fine; env vars may come from the process.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		if _, statErr := os.Stat(".env"); statErr == nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
