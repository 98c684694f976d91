package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Save backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	SaveDir     string `env:"MONSTER_SAVE_DIR" envDefault:".saves"`
	SaveBackend string `env:"MONSTER_SAVE_BACKEND" envDefault:"file"`
	SaveDB      string `env:"MONSTER_SAVE_DB" envDefault:".saves/monster.db"`
	// Seed fixes the random source; 0 seeds from crypto/rand.
	Seed        int64  `env:"MONSTER_SEED" envDefault:"0"`
	CatalogPath string `env:"MONSTER_CATALOG"`
	LogFile     string `env:"MONSTER_LOG_FILE" envDefault:"debug.log"`
	PlayerName  string `env:"MONSTER_PLAYER_NAME" envDefault:"Trainer"`

	// GeminiAPIKey enables generated dex entries when set.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"MONSTER_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.SaveBackend {
	case BackendFile, BackendSQLite:
	default:
		return nil, fmt.Errorf("MONSTER_SAVE_BACKEND must be %q or %q, got %q", BackendFile, BackendSQLite, cfg.SaveBackend)
	}
	return &cfg, nil
}

// NarratorEnabled reports whether a Gemini key is configured.
func (c *Config) NarratorEnabled() bool {
	return c.GeminiAPIKey != ""
}
