package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"MONSTER_SAVE_DIR", "MONSTER_SAVE_BACKEND", "MONSTER_SAVE_DB", "MONSTER_SEED",
		"MONSTER_CATALOG", "MONSTER_LOG_FILE", "MONSTER_PLAYER_NAME", "GEMINI_API_KEY", "MONSTER_GEMINI_MODEL"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SaveBackend != BackendFile {
		t.Errorf("Expected file backend, got %q", cfg.SaveBackend)
	}
	if cfg.SaveDir != ".saves" || cfg.LogFile != "debug.log" || cfg.PlayerName != "Trainer" {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected seed 0, got %d", cfg.Seed)
	}
	if cfg.NarratorEnabled() {
		t.Error("Expected narrator disabled without a key")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MONSTER_SAVE_BACKEND", "sqlite")
	t.Setenv("MONSTER_SAVE_DB", "/tmp/game.db")
	t.Setenv("MONSTER_SEED", "42")
	t.Setenv("MONSTER_PLAYER_NAME", "Red")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SaveBackend != BackendSQLite || cfg.SaveDB != "/tmp/game.db" {
		t.Errorf("Unexpected save settings %q %q", cfg.SaveBackend, cfg.SaveDB)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.PlayerName != "Red" {
		t.Errorf("Expected Red, got %q", cfg.PlayerName)
	}
	if !cfg.NarratorEnabled() {
		t.Error("Expected narrator enabled")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct{ key, value string }{
		{"MONSTER_SAVE_BACKEND", "postgres"},
		{"MONSTER_SEED", "not-a-number"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("Expected an error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
