package cliparse

import (
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("STORE_PATH", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STATE_KEY", "")
	t.Setenv("RESET_TOKEN_SALT", "")

	cfg, err := ParseFlags([]string{"--reset-salt", "s"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 8231 {
		t.Errorf("Expected default port 8231, got %d", cfg.Port)
	}
	if cfg.StoreBackend != "bolt" {
		t.Errorf("Expected default backend bolt, got %q", cfg.StoreBackend)
	}
	if cfg.StorePath != "tally.db" {
		t.Errorf("Expected default path tally.db, got %q", cfg.StorePath)
	}
	if cfg.StateKey != "game" {
		t.Errorf("Expected default state key game, got %q", cfg.StateKey)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("STORE_PATH", "/tmp/x.db")
	t.Setenv("STATE_KEY", "table-1")
	t.Setenv("RESET_TOKEN_SALT", "env-salt")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 9000 || cfg.StoreBackend != "sqlite" || cfg.StorePath != "/tmp/x.db" {
		t.Errorf("Env fallback not applied: %+v", cfg)
	}
	if cfg.StateKey != "table-1" || cfg.ResetTokenSalt != "env-salt" {
		t.Errorf("Env fallback not applied: %+v", cfg)
	}
}

func TestParseFlagsFlagBeatsEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RESET_TOKEN_SALT", "env-salt")

	cfg, err := ParseFlags([]string{"-p", "7000"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Port != 7000 {
		t.Errorf("Expected flag to win, got port %d", cfg.Port)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{
			name: "missing reset salt",
			args: nil,
			env:  map[string]string{},
		},
		{
			name: "invalid port env",
			args: []string{"--reset-salt", "s"},
			env:  map[string]string{"PORT": "not-a-number"},
		},
		{
			name: "unknown backend",
			args: []string{"--reset-salt", "s", "-b", "redis"},
			env:  map[string]string{},
		},
		{
			name: "postgres without database url",
			args: []string{"--reset-salt", "s", "-b", "postgres"},
			env:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("STORE_BACKEND", "")
			t.Setenv("STORE_PATH", "")
			t.Setenv("DATABASE_URL", "")
			t.Setenv("RESET_TOKEN_SALT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
