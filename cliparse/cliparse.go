package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/tallyhq/tally/models"
)

type Config struct {
	Port           int
	StoreBackend   string
	StorePath      string
	DatabaseURL    string
	StateKey       string
	ResetTokenSalt string
}

// ParseFlags validates flags with environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("tally", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreBackend, "b", "", "Storage backend (bolt, sqlite, postgres, or memory)")
	fs.StringVar(&cfg.StorePath, "s", "", "Storage file path (bolt and sqlite)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.ResetTokenSalt, "reset-salt", "", "Reset token salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8231 // default
		}
	}

	if cfg.StoreBackend == "" {
		cfg.StoreBackend = os.Getenv("STORE_BACKEND")
		if cfg.StoreBackend == "" {
			cfg.StoreBackend = models.BackendBolt
		}
	}
	switch cfg.StoreBackend {
	case models.BackendBolt, models.BackendSQLite, models.BackendPostgres, models.BackendMemory:
	default:
		return Config{}, errors.New("STORE_BACKEND must be bolt, sqlite, postgres, or memory")
	}

	if cfg.StorePath == "" {
		cfg.StorePath = os.Getenv("STORE_PATH")
		if cfg.StorePath == "" {
			cfg.StorePath = "tally.db"
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.StoreBackend == models.BackendPostgres && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required for postgres backend (use -d or DATABASE_URL env)")
	}

	cfg.StateKey = os.Getenv("STATE_KEY")
	if cfg.StateKey == "" {
		cfg.StateKey = "game"
	}

	// Secrets - MUST be provided
	if cfg.ResetTokenSalt == "" {
		cfg.ResetTokenSalt = os.Getenv("RESET_TOKEN_SALT")
	}
	if cfg.ResetTokenSalt == "" {
		return Config{}, errors.New("RESET_TOKEN_SALT required")
	}

	return cfg, nil
}
