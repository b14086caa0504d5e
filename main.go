package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/tallyhq/tally/cliparse"
	"github.com/tallyhq/tally/gamestore"
	"github.com/tallyhq/tally/middleware"
	"github.com/tallyhq/tally/models"
	"github.com/tallyhq/tally/router"
	"github.com/tallyhq/tally/storage"
	"github.com/tallyhq/tally/storage/bolt"
	"github.com/tallyhq/tally/storage/memory"
	"github.com/tallyhq/tally/storage/sqlstore"
)

func main() {
	var err error

	// Local development keeps secrets in .env
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the storage backend
	kv, err := openStore(cfg)
	if err != nil {
		slog.Error("storage open failed", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	// Restore (or start empty) the game state
	store := gamestore.New(kv, cfg.StateKey)
	store.Initialize()
	slog.Info("Game state ready", "backend", cfg.StoreBackend, "key", cfg.StateKey)

	// Create router
	mux := router.NewRouter(store, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func openStore(cfg cliparse.Config) (storage.Store, error) {
	switch cfg.StoreBackend {
	case models.BackendBolt:
		return bolt.Open(cfg.StorePath)
	case models.BackendSQLite:
		return sqlstore.Open("sqlite", cfg.StorePath)
	case models.BackendPostgres:
		return sqlstore.Open("postgres", cfg.DatabaseURL)
	case models.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StoreBackend)
	}
}
