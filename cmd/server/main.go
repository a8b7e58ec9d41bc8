package main

import (
	"net/http"
	"os"

	"github.com/meur/blackout/internal/api"
	"github.com/meur/blackout/internal/config"
	"github.com/meur/blackout/internal/logger"
	"github.com/meur/blackout/internal/migration"
	"github.com/meur/blackout/internal/storage"
)

func main() {
	cfg, err := config.Load(config.New())
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}
	logger.SetDebug(cfg.Debug)

	// Initialize storage
	store, err := storage.New(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	if markers, err := store.ListMarkers(""); err == nil {
		stats := migration.GetMigrationStats(markers)
		if stats.NeedsMigration > 0 {
			logger.Warning("%d of %d marker(s) still use the legacy schema; POST /api/migrations/run to upgrade",
				stats.NeedsMigration, stats.Total)
		}
	}

	r := api.New(store, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Unlocks:        cfg.Unlocks,
	})

	logger.Success("Blackout API starting on http://localhost:%s", cfg.Port)
	logger.Info("Database: %s", cfg.DBPath)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
