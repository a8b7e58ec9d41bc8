package api

import (
	"net/http"
	"strconv"

	"github.com/meur/blackout/internal/logger"
	"github.com/meur/blackout/internal/migration"
	"github.com/meur/blackout/internal/models"
)

// handleMigrationStats reports how many stored markers still need migrating
func (s *Server) handleMigrationStats(w http.ResponseWriter, r *http.Request) {
	markers, err := s.store.ListMarkers("")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch markers")
		return
	}

	respondJSON(w, http.StatusOK, migration.GetMigrationStats(markers))
}

// handleRunMigration migrates every legacy marker and stores the ones that
// pass validation. With ?dry_run=true nothing is written.
func (s *Server) handleRunMigration(w http.ResponseWriter, r *http.Request) {
	dryRun, _ := strconv.ParseBool(r.URL.Query().Get("dry_run"))

	markers, err := s.store.ListMarkers("")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch markers")
		return
	}

	pending := make([]models.Marker, 0, len(markers))
	for _, m := range markers {
		if migration.NeedsMigration(m) {
			pending = append(pending, m)
		}
	}

	result := migration.BulkMigrateWithValidation(pending)
	for _, e := range result.Errors {
		logger.Warning("Marker %s failed migration: %s", e.MarkerID, e.Error)
	}

	if !dryRun && len(result.MigratedMarkers) > 0 {
		if err := s.store.SaveMarkers(result.MigratedMarkers); err != nil {
			logger.Error("Failed to save migrated markers: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to save migrated markers")
			return
		}
		logger.Success("Migrated %d marker(s)", result.SuccessCount)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"dry_run": dryRun,
		"result":  result,
	})
}
