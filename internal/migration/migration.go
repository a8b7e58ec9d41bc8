// Package migration upgrades legacy marker records (free-form name and
// description) to the surface / graffiti-type schema and recomputes their REP.
package migration

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/meur/blackout/internal/catalog"
	"github.com/meur/blackout/internal/models"
	"github.com/meur/blackout/internal/rep"
	"github.com/meur/blackout/internal/typemap"
)

// ErrMigrationPanicked is reported for a record whose migration panicked
var ErrMigrationPanicked = errors.New("unexpected error during migration")

// Migrator migrates markers using its own clock
type Migrator struct {
	now     func() time.Time
	migrate func(models.Marker) models.Marker
}

// New creates a Migrator. A nil clock means time.Now.
func New(now func() time.Time) *Migrator {
	if now == nil {
		now = time.Now
	}
	m := &Migrator{now: now}
	m.migrate = m.MigrateMarker
	return m
}

var defaultMigrator = New(nil)

// NeedsMigration reports whether a marker is missing its surface or graffiti type
func NeedsMigration(m models.Marker) bool {
	return m.Surface == "" || m.GraffitiType == ""
}

// MigrateMarker upgrades a marker using the wall clock
func MigrateMarker(m models.Marker) models.Marker {
	return defaultMigrator.MigrateMarker(m)
}

// MigrateMarkers upgrades every marker in the list
func MigrateMarkers(markers []models.Marker) []models.Marker {
	return defaultMigrator.MigrateMarkers(markers)
}

// BulkMigrateWithValidation migrates and validates every marker using the wall clock
func BulkMigrateWithValidation(markers []models.Marker) models.BulkMigrationResult {
	return defaultMigrator.BulkMigrateWithValidation(markers)
}

// MigrateMarker returns m upgraded to the current schema. A marker that
// already has both a surface and a graffiti type is returned unchanged, so
// migrating twice is the same as migrating once. Otherwise the missing
// fields are derived from the legacy labels and REP is always recomputed.
func (mg *Migrator) MigrateMarker(m models.Marker) models.Marker {
	if !NeedsMigration(m) {
		return m
	}

	surface := m.Surface
	if surface == "" {
		surface = typemap.SurfaceFromMarkerName(m.Name)
	} else {
		surface = catalog.NormalizeSurface(surface)
	}
	graffiti := m.GraffitiType
	if graffiti == "" {
		graffiti = typemap.GraffitiFromMarkerDescription(m.Description)
	} else {
		graffiti = catalog.NormalizeGraffitiType(graffiti)
	}

	result := rep.Calculate(surface, graffiti, rep.OptionsForMarker(surface, m.DistanceFromCenter))
	earned := result.Rep
	breakdown := result.Breakdown
	now := mg.now()

	m.Surface = surface
	m.GraffitiType = graffiti
	m.RepEarned = &earned
	m.RepBreakdown = &breakdown
	m.IsEdited = true
	m.MigratedAt = &now
	m.UpdatedAt = now
	return m
}

// MigrateMarkers upgrades every marker in the list. Migrating a single
// marker cannot fail.
func (mg *Migrator) MigrateMarkers(markers []models.Marker) []models.Marker {
	out := make([]models.Marker, len(markers))
	for i, m := range markers {
		out[i] = mg.migrate(m)
	}
	return out
}

// GetMigrationStats counts how many markers still need migrating
func GetMigrationStats(markers []models.Marker) models.MigrationStats {
	stats := models.MigrationStats{Total: len(markers)}
	for _, m := range markers {
		if NeedsMigration(m) {
			stats.NeedsMigration++
		} else {
			stats.AlreadyMigrated++
		}
	}
	if stats.Total > 0 {
		stats.MigrationPercentage = int(math.Round(float64(stats.AlreadyMigrated) / float64(stats.Total) * 100))
	}
	return stats
}

// BulkMigrateWithValidation migrates each marker, checks the result for the
// required post-migration fields and collects every failure. One bad record
// never aborts the batch.
func (mg *Migrator) BulkMigrateWithValidation(markers []models.Marker) models.BulkMigrationResult {
	result := models.BulkMigrationResult{
		MigratedMarkers: make([]models.Marker, 0, len(markers)),
		Errors:          []models.MigrationError{},
	}

	for _, m := range markers {
		migrated, err := mg.migrateSafely(m)
		if err == nil {
			err = Validate(migrated)
		}
		if err != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, models.MigrationError{
				MarkerID: m.ID,
				Error:    err.Error(),
			})
			continue
		}
		result.SuccessCount++
		result.MigratedMarkers = append(result.MigratedMarkers, migrated)
	}

	return result
}

func (mg *Migrator) migrateSafely(m models.Marker) (migrated models.Marker, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrMigrationPanicked
		}
	}()
	return mg.migrate(m), nil
}

// Validate checks that a migrated marker carries every required field
func Validate(m models.Marker) error {
	var missing []string
	if m.Surface == "" {
		missing = append(missing, "surface")
	}
	if m.GraffitiType == "" {
		missing = append(missing, "graffiti_type")
	}
	if m.RepBreakdown == nil {
		missing = append(missing, "rep_breakdown")
	}
	if m.RepEarned == nil {
		missing = append(missing, "rep_earned")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
