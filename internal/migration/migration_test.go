package migration

import (
	"testing"
	"time"

	"github.com/meur/blackout/internal/models"
	"github.com/meur/blackout/internal/rep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestMigrator() *Migrator {
	return New(func() time.Time { return fixedNow })
}

func legacy(id, name, description string) models.Marker {
	stale := 999
	return models.Marker{
		ID:          id,
		UserID:      "writer",
		Position:    models.LatLng{Lat: -36.85, Lng: 174.76},
		Name:        name,
		Description: description,
		RepEarned:   &stale,
		Likes:       []string{"a", "b"},
		Comments:    []models.Comment{{ID: "c1", UserID: "a", Text: "mean"}},
	}
}

func TestMigrateMarker_DerivesFieldsAndRecomputesRep(t *testing.T) {
	got := newTestMigrator().MigrateMarker(legacy("m1", "Wall", "Tag/Signature"))

	assert.Equal(t, models.SurfaceWall, got.Surface)
	assert.Equal(t, models.GraffitiTag, got.GraffitiType)
	require.NotNil(t, got.RepEarned)
	assert.Equal(t, 15, *got.RepEarned)
	require.NotNil(t, got.RepBreakdown)
	assert.Equal(t, 15, got.RepBreakdown.TotalRep)
	assert.True(t, got.IsEdited)
	require.NotNil(t, got.MigratedAt)
	assert.Equal(t, fixedNow, *got.MigratedAt)

	// Social fields carry through
	assert.Equal(t, []string{"a", "b"}, got.Likes)
	assert.Len(t, got.Comments, 1)
}

func TestMigrateMarker_TrainBurnerStacksMovingAndStreak(t *testing.T) {
	m := legacy("m2", "Train", "Burner/Heater")
	d := 30.0
	m.DistanceFromCenter = &d

	got := newTestMigrator().MigrateMarker(m)

	// (30 + 40) × 1.3 × 2.0 × 1.25 × 1.25 = 284.375
	require.NotNil(t, got.RepEarned)
	assert.Equal(t, 284, *got.RepEarned)
	assert.InDelta(t, 1.3*2.0*1.25*1.25, got.RepBreakdown.TotalMultiplier, 1e-9)
	assert.Len(t, got.RepBreakdown.Bonuses, 4)
}

func TestMigrateMarker_Idempotent(t *testing.T) {
	mg := newTestMigrator()
	inputs := []models.Marker{
		legacy("a", "Rooftop", "Mural/Production"),
		legacy("b", "Lamp Post", "???"),
		legacy("c", "", ""),
	}
	half := legacy("d", "Van", "")
	half.Surface = models.SurfaceTruck
	inputs = append(inputs, half)

	for _, m := range inputs {
		once := mg.MigrateMarker(m)
		twice := mg.MigrateMarker(once)
		assert.Equal(t, once, twice, "marker %s", m.ID)
	}
}

func TestMigrateMarker_AlreadyMigratedIsUnchanged(t *testing.T) {
	stale := 1
	m := models.Marker{
		ID:           "done",
		Surface:      models.SurfaceBridge,
		GraffitiType: models.GraffitiPiece,
		RepEarned:    &stale,
	}
	got := MigrateMarker(m)
	assert.Equal(t, m, got)
	assert.False(t, got.IsEdited)
}

func TestMigrateMarker_KeepsPresentSurface(t *testing.T) {
	m := legacy("half", "Wall", "Piece/Bombing")
	m.Surface = models.SurfaceTrafficLight

	got := newTestMigrator().MigrateMarker(m)
	assert.Equal(t, models.SurfaceTrafficLight, got.Surface)
	assert.Equal(t, models.GraffitiPiece, got.GraffitiType)

	want := rep.Calculate(models.SurfaceTrafficLight, models.GraffitiPiece, models.RepOptions{IsHighRisk: true})
	assert.Equal(t, want.Rep, *got.RepEarned)
}

func TestMigrateMarker_UnknownLegacyLabelsFallBack(t *testing.T) {
	got := newTestMigrator().MigrateMarker(legacy("x", "Spaceship", "Laser"))
	assert.Equal(t, models.SurfaceWall, got.Surface)
	assert.Equal(t, models.GraffitiTag, got.GraffitiType)
}

func TestMigrateMarkers(t *testing.T) {
	in := []models.Marker{legacy("1", "Pole", "Sticker/Slap"), legacy("2", "Bridge", "Wildstyle")}
	out := newTestMigrator().MigrateMarkers(in)

	require.Len(t, out, 2)
	assert.Equal(t, models.SurfacePole, out[0].Surface)
	assert.Equal(t, models.GraffitiWildstyle, out[1].GraffitiType)
	// Input untouched
	assert.Empty(t, in[0].Surface)
}

func TestGetMigrationStats(t *testing.T) {
	mg := newTestMigrator()
	markers := []models.Marker{
		legacy("1", "Wall", "Tag/Signature"),
		mg.MigrateMarker(legacy("2", "Wall", "Tag/Signature")),
		mg.MigrateMarker(legacy("3", "Train", "Piece/Bombing")),
		legacy("4", "Van", "Roller/Extinguisher"),
	}

	stats := GetMigrationStats(markers)
	assert.Equal(t, models.MigrationStats{
		Total:               4,
		NeedsMigration:      2,
		AlreadyMigrated:     2,
		MigrationPercentage: 50,
	}, stats)

	assert.Equal(t, models.MigrationStats{}, GetMigrationStats(nil))
}

func TestBulkMigrateWithValidation_AllSucceed(t *testing.T) {
	result := newTestMigrator().BulkMigrateWithValidation([]models.Marker{
		legacy("1", "Wall", "Tag/Signature"),
		legacy("2", "Train", "Burner/Heater"),
	})

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.MigratedMarkers, 2)
}

func TestBulkMigrateWithValidation_PanicDoesNotAbortBatch(t *testing.T) {
	mg := newTestMigrator()
	mg.migrate = func(m models.Marker) models.Marker {
		if m.ID == "bad" {
			panic("corrupt record")
		}
		return mg.MigrateMarker(m)
	}

	result := mg.BulkMigrateWithValidation([]models.Marker{
		legacy("1", "Wall", "Tag/Signature"),
		legacy("bad", "Wall", "Tag/Signature"),
		legacy("3", "Bridge", "Piece/Bombing"),
	})

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "bad", result.Errors[0].MarkerID)
	assert.Equal(t, ErrMigrationPanicked.Error(), result.Errors[0].Error)

	require.Len(t, result.MigratedMarkers, 2)
	assert.Equal(t, "1", result.MigratedMarkers[0].ID)
	assert.Equal(t, "3", result.MigratedMarkers[1].ID)
}

func TestBulkMigrateWithValidation_ReportsMissingFields(t *testing.T) {
	mg := newTestMigrator()
	mg.migrate = func(m models.Marker) models.Marker {
		m.Surface = models.SurfaceWall
		return m
	}

	result := mg.BulkMigrateWithValidation([]models.Marker{{ID: "partial"}})

	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "partial", result.Errors[0].MarkerID)
	assert.Contains(t, result.Errors[0].Error, "graffiti_type")
	assert.Contains(t, result.Errors[0].Error, "rep_breakdown")
	assert.Contains(t, result.Errors[0].Error, "rep_earned")
	assert.NotContains(t, result.Errors[0].Error, "surface,")
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate(models.Marker{}))
	assert.NoError(t, Validate(MigrateMarker(legacy("ok", "Wall", "Tag/Signature"))))
}
