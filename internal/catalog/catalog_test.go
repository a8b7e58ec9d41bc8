package catalog

import (
	"testing"

	"github.com/meur/blackout/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurface_UnknownFallsBackToWall(t *testing.T) {
	s := Surface("moon")
	assert.Equal(t, models.SurfaceWall, s.ID)
	assert.Equal(t, Surfaces[models.SurfaceWall], s)
}

func TestGraffitiType_UnknownFallsBackToTag(t *testing.T) {
	g := GraffitiType("hologram")
	assert.Equal(t, models.GraffitiTag, g.ID)
}

func TestNormalize_IgnoresCaseAndWhitespace(t *testing.T) {
	assert.Equal(t, models.SurfaceTrain, NormalizeSurface(" Train "))
	assert.Equal(t, models.GraffitiBurner, NormalizeGraffitiType("BURNER"))
	assert.Equal(t, DefaultSurface, NormalizeSurface(""))
	assert.Equal(t, DefaultGraffitiType, NormalizeGraffitiType(""))
}

func TestCatalogEntriesAreConsistent(t *testing.T) {
	require.Len(t, Surfaces, 17)
	require.Len(t, GraffitiTypes, 13)

	for id, s := range Surfaces {
		assert.Equal(t, id, s.ID)
		assert.Positive(t, s.BaseRep, "surface %s", id)
		mult, ok := CategoryMultipliers[s.Category]
		require.True(t, ok, "surface %s has unknown category %s", id, s.Category)
		assert.Equal(t, mult, s.Multiplier)
	}
	for id, g := range GraffitiTypes {
		assert.Equal(t, id, g.ID)
		assert.Positive(t, g.BaseRep, "graffiti type %s", id)
		_, ok := DifficultyMultipliers[g.Difficulty]
		assert.True(t, ok, "graffiti type %s has unknown difficulty %s", id, g.Difficulty)
	}
}

func TestDifficultyMultipliers(t *testing.T) {
	assert.Equal(t, 1.0, DifficultyMultiplier(models.DifficultyEasy))
	assert.Equal(t, 1.25, DifficultyMultiplier(models.DifficultyMedium))
	assert.Equal(t, 1.5, DifficultyMultiplier(models.DifficultyHard))
	assert.Equal(t, 2.0, DifficultyMultiplier(models.DifficultyExpert))
	assert.Equal(t, 1.0, DifficultyMultiplier("impossible"))
}

func TestSituationalSets(t *testing.T) {
	assert.True(t, IsHeavenSurface(models.SurfaceRooftop))
	assert.True(t, IsHeavenSurface(models.SurfaceBridge))
	assert.False(t, IsHeavenSurface(models.SurfaceWaterTower))

	assert.True(t, IsMovingSurface(models.SurfaceTrain))
	assert.True(t, IsMovingSurface(models.SurfaceVan))
	assert.False(t, IsMovingSurface(models.SurfaceBusStop))

	assert.True(t, IsHighRiskSurface(models.SurfaceSpeedCamera))
	assert.True(t, IsHighRiskSurface(models.SurfaceTrafficLight))
	assert.False(t, IsHighRiskSurface(models.SurfaceWall))
}

func TestLists_AreSortedAndComplete(t *testing.T) {
	surfaces := SurfaceList()
	require.Len(t, surfaces, len(Surfaces))
	for i := 1; i < len(surfaces); i++ {
		assert.LessOrEqual(t, surfaces[i-1].BaseRep, surfaces[i].BaseRep)
	}

	types := GraffitiTypeList()
	require.Len(t, types, len(GraffitiTypes))
	assert.Equal(t, models.GraffitiMural, types[len(types)-1].ID)
}
