// Package catalog holds the static surface and graffiti-type tables that
// every REP calculation is based on.
package catalog

import (
	"sort"
	"strings"

	"github.com/meur/blackout/internal/models"
)

// Fallbacks used when an identifier is not in the catalog
const (
	DefaultSurface      = models.SurfaceWall
	DefaultGraffitiType = models.GraffitiTag
)

// StreakRadius is the distance in metres from the session centre within
// which a drop keeps a streak alive
const StreakRadius = 50.0

// CategoryMultipliers maps each surface category to its REP multiplier
var CategoryMultipliers = map[models.SurfaceCategory]float64{
	models.CategoryStreet:    1.0,
	models.CategoryStructure: 1.2,
	models.CategoryElevated:  1.25,
	models.CategoryTransit:   1.3,
	models.CategoryHazard:    1.4,
}

// DifficultyMultipliers maps each difficulty tier to its REP multiplier
var DifficultyMultipliers = map[models.Difficulty]float64{
	models.DifficultyEasy:   1.0,
	models.DifficultyMedium: 1.25,
	models.DifficultyHard:   1.5,
	models.DifficultyExpert: 2.0,
}

func surface(id models.SurfaceType, label, icon string, baseRep int, category models.SurfaceCategory) models.SurfaceConfig {
	return models.SurfaceConfig{
		ID:         id,
		Label:      label,
		Icon:       icon,
		BaseRep:    baseRep,
		Category:   category,
		Multiplier: CategoryMultipliers[category],
	}
}

// Surfaces is the surface catalog
var Surfaces = map[models.SurfaceType]models.SurfaceConfig{
	models.SurfacePole:         surface(models.SurfacePole, "Pole", "🪧", 5, models.CategoryStreet),
	models.SurfaceSign:         surface(models.SurfaceSign, "Sign", "🚏", 5, models.CategoryStreet),
	models.SurfaceEBox:         surface(models.SurfaceEBox, "E.Box", "⚡", 8, models.CategoryStreet),
	models.SurfaceWall:         surface(models.SurfaceWall, "Wall", "🧱", 10, models.CategoryStreet),
	models.SurfaceFence:        surface(models.SurfaceFence, "Fence", "🚧", 8, models.CategoryStreet),
	models.SurfaceDumpster:     surface(models.SurfaceDumpster, "Dumpster", "🗑️", 6, models.CategoryStreet),
	models.SurfaceBusStop:      surface(models.SurfaceBusStop, "Bus Stop", "🚌", 12, models.CategoryStreet),
	models.SurfaceBillboard:    surface(models.SurfaceBillboard, "Billboard", "📋", 20, models.CategoryStructure),
	models.SurfaceTunnel:       surface(models.SurfaceTunnel, "Tunnel", "🚇", 15, models.CategoryStructure),
	models.SurfaceWaterTower:   surface(models.SurfaceWaterTower, "Water Tower", "🗼", 30, models.CategoryElevated),
	models.SurfaceBridge:       surface(models.SurfaceBridge, "Bridge", "🌉", 25, models.CategoryElevated),
	models.SurfaceRooftop:      surface(models.SurfaceRooftop, "Rooftop", "🏢", 25, models.CategoryElevated),
	models.SurfaceTrain:        surface(models.SurfaceTrain, "Train", "🚆", 30, models.CategoryTransit),
	models.SurfaceTruck:        surface(models.SurfaceTruck, "Truck", "🚚", 20, models.CategoryTransit),
	models.SurfaceVan:          surface(models.SurfaceVan, "Van", "🚐", 15, models.CategoryTransit),
	models.SurfaceSpeedCamera:  surface(models.SurfaceSpeedCamera, "Speed Camera", "📷", 25, models.CategoryHazard),
	models.SurfaceTrafficLight: surface(models.SurfaceTrafficLight, "Traffic Light", "🚦", 20, models.CategoryHazard),
}

// GraffitiTypes is the graffiti-type catalog
var GraffitiTypes = map[models.GraffitiType]models.GraffitiTypeConfig{
	models.GraffitiTag:       {ID: models.GraffitiTag, Label: "Tag", Icon: "✍️", BaseRep: 5, Difficulty: models.DifficultyEasy, Family: "tagging"},
	models.GraffitiSticker:   {ID: models.GraffitiSticker, Label: "Sticker", Icon: "🏷️", BaseRep: 5, Difficulty: models.DifficultyEasy, Family: "print"},
	models.GraffitiEtch:      {ID: models.GraffitiEtch, Label: "Etch", Icon: "🔪", BaseRep: 8, Difficulty: models.DifficultyEasy, Family: "tagging"},
	models.GraffitiMops:      {ID: models.GraffitiMops, Label: "Mop Tag", Icon: "🧽", BaseRep: 8, Difficulty: models.DifficultyEasy, Family: "tagging"},
	models.GraffitiStencil:   {ID: models.GraffitiStencil, Label: "Stencil", Icon: "✂️", BaseRep: 12, Difficulty: models.DifficultyMedium, Family: "print"},
	models.GraffitiPasteUp:   {ID: models.GraffitiPasteUp, Label: "Paste-Up", Icon: "📜", BaseRep: 12, Difficulty: models.DifficultyMedium, Family: "print"},
	models.GraffitiThrowUp:   {ID: models.GraffitiThrowUp, Label: "Throw-Up", Icon: "💨", BaseRep: 15, Difficulty: models.DifficultyMedium, Family: "bombing"},
	models.GraffitiRoller:    {ID: models.GraffitiRoller, Label: "Roller", Icon: "🖌️", BaseRep: 18, Difficulty: models.DifficultyMedium, Family: "bombing"},
	models.GraffitiPiece:     {ID: models.GraffitiPiece, Label: "Piece", Icon: "🎨", BaseRep: 25, Difficulty: models.DifficultyHard, Family: "piecing"},
	models.GraffitiWildstyle: {ID: models.GraffitiWildstyle, Label: "Wildstyle", Icon: "🌀", BaseRep: 30, Difficulty: models.DifficultyHard, Family: "piecing"},
	models.GraffitiRapel:     {ID: models.GraffitiRapel, Label: "Rapel", Icon: "🧗", BaseRep: 35, Difficulty: models.DifficultyExpert, Family: "production"},
	models.GraffitiBurner:    {ID: models.GraffitiBurner, Label: "Burner", Icon: "🔥", BaseRep: 40, Difficulty: models.DifficultyExpert, Family: "piecing"},
	models.GraffitiMural:     {ID: models.GraffitiMural, Label: "Mural", Icon: "🖼️", BaseRep: 50, Difficulty: models.DifficultyExpert, Family: "production"},
}

var (
	heavenSurfaces   = []models.SurfaceType{models.SurfaceRooftop, models.SurfaceBridge}
	movingSurfaces   = []models.SurfaceType{models.SurfaceTrain, models.SurfaceTruck, models.SurfaceVan}
	highRiskSurfaces = []models.SurfaceType{models.SurfaceSpeedCamera, models.SurfaceTrafficLight}
)

// NormalizeSurface returns id if it is in the catalog, otherwise DefaultSurface.
// Matching ignores case and surrounding whitespace.
func NormalizeSurface(id models.SurfaceType) models.SurfaceType {
	key := models.SurfaceType(strings.ToLower(strings.TrimSpace(string(id))))
	if _, ok := Surfaces[key]; ok {
		return key
	}
	return DefaultSurface
}

// NormalizeGraffitiType returns id if it is in the catalog, otherwise DefaultGraffitiType
func NormalizeGraffitiType(id models.GraffitiType) models.GraffitiType {
	key := models.GraffitiType(strings.ToLower(strings.TrimSpace(string(id))))
	if _, ok := GraffitiTypes[key]; ok {
		return key
	}
	return DefaultGraffitiType
}

// Surface looks up a surface, falling back to wall
func Surface(id models.SurfaceType) models.SurfaceConfig {
	return Surfaces[NormalizeSurface(id)]
}

// GraffitiType looks up a graffiti type, falling back to tag
func GraffitiType(id models.GraffitiType) models.GraffitiTypeConfig {
	return GraffitiTypes[NormalizeGraffitiType(id)]
}

// IsKnownSurface reports whether id is an exact catalog key
func IsKnownSurface(id models.SurfaceType) bool {
	_, ok := Surfaces[id]
	return ok
}

// IsKnownGraffitiType reports whether id is an exact catalog key
func IsKnownGraffitiType(id models.GraffitiType) bool {
	_, ok := GraffitiTypes[id]
	return ok
}

// DifficultyMultiplier returns the multiplier for d, 1.0 if unknown
func DifficultyMultiplier(d models.Difficulty) float64 {
	if m, ok := DifficultyMultipliers[d]; ok {
		return m
	}
	return 1.0
}

// IsHeavenSurface reports whether a surface counts as a heaven spot
func IsHeavenSurface(id models.SurfaceType) bool {
	return contains(heavenSurfaces, id)
}

// IsMovingSurface reports whether a surface is a moving target
func IsMovingSurface(id models.SurfaceType) bool {
	return contains(movingSurfaces, id)
}

// IsHighRiskSurface reports whether a surface is a high-risk spot
func IsHighRiskSurface(id models.SurfaceType) bool {
	return contains(highRiskSurfaces, id)
}

func contains(set []models.SurfaceType, id models.SurfaceType) bool {
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}

// SurfaceList returns all surfaces ordered by base REP, then ID
func SurfaceList() []models.SurfaceConfig {
	list := make([]models.SurfaceConfig, 0, len(Surfaces))
	for _, s := range Surfaces {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].BaseRep != list[j].BaseRep {
			return list[i].BaseRep < list[j].BaseRep
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// GraffitiTypeList returns all graffiti types ordered by base REP, then ID
func GraffitiTypeList() []models.GraffitiTypeConfig {
	list := make([]models.GraffitiTypeConfig, 0, len(GraffitiTypes))
	for _, g := range GraffitiTypes {
		list = append(list, g)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].BaseRep != list[j].BaseRep {
			return list[i].BaseRep < list[j].BaseRep
		}
		return list[i].ID < list[j].ID
	})
	return list
}
