// Package typemap translates between the legacy free-form marker labels and
// the current surface / graffiti-type identifiers.
package typemap

import (
	"sort"
	"strings"

	"github.com/meur/blackout/internal/catalog"
	"github.com/meur/blackout/internal/models"
)

// MarkerNameToSurface maps legacy marker names to surfaces.
// "ATM Machine" collapses onto ebox.
var MarkerNameToSurface = map[string]models.SurfaceType{
	"Pole":          models.SurfacePole,
	"Sign":          models.SurfaceSign,
	"E.Box":         models.SurfaceEBox,
	"ATM Machine":   models.SurfaceEBox,
	"Wall":          models.SurfaceWall,
	"Fence":         models.SurfaceFence,
	"Dumpster":      models.SurfaceDumpster,
	"Bus Stop":      models.SurfaceBusStop,
	"Billboard":     models.SurfaceBillboard,
	"Tunnel":        models.SurfaceTunnel,
	"Water Tower":   models.SurfaceWaterTower,
	"Bridge":        models.SurfaceBridge,
	"Rooftop":       models.SurfaceRooftop,
	"Train":         models.SurfaceTrain,
	"Truck":         models.SurfaceTruck,
	"Van":           models.SurfaceVan,
	"Speed Camera":  models.SurfaceSpeedCamera,
	"Traffic Light": models.SurfaceTrafficLight,
}

// MarkerDescriptionToGraffiti maps legacy marker descriptions to graffiti types
var MarkerDescriptionToGraffiti = map[string]models.GraffitiType{
	"Tag/Signature":        models.GraffitiTag,
	"Sticker/Slap":         models.GraffitiSticker,
	"Etch/Scratch":         models.GraffitiEtch,
	"Stencil/Brand/Stamp":  models.GraffitiStencil,
	"Paste-Up/Poster":      models.GraffitiPasteUp,
	"Throw-Up/Quick Piece": models.GraffitiThrowUp,
	"Roller/Extinguisher":  models.GraffitiRoller,
	"Piece/Bombing":        models.GraffitiPiece,
	"Wildstyle":            models.GraffitiWildstyle,
	"Burner/Heater":        models.GraffitiBurner,
	"Mural/Production":     models.GraffitiMural,
}

// SurfaceToMarkerName is the display mapping back to legacy names
var SurfaceToMarkerName = map[models.SurfaceType]string{
	models.SurfacePole:         "Pole",
	models.SurfaceSign:         "Sign",
	models.SurfaceEBox:         "E.Box",
	models.SurfaceWall:         "Wall",
	models.SurfaceFence:        "Fence",
	models.SurfaceDumpster:     "Dumpster",
	models.SurfaceBusStop:      "Bus Stop",
	models.SurfaceBillboard:    "Billboard",
	models.SurfaceTunnel:       "Tunnel",
	models.SurfaceWaterTower:   "Water Tower",
	models.SurfaceBridge:       "Bridge",
	models.SurfaceRooftop:      "Rooftop",
	models.SurfaceTrain:        "Train",
	models.SurfaceTruck:        "Truck",
	models.SurfaceVan:          "Van",
	models.SurfaceSpeedCamera:  "Speed Camera",
	models.SurfaceTrafficLight: "Traffic Light",
}

// GraffitiToMarkerDescription is the display mapping back to legacy
// descriptions. rapel and mops postdate the legacy scheme and borrow the
// nearest existing bucket.
var GraffitiToMarkerDescription = map[models.GraffitiType]string{
	models.GraffitiTag:       "Tag/Signature",
	models.GraffitiSticker:   "Sticker/Slap",
	models.GraffitiEtch:      "Etch/Scratch",
	models.GraffitiMops:      "Tag/Signature",
	models.GraffitiStencil:   "Stencil/Brand/Stamp",
	models.GraffitiPasteUp:   "Paste-Up/Poster",
	models.GraffitiThrowUp:   "Throw-Up/Quick Piece",
	models.GraffitiRoller:    "Roller/Extinguisher",
	models.GraffitiPiece:     "Piece/Bombing",
	models.GraffitiWildstyle: "Wildstyle",
	models.GraffitiRapel:     "Piece/Bombing",
	models.GraffitiBurner:    "Burner/Heater",
	models.GraffitiMural:     "Mural/Production",
}

// SurfaceFromMarkerName maps a legacy name to a surface. Names that are not
// in the table map to wall.
func SurfaceFromMarkerName(name string) models.SurfaceType {
	if s, ok := lookup(MarkerNameToSurface, name); ok {
		return s
	}
	return catalog.DefaultSurface
}

// GraffitiFromMarkerDescription maps a legacy description to a graffiti
// type. Descriptions that are not in the table map to tag.
func GraffitiFromMarkerDescription(description string) models.GraffitiType {
	if g, ok := lookup(MarkerDescriptionToGraffiti, description); ok {
		return g
	}
	return catalog.DefaultGraffitiType
}

// MarkerNameFromSurface returns the legacy label for a surface
func MarkerNameFromSurface(surface models.SurfaceType) string {
	if name, ok := SurfaceToMarkerName[surface]; ok {
		return name
	}
	return SurfaceToMarkerName[catalog.DefaultSurface]
}

// MarkerDescriptionFromGraffiti returns the legacy label for a graffiti type
func MarkerDescriptionFromGraffiti(g models.GraffitiType) string {
	if desc, ok := GraffitiToMarkerDescription[g]; ok {
		return desc
	}
	return GraffitiToMarkerDescription[catalog.DefaultGraffitiType]
}

// LegacyMarkerNames returns every legacy marker name, sorted
func LegacyMarkerNames() []string {
	return sortedKeys(MarkerNameToSurface)
}

// LegacyMarkerDescriptions returns every legacy marker description, sorted
func LegacyMarkerDescriptions() []string {
	return sortedKeys(MarkerDescriptionToGraffiti)
}

// lookup tries an exact match first, then a trimmed case-insensitive one
func lookup[V any](table map[string]V, key string) (V, bool) {
	if v, ok := table[key]; ok {
		return v, true
	}
	key = strings.TrimSpace(key)
	for k, v := range table {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

func sortedKeys[V any](table map[string]V) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
