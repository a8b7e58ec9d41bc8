// Package unlocks derives the cosmetic styles and music tracks a player has
// earned from their REP total.
package unlocks

import (
	"fmt"

	"github.com/meur/blackout/internal/catalog"
	"github.com/meur/blackout/internal/models"
	"github.com/meur/blackout/internal/rep"
)

// VariantsPerStyle is the number of variants generated per crew and graffiti type
const VariantsPerStyle = 5

var crews = []models.Crew{
	{ID: "southside", Name: "Southside Kings", Color: "#e63946"},
	{ID: "harbour", Name: "Harbour Rats", Color: "#457b9d"},
	{ID: "ghostline", Name: "Ghostline", Color: "#a8dadc"},
	{ID: "rustwater", Name: "Rustwater Collective", Color: "#f4a261"},
}

var variants = [VariantsPerStyle]struct {
	name   string
	rarity string
}{
	{"Classic", "common"},
	{"Chrome", "common"},
	{"Neon", "rare"},
	{"Drip", "epic"},
	{"Gold", "legendary"},
}

// difficultyUnlock is the REP at which the first variant of a style unlocks
var difficultyUnlock = map[models.Difficulty]int{
	models.DifficultyEasy:   0,
	models.DifficultyMedium: 50,
	models.DifficultyHard:   200,
	models.DifficultyExpert: 500,
}

// variantStep is the extra REP needed for each variant after the first
const variantStep = 50

var tracks = []models.Track{
	{ID: "night-shift", Title: "Night Shift", Artist: "K Road Sound System", UnlockRep: 0},
	{ID: "cans-and-cones", Title: "Cans & Cones", Artist: "Ponsonby Drip", UnlockRep: 25},
	{ID: "last-train", Title: "Last Train to Swanson", Artist: "Westside Static", UnlockRep: 100},
	{ID: "rooftop-haze", Title: "Rooftop Haze", Artist: "Aro Valley Heads", UnlockRep: 200},
	{ID: "yard-dog", Title: "Yard Dog", Artist: "Otahuhu Low End", UnlockRep: 300},
	{ID: "heaven-spot", Title: "Heaven Spot", Artist: "Southern Lights", UnlockRep: 500},
	{ID: "burner-season", Title: "Burner Season", Artist: "Te Aro Tapes", UnlockRep: 750},
	{ID: "all-city", Title: "All City", Artist: "Blackout Allstars", UnlockRep: 1000},
}

// Crews returns the playable crews
func Crews() []models.Crew {
	out := make([]models.Crew, len(crews))
	copy(out, crews)
	return out
}

// IsCrew reports whether id names a crew
func IsCrew(id string) bool {
	for _, c := range crews {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Tracks returns the music track table, ascending by unlock REP
func Tracks() []models.Track {
	out := make([]models.Track, len(tracks))
	copy(out, tracks)
	return out
}

// GenerateAllStyles builds the full style table as the cross product of
// crews, graffiti types and variants. The order is stable.
func GenerateAllStyles() []models.Style {
	types := catalog.GraffitiTypeList()
	styles := make([]models.Style, 0, len(crews)*len(types)*VariantsPerStyle)
	for _, crew := range crews {
		for _, g := range types {
			for i, v := range variants {
				variant := i + 1
				styles = append(styles, models.Style{
					ID:           fmt.Sprintf("%s_%s_v%d", crew.ID, g.ID, variant),
					Crew:         crew.ID,
					GraffitiType: g.ID,
					Variant:      variant,
					Name:         fmt.Sprintf("%s %s %s", crew.Name, g.Label, v.name),
					Rarity:       v.rarity,
					UnlockRep:    difficultyUnlock[g.Difficulty] + i*variantStep,
				})
			}
		}
	}
	return styles
}

// allStyles is derived once at start-up
var allStyles = GenerateAllStyles()

// UnlockedStyles returns the styles available at a REP total. An empty crew
// returns styles for every crew.
func UnlockedStyles(total int, crew string) []models.Style {
	out := []models.Style{}
	for _, s := range allStyles {
		if crew != "" && s.Crew != crew {
			continue
		}
		if s.UnlockRep <= total {
			out = append(out, s)
		}
	}
	return out
}

// UnlockedTracks returns the tracks available at a REP total
func UnlockedTracks(total int) []models.Track {
	out := []models.Track{}
	for _, t := range tracks {
		if t.UnlockRep <= total {
			out = append(out, t)
		}
	}
	return out
}

// Defaults holds the fallbacks used when a player has nothing selected
type Defaults struct {
	TrackID string `mapstructure:"track_id"`
	Crew    string `mapstructure:"crew"`
}

// DefaultConfig returns the built-in defaults: the first track and the first crew
func DefaultConfig() Defaults {
	return Defaults{
		TrackID: tracks[0].ID,
		Crew:    crews[0].ID,
	}
}

// TrackByID looks up a track
func TrackByID(id string) (models.Track, bool) {
	for _, t := range tracks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Track{}, false
}

// CurrentTrack picks the track to play: the first known entry of unlocked,
// then the configured default, then the first track in the table.
func CurrentTrack(unlocked []string, d Defaults) models.Track {
	for _, id := range unlocked {
		if t, ok := TrackByID(id); ok {
			return t
		}
	}
	if t, ok := TrackByID(d.TrackID); ok {
		return t
	}
	return tracks[0]
}

// Unlocks is what a player gains when their REP moves between two totals
type Unlocks struct {
	Styles []models.Style `json:"styles"`
	Tracks []models.Track `json:"tracks"`
	RankUp *string        `json:"rank_up,omitempty"`
}

// NewUnlocks returns the styles, tracks and rank reached by moving from
// prevRep to newRep. Moving down unlocks nothing.
func NewUnlocks(prevRep, newRep int) Unlocks {
	u := Unlocks{Styles: []models.Style{}, Tracks: []models.Track{}}
	if newRep <= prevRep {
		return u
	}
	for _, s := range allStyles {
		if s.UnlockRep > prevRep && s.UnlockRep <= newRep {
			u.Styles = append(u.Styles, s)
		}
	}
	for _, t := range tracks {
		if t.UnlockRep > prevRep && t.UnlockRep <= newRep {
			u.Tracks = append(u.Tracks, t)
		}
	}
	if before, after := rep.EnhancedRank(prevRep), rep.EnhancedRank(newRep); before != after {
		u.RankUp = &after
	}
	return u
}
