package rep

import (
	"math"

	"github.com/meur/blackout/internal/models"
)

// Rank is a tier on the rank ladder
type Rank struct {
	Label  string `json:"label"`
	MinRep int    `json:"min_rep"`
}

// ranks is the canonical ladder, ascending by MinRep
var ranks = []Rank{
	{Label: "NEWBIE", MinRep: 0},
	{Label: "ROOKIE", MinRep: 25},
	{Label: "TOY", MinRep: 50},
	{Label: "TAGGER", MinRep: 100},
	{Label: "VANDAL", MinRep: 200},
	{Label: "WRITER", MinRep: 300},
	{Label: "PRO", MinRep: 500},
	{Label: "MASTER", MinRep: 750},
	{Label: "LEGEND", MinRep: 1000},
}

// Ranks returns a copy of the rank ladder
func Ranks() []Rank {
	out := make([]Rank, len(ranks))
	copy(out, ranks)
	return out
}

// rankIndex returns the index of the highest tier whose threshold is <= rep.
// REP below zero sits on the first tier.
func rankIndex(rep int) int {
	for i := len(ranks) - 1; i >= 0; i-- {
		if ranks[i].MinRep <= rep {
			return i
		}
	}
	return 0
}

// EnhancedRank returns the rank label for a REP total
func EnhancedRank(rep int) string {
	return ranks[rankIndex(rep)].Label
}

// TierIndex returns the position of label on the ladder, or -1
func TierIndex(label string) int {
	for i, r := range ranks {
		if r.Label == label {
			return i
		}
	}
	return -1
}

// RankProgressFor reports the current rank, the next one and how far rep
// is through the current band. At the top tier there is no next rank and
// progress is reported as zero.
func RankProgressFor(rep int) models.RankProgress {
	i := rankIndex(rep)
	current := ranks[i]
	if i == len(ranks)-1 {
		return models.RankProgress{CurrentRank: current.Label}
	}

	next := ranks[i+1]
	band := float64(next.MinRep - current.MinRep)
	progress := float64(rep-current.MinRep) / band * 100
	progress = math.Max(0, math.Min(100, progress))

	toNext := next.MinRep - rep
	if toNext < 0 {
		toNext = 0
	}

	label := next.Label
	return models.RankProgress{
		CurrentRank:    current.Label,
		NextRank:       &label,
		Progress:       progress,
		RepToNextLevel: toNext,
	}
}
