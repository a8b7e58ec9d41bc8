// Package rep computes REP for a drop and derives rank progress from a
// REP total.
package rep

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/meur/blackout/internal/catalog"
	"github.com/meur/blackout/internal/models"
)

// Situational multipliers
const (
	HeavenMultiplier        = 1.5
	MovingTargetMultiplier  = 1.25
	HighRiskMultiplier      = 1.5
	CollaborationMultiplier = 1.25
	StreakMultiplier        = 1.25
)

// Calculate returns the REP earned for painting graffitiType on surface.
// Unknown identifiers fall back to the catalog defaults; it never fails.
func Calculate(surface models.SurfaceType, graffitiType models.GraffitiType, opts models.RepOptions) models.RepResult {
	s := catalog.Surface(surface)
	g := catalog.GraffitiType(graffitiType)
	diffMult := catalog.DifficultyMultiplier(g.Difficulty)

	total := s.Multiplier * diffMult
	factors := []float64{s.Multiplier, diffMult}
	var bonuses []string

	if s.Multiplier > 1 {
		bonuses = append(bonuses, fmt.Sprintf("%s surface ×%s", s.Label, formatMultiplier(s.Multiplier)))
	}
	if diffMult > 1 {
		bonuses = append(bonuses, fmt.Sprintf("%s difficulty ×%s", g.Difficulty, formatMultiplier(diffMult)))
	}
	if opts.IsHeaven {
		total *= HeavenMultiplier
		factors = append(factors, HeavenMultiplier)
		bonuses = append(bonuses, fmt.Sprintf("Heaven spot ×%s", formatMultiplier(HeavenMultiplier)))
	}
	if opts.IsMovingTarget {
		total *= MovingTargetMultiplier
		factors = append(factors, MovingTargetMultiplier)
		bonuses = append(bonuses, fmt.Sprintf("Moving target ×%s", formatMultiplier(MovingTargetMultiplier)))
	}
	if opts.IsHighRisk {
		total *= HighRiskMultiplier
		factors = append(factors, HighRiskMultiplier)
		bonuses = append(bonuses, fmt.Sprintf("High risk ×%s", formatMultiplier(HighRiskMultiplier)))
	}
	if opts.IsCollaboration {
		total *= CollaborationMultiplier
		factors = append(factors, CollaborationMultiplier)
		bonuses = append(bonuses, fmt.Sprintf("Crew collaboration ×%s", formatMultiplier(CollaborationMultiplier)))
	}
	if opts.HasStreakBonus {
		total *= StreakMultiplier
		factors = append(factors, StreakMultiplier)
		bonuses = append(bonuses, fmt.Sprintf("Streak bonus ×%s", formatMultiplier(StreakMultiplier)))
	}
	if bonuses == nil {
		bonuses = []string{}
	}

	rep := roundHalfUp(s.BaseRep+g.BaseRep, factors)

	return models.RepResult{
		Rep: rep,
		Breakdown: models.RepBreakdown{
			SurfaceBase:          s.BaseRep,
			GraffitiBase:         g.BaseRep,
			SurfaceMultiplier:    s.Multiplier,
			DifficultyMultiplier: diffMult,
			TotalMultiplier:      total,
			TotalRep:             rep,
			Bonuses:              bonuses,
		},
		Tips: tips(s, g, opts),
	}
}

// roundHalfUp returns floor(base × Π factors + 1/2) on exact rationals.
func roundHalfUp(base int, factors []float64) int {
	v := new(big.Rat).SetInt64(int64(base))
	for _, f := range factors {
		v.Mul(v, decimalRat(f))
	}
	v.Add(v, big.NewRat(1, 2))
	// Div is Euclidean; the denominator is positive so this is floor
	return int(new(big.Int).Div(v.Num(), v.Denom()).Int64())
}

// decimalRat converts a multiplier to the rational its shortest decimal
// form denotes (1.3 is 13/10, not the nearest binary fraction).
func decimalRat(f float64) *big.Rat {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'f', -1, 64))
	if !ok {
		return new(big.Rat).SetFloat64(f)
	}
	return r
}

func formatMultiplier(m float64) string {
	return fmt.Sprintf("%g", m)
}

func tips(s models.SurfaceConfig, g models.GraffitiTypeConfig, opts models.RepOptions) []string {
	out := []string{}
	if s.Multiplier <= 1 {
		out = append(out, "Elevated, transit and hazard surfaces carry a category bonus.")
	}
	if g.Difficulty == models.DifficultyEasy {
		out = append(out, "Harder styles multiply your REP: try a throw-up or a piece.")
	}
	if !opts.IsHeaven {
		out = append(out, fmt.Sprintf("Heaven spots like rooftops and bridges pay ×%g.", HeavenMultiplier))
	}
	if opts.IsHighRisk {
		out = append(out, "High-risk spot: keep it quick and watch for cameras.")
	}
	if !opts.IsCollaboration {
		out = append(out, "Paint with your crew for a collaboration bonus.")
	}
	if !opts.HasStreakBonus {
		out = append(out, fmt.Sprintf("Drop within %gm of your last spot to keep a streak going.", catalog.StreakRadius))
	}
	return out
}

// OptionsForMarker derives situational flags from a stored marker's surface
// and its distance from the session centre. Collaboration cannot be inferred
// from a record and is always off.
func OptionsForMarker(surface models.SurfaceType, distanceFromCenter *float64) models.RepOptions {
	return models.RepOptions{
		IsHeaven:       catalog.IsHeavenSurface(surface),
		IsMovingTarget: catalog.IsMovingSurface(surface),
		IsHighRisk:     catalog.IsHighRiskSurface(surface),
		HasStreakBonus: distanceFromCenter != nil && *distanceFromCenter <= catalog.StreakRadius,
	}
}
