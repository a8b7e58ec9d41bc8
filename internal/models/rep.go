package models

// RepOptions are the situational modifiers applied on top of the base score.
// The zero value means no modifier is active.
type RepOptions struct {
	IsHeaven        bool `json:"is_heaven,omitempty"`
	IsMovingTarget  bool `json:"is_moving_target,omitempty"`
	IsHighRisk      bool `json:"is_high_risk,omitempty"`
	IsCollaboration bool `json:"is_collaboration,omitempty"`
	HasStreakBonus  bool `json:"has_streak_bonus,omitempty"`
}

// RepBreakdown explains how a REP amount was computed
type RepBreakdown struct {
	SurfaceBase          int      `json:"surface_base"`
	GraffitiBase         int      `json:"graffiti_base"`
	SurfaceMultiplier    float64  `json:"surface_multiplier"`
	DifficultyMultiplier float64  `json:"difficulty_multiplier"`
	TotalMultiplier      float64  `json:"total_multiplier"`
	TotalRep             int      `json:"total_rep"`
	Bonuses              []string `json:"bonuses"`
}

// RepResult is the output of a REP calculation
type RepResult struct {
	Rep       int          `json:"rep"`
	Breakdown RepBreakdown `json:"breakdown"`
	Tips      []string     `json:"tips"`
}

// RepRequest is the request body for a standalone REP calculation
type RepRequest struct {
	Surface      SurfaceType  `json:"surface"`
	GraffitiType GraffitiType `json:"graffiti_type"`
	Options      RepOptions   `json:"options"`
}

// RankProgress describes where a REP total sits on the rank ladder
type RankProgress struct {
	CurrentRank    string  `json:"current_rank"`
	NextRank       *string `json:"next_rank"` // nil at the top tier
	Progress       float64 `json:"progress"`  // 0..100 within the current band
	RepToNextLevel int     `json:"rep_to_next_level"`
}
