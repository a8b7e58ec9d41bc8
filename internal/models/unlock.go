package models

// Crew is a player faction with its own cosmetic theme
type Crew struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Style is an unlockable cosmetic for a crew and graffiti type
type Style struct {
	ID           string       `json:"id"`
	Crew         string       `json:"crew"`
	GraffitiType GraffitiType `json:"graffiti_type"`
	Variant      int          `json:"variant"`
	Name         string       `json:"name"`
	Rarity       string       `json:"rarity"`
	UnlockRep    int          `json:"unlock_rep"`
}

// Track is an unlockable music track
type Track struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	UnlockRep int    `json:"unlock_rep"`
}

// PlayerProgress is a player's REP total with derived rank and unlocks
type PlayerProgress struct {
	UserID         string       `json:"user_id"`
	TotalRep       int          `json:"total_rep"`
	MarkerCount    int          `json:"marker_count"`
	Rank           RankProgress `json:"rank"`
	UnlockedTracks []Track      `json:"unlocked_tracks"`
	CurrentTrack   Track        `json:"current_track"`
	StylesUnlocked int          `json:"styles_unlocked"`
}
