package models

import (
	"time"
)

// LatLng is a GPS position
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Comment is a single comment on a marker
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Marker is a placed drop. Legacy records only carry Name/Description;
// migrated records carry Surface/GraffitiType and a recomputed score.
type Marker struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"user_id"`
	Position           LatLng        `json:"position"`
	Name               string        `json:"name,omitempty"`        // Legacy surface label
	Description        string        `json:"description,omitempty"` // Legacy graffiti label
	Surface            SurfaceType   `json:"surface,omitempty"`
	GraffitiType       GraffitiType  `json:"graffiti_type,omitempty"`
	RepEarned          *int          `json:"rep_earned,omitempty"`
	RepBreakdown       *RepBreakdown `json:"rep_breakdown,omitempty"`
	DistanceFromCenter *float64      `json:"distance_from_center,omitempty"` // Metres
	Likes              []string      `json:"likes"`                          // User IDs, unique
	Comments           []Comment     `json:"comments"`
	IsEdited           bool          `json:"is_edited"`
	MigratedAt         *time.Time    `json:"migrated_at,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// MarkerCreate is the request body for placing a marker
type MarkerCreate struct {
	UserID             string       `json:"user_id"`
	Position           LatLng       `json:"position"`
	Surface            SurfaceType  `json:"surface"`
	GraffitiType       GraffitiType `json:"graffiti_type"`
	DistanceFromCenter *float64     `json:"distance_from_center,omitempty"`
	Options            RepOptions   `json:"options"`
}

// MarkerUpdate is the request body for editing a marker
type MarkerUpdate struct {
	Surface            *SurfaceType  `json:"surface,omitempty"`
	GraffitiType       *GraffitiType `json:"graffiti_type,omitempty"`
	Position           *LatLng       `json:"position,omitempty"`
	DistanceFromCenter *float64      `json:"distance_from_center,omitempty"`
	Options            *RepOptions   `json:"options,omitempty"`
}

// CommentCreate is the request body for commenting on a marker
type CommentCreate struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// MigrationStats summarises how much of a marker set still needs migrating
type MigrationStats struct {
	Total               int `json:"total"`
	NeedsMigration      int `json:"needs_migration"`
	AlreadyMigrated     int `json:"already_migrated"`
	MigrationPercentage int `json:"migration_percentage"`
}

// MigrationError records why a single marker failed bulk migration
type MigrationError struct {
	MarkerID string `json:"marker_id"`
	Error    string `json:"error"`
}

// BulkMigrationResult is the outcome of a validated batch migration
type BulkMigrationResult struct {
	MigratedMarkers []Marker         `json:"migrated_markers"`
	SuccessCount    int              `json:"success_count"`
	FailureCount    int              `json:"failure_count"`
	Errors          []MigrationError `json:"errors"`
}
