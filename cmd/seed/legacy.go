package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meur/blackout/internal/logger"
	"github.com/meur/blackout/internal/models"
)

// legacyMarker is one record of a legacy marker export
type legacyMarker struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	Lat                float64         `json:"lat"`
	Lng                float64         `json:"lng"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	RepEarned          *int            `json:"repEarned"`
	DistanceFromCenter *float64        `json:"distanceFromCenter"`
	Likes              []string        `json:"likes"`
	Comments           []legacyComment `json:"comments"`
	Timestamp          string          `json:"timestamp"`
}

type legacyComment struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// stableID derives a deterministic ID so re-seeding the same export upserts
func stableID(userID string, lat, lng float64, name string) string {
	input := fmt.Sprintf("%s:%.6f:%.6f:%s", userID, lat, lng, name)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(input)).String()
}

// decodeExport parses a legacy export; an empty array is an error
func decodeExport(raw []byte) ([]legacyMarker, error) {
	var entries []legacyMarker
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse markers: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("marker export is empty")
	}
	return entries, nil
}

// parseTimestamp returns fallback when raw is empty or not RFC 3339
func parseTimestamp(raw string, fallback time.Time) (time.Time, bool) {
	if raw == "" {
		return fallback, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fallback, false
	}
	return t.UTC(), true
}

// toMarkers converts export entries into legacy-schema markers. Entries
// without a user id are skipped. repEarned is carried as-is; migration
// recomputes it.
func toMarkers(entries []legacyMarker, now time.Time) ([]models.Marker, int) {
	markers := make([]models.Marker, 0, len(entries))
	skipped := 0
	for _, e := range entries {
		userID := strings.TrimSpace(e.UserID)
		if userID == "" {
			skipped++
			continue
		}

		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = stableID(userID, e.Lat, e.Lng, e.Name)
		}

		created, ok := parseTimestamp(e.Timestamp, now)
		if !ok {
			logger.Warning("Marker %s has an unreadable timestamp %q", id, e.Timestamp)
		}

		likes := e.Likes
		if likes == nil {
			likes = []string{}
		}

		markers = append(markers, models.Marker{
			ID:                 id,
			UserID:             userID,
			Position:           models.LatLng{Lat: e.Lat, Lng: e.Lng},
			Name:               e.Name,
			Description:        e.Description,
			RepEarned:          e.RepEarned,
			DistanceFromCenter: e.DistanceFromCenter,
			Likes:              likes,
			Comments:           toComments(id, e.Comments, created),
			CreatedAt:          created,
			UpdatedAt:          created,
		})
	}
	return markers, skipped
}

func toComments(markerID string, in []legacyComment, fallback time.Time) []models.Comment {
	out := make([]models.Comment, 0, len(in))
	for i, c := range in {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s:comment:%d", markerID, i))).String()
		}
		created, ok := parseTimestamp(c.Timestamp, fallback)
		if !ok {
			logger.Warning("Comment %s on marker %s has an unreadable timestamp %q", id, markerID, c.Timestamp)
		}
		out = append(out, models.Comment{
			ID:        id,
			UserID:    strings.TrimSpace(c.UserID),
			Text:      c.Text,
			CreatedAt: created,
		})
	}
	return out
}
