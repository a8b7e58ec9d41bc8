package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meur/blackout/internal/catalog"
	"github.com/meur/blackout/internal/migration"
	"github.com/meur/blackout/internal/models"
	"github.com/meur/blackout/internal/rep"
	"github.com/meur/blackout/internal/storage"
	"github.com/meur/blackout/internal/unlocks"
)

// markerResponse is returned when a drop is placed or edited
type markerResponse struct {
	Marker  *models.Marker  `json:"marker"`
	Tips    []string        `json:"tips"`
	Unlocks unlocks.Unlocks `json:"unlocks"`
}

// scoreMarker recomputes REP for m. Flags implied by the surface and the
// streak distance are added to the ones the player selected.
func scoreMarker(m *models.Marker, selected models.RepOptions) models.RepResult {
	derived := rep.OptionsForMarker(m.Surface, m.DistanceFromCenter)
	opts := models.RepOptions{
		IsHeaven:        selected.IsHeaven || derived.IsHeaven,
		IsMovingTarget:  selected.IsMovingTarget || derived.IsMovingTarget,
		IsHighRisk:      selected.IsHighRisk || derived.IsHighRisk,
		IsCollaboration: selected.IsCollaboration,
		HasStreakBonus:  selected.HasStreakBonus || derived.HasStreakBonus,
	}

	result := rep.Calculate(m.Surface, m.GraffitiType, opts)
	earned := result.Rep
	breakdown := result.Breakdown
	m.RepEarned = &earned
	m.RepBreakdown = &breakdown
	return result
}

// handleListMarkers returns markers, optionally for one user
func (s *Server) handleListMarkers(w http.ResponseWriter, r *http.Request) {
	markers, err := s.store.ListMarkers(r.URL.Query().Get("user"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch markers")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"markers":     markers,
		"total_count": len(markers),
	})
}

// handleCreateMarker places a new drop and scores it once
func (s *Server) handleCreateMarker(w http.ResponseWriter, r *http.Request) {
	var req models.MarkerCreate
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	before, _, err := s.store.UserRep(req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch player REP")
		return
	}

	marker := &models.Marker{
		UserID:             req.UserID,
		Position:           req.Position,
		Surface:            catalog.NormalizeSurface(req.Surface),
		GraffitiType:       catalog.NormalizeGraffitiType(req.GraffitiType),
		DistanceFromCenter: req.DistanceFromCenter,
		Likes:              []string{},
		Comments:           []models.Comment{},
	}
	result := scoreMarker(marker, req.Options)

	if err := s.store.CreateMarker(marker); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create marker")
		return
	}

	respondJSON(w, http.StatusCreated, markerResponse{
		Marker:  marker,
		Tips:    result.Tips,
		Unlocks: unlocks.NewUnlocks(before, before+result.Rep),
	})
}

// handleGetMarker returns a marker by ID
func (s *Server) handleGetMarker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	marker, err := s.store.GetMarker(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch marker")
		return
	}
	if marker == nil {
		respondError(w, http.StatusNotFound, "Marker not found")
		return
	}

	respondJSON(w, http.StatusOK, marker)
}

// handleUpdateMarker edits a drop and recomputes its REP
func (s *Server) handleUpdateMarker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetMarker(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch marker")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Marker not found")
		return
	}

	var update models.MarkerUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	before, _, err := s.store.UserRep(existing.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch player REP")
		return
	}
	previous := 0
	if existing.RepEarned != nil {
		previous = *existing.RepEarned
	}

	// Legacy records are upgraded before the edit is applied
	marker := migration.MigrateMarker(*existing)
	if update.Surface != nil {
		marker.Surface = catalog.NormalizeSurface(*update.Surface)
	}
	if update.GraffitiType != nil {
		marker.GraffitiType = catalog.NormalizeGraffitiType(*update.GraffitiType)
	}
	if update.Position != nil {
		marker.Position = *update.Position
	}
	if update.DistanceFromCenter != nil {
		marker.DistanceFromCenter = update.DistanceFromCenter
	}
	var selected models.RepOptions
	if update.Options != nil {
		selected = *update.Options
	}

	result := scoreMarker(&marker, selected)
	marker.IsEdited = true
	marker.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateMarker(&marker); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update marker")
		return
	}

	after := before - previous + result.Rep
	respondJSON(w, http.StatusOK, markerResponse{
		Marker:  &marker,
		Tips:    result.Tips,
		Unlocks: unlocks.NewUnlocks(before, after),
	})
}

// handleDeleteMarker deletes a marker by ID
func (s *Server) handleDeleteMarker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteMarker(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Marker not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete marker")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleAddLike records a like from a user
func (s *Server) handleAddLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		UserID string `json:"user_id"`
	}
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.UserID) == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	marker, err := s.store.AddLike(id, strings.TrimSpace(req.UserID))
	if err != nil {
		respondStoreError(w, err, "Failed to like marker")
		return
	}

	respondJSON(w, http.StatusOK, marker)
}

// handleRemoveLike removes a user's like
func (s *Server) handleRemoveLike(w http.ResponseWriter, r *http.Request) {
	marker, err := s.store.RemoveLike(chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		respondStoreError(w, err, "Failed to unlike marker")
		return
	}

	respondJSON(w, http.StatusOK, marker)
}

// handleAddComment appends a comment
func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.CommentCreate
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusBadRequest, "user_id and text are required")
		return
	}

	comment, err := s.store.AddComment(id, req)
	if err != nil {
		respondStoreError(w, err, "Failed to add comment")
		return
	}

	respondJSON(w, http.StatusCreated, comment)
}

func respondStoreError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Marker not found")
		return
	}
	respondError(w, http.StatusInternalServerError, message)
}
