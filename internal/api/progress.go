package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meur/blackout/internal/models"
	"github.com/meur/blackout/internal/rep"
	"github.com/meur/blackout/internal/unlocks"
)

// handlePlayerProgress returns a player's REP total, rank and unlocks.
// ?track= selects the current track if the player has unlocked it.
func (s *Server) handlePlayerProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	crew := r.URL.Query().Get("crew")
	if crew == "" {
		crew = s.defaults.Crew
	} else if !unlocks.IsCrew(crew) {
		respondError(w, http.StatusBadRequest, "Unknown crew")
		return
	}

	total, count, err := s.store.UserRep(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch player REP")
		return
	}

	tracks := unlocks.UnlockedTracks(total)
	var selected []string
	if id := r.URL.Query().Get("track"); id != "" {
		for _, t := range tracks {
			if t.ID == id {
				selected = append(selected, id)
			}
		}
	}

	respondJSON(w, http.StatusOK, models.PlayerProgress{
		UserID:         userID,
		TotalRep:       total,
		MarkerCount:    count,
		Rank:           rep.RankProgressFor(total),
		UnlockedTracks: tracks,
		CurrentTrack:   unlocks.CurrentTrack(selected, s.defaults),
		StylesUnlocked: len(unlocks.UnlockedStyles(total, crew)),
	})
}

// parseRep reads the optional ?rep= filter; ok is false when absent
func parseRep(r *http.Request) (total int, ok bool, err error) {
	raw := r.URL.Query().Get("rep")
	if raw == "" {
		return 0, false, nil
	}
	total, err = strconv.Atoi(raw)
	return total, err == nil, err
}

// handleGetStyles returns styles, optionally only those unlocked at ?rep=
func (s *Server) handleGetStyles(w http.ResponseWriter, r *http.Request) {
	crew := r.URL.Query().Get("crew")
	if crew != "" && !unlocks.IsCrew(crew) {
		respondError(w, http.StatusBadRequest, "Unknown crew")
		return
	}

	total, filtered, err := parseRep(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "rep must be an integer")
		return
	}

	var styles []models.Style
	if filtered {
		styles = unlocks.UnlockedStyles(total, crew)
	} else {
		for _, st := range unlocks.GenerateAllStyles() {
			if crew == "" || st.Crew == crew {
				styles = append(styles, st)
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"styles":      styles,
		"total_count": len(styles),
	})
}

// handleGetTracks returns tracks, optionally only those unlocked at ?rep=
func (s *Server) handleGetTracks(w http.ResponseWriter, r *http.Request) {
	total, filtered, err := parseRep(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "rep must be an integer")
		return
	}

	if filtered {
		respondJSON(w, http.StatusOK, unlocks.UnlockedTracks(total))
		return
	}
	respondJSON(w, http.StatusOK, unlocks.Tracks())
}
