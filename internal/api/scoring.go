package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meur/blackout/internal/catalog"
	"github.com/meur/blackout/internal/models"
	"github.com/meur/blackout/internal/rep"
)

// handleGetSurfaces returns the surface catalog
func (s *Server) handleGetSurfaces(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.SurfaceList())
}

// handleGetGraffitiTypes returns the graffiti-type catalog
func (s *Server) handleGetGraffitiTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.GraffitiTypeList())
}

// handleCalculateRep previews the REP for a drop without storing anything
func (s *Server) handleCalculateRep(w http.ResponseWriter, r *http.Request) {
	var req models.RepRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	respondJSON(w, http.StatusOK, rep.Calculate(req.Surface, req.GraffitiType, req.Options))
}

func (s *Server) handleGetRanks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rep.Ranks())
}

// handleGetRankProgress returns rank progress for a REP total
func (s *Server) handleGetRankProgress(w http.ResponseWriter, r *http.Request) {
	total, err := strconv.Atoi(chi.URLParam(r, "rep"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "rep must be an integer")
		return
	}

	respondJSON(w, http.StatusOK, rep.RankProgressFor(total))
}
