// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// CompetitorsHandler handles roster listing requests.
type CompetitorsHandler struct {
	deps Dependencies
}

// NewCompetitorsHandler creates a new competitors handler.
func NewCompetitorsHandler(deps Dependencies) *CompetitorsHandler {
	return &CompetitorsHandler{deps: deps}
}

// HandleGetCompetitors handles GET /competitors requests.
func (h *CompetitorsHandler) HandleGetCompetitors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Competitors(r.Context()))
}
