// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/versus/internal/domain/roster"
	"github.com/okian/versus/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Compare produces a head-to-head report for two display names.
	Compare(ctx context.Context, name1, name2 string, count int) (types.Report, error)

	// Competitors lists the resolvable roster.
	Competitors(ctx context.Context) []roster.Competitor

	// DefaultGameCount and MaxGameCount expose the count bounds.
	DefaultGameCount() int
	MaxGameCount() int
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	h2hHandler         *H2HHandler
	competitorsHandler *CompetitorsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		h2hHandler:         NewH2HHandler(deps),
		competitorsHandler: NewCompetitorsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/h2h", MetricsMiddleware(s.h2hHandler.HandleGetH2H, "h2h"))
	mux.HandleFunc("/competitors", MetricsMiddleware(s.competitorsHandler.HandleGetCompetitors, "competitors"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
