// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	service "github.com/okian/versus/internal/app"
)

// H2HHandler handles head-to-head report requests.
type H2HHandler struct {
	deps Dependencies
}

// NewH2HHandler creates a new head-to-head handler.
func NewH2HHandler(deps Dependencies) *H2HHandler {
	return &H2HHandler{deps: deps}
}

// HandleGetH2H handles GET /h2h?p1=<name>&p2=<name>&count=N requests.
// count is optional; when present it must be a positive integer within
// the configured maximum.
func (h *H2HHandler) HandleGetH2H(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	p1 := strings.TrimSpace(r.URL.Query().Get("p1"))
	p2 := strings.TrimSpace(r.URL.Query().Get("p2"))
	if p1 == "" || p2 == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("p1 and p2 are required"))
		return
	}

	count := h.deps.DefaultGameCount()
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", errors.New("count must be a positive integer"))
			return
		}
		if n > h.deps.MaxGameCount() {
			writeError(w, http.StatusBadRequest, "count_exceeded", ErrBadRequest)
			return
		}
		count = n
	}

	report, err := h.deps.Compare(r.Context(), p1, p2, count)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCompetitor):
			writeError(w, http.StatusNotFound, "unknown_competitor", err)
		case errors.Is(err, service.ErrSameCompetitor):
			writeError(w, http.StatusBadRequest, "bad_request", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, report)
}
