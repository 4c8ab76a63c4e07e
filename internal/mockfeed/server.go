package mockfeed

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/okian/versus/internal/domain/model"
)

// envelope mirrors the upstream ended-events response wrapper.
type envelope struct {
	Success int          `json:"success"`
	Results []model.Game `json:"results"`
}

// Handler serves the feed over the same wire shape as the real
// upstream: GET /v1/events/ended?team_id=<id>&page=<n>. Unknown teams
// return an empty result set, like the upstream does.
func (f *Feed) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/events/ended", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		teamID := r.URL.Query().Get("team_id")
		page := 1
		if pageStr := r.URL.Query().Get("page"); pageStr != "" {
			n, err := strconv.Atoi(pageStr)
			if err != nil || n < 1 {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(envelope{Success: 0})
				return
			}
			page = n
		}

		games, err := f.Page(r.Context(), teamID, page)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(envelope{Success: 0})
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(envelope{Success: 1, Results: games})
	})
	return mux
}
