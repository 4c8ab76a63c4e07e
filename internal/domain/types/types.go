// Package types contains common types used across the application
package types

import "github.com/okian/versus/internal/domain/stats"

// CompetitorRef identifies one side of a head-to-head report.
type CompetitorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Report is the full head-to-head analysis returned to callers.
type Report struct {
	Player1        CompetitorRef        `json:"player1"`
	Player2        CompetitorRef        `json:"player2"`
	GamesRequested int                  `json:"games_requested"`
	GamesFound     int                  `json:"games_found"`
	Outcome        string               `json:"outcome"`
	Record         stats.Summary        `json:"record"`
	Spreads        []stats.SpreadLine   `json:"spreads"`
	Form           []stats.FormSnapshot `json:"form"`
}
