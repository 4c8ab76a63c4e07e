// Package stats computes head-to-head statistics over an ordered
// sequence of completed games. All transforms are pure: they take an
// immutable game slice and return fresh values, so repeated calls on
// the same input yield identical output.
package stats

import (
	"sort"
	"strconv"
	"strings"

	"github.com/okian/versus/internal/domain/model"
)

// Default engine configuration constants.
const (
	defaultMinCoverRate = 0.80
	halfPoint           = 0.5
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMinCoverRate sets the minimum historical hit rate a spread line
// must reach to be reported. Values outside (0, 1] are ignored.
func WithMinCoverRate(rate float64) Option {
	return func(e *Engine) {
		if rate > 0 && rate <= 1 {
			e.minCoverRate = rate
		}
	}
}

// Summary is the win/loss record and margin report for a pairing,
// from player 1's perspective.
type Summary struct {
	WinsP1      int     `json:"wins_p1"`
	WinsP2      int     `json:"wins_p2"`
	AvgMarginP1 float64 `json:"avg_margin_p1"`
	AvgMarginP2 float64 `json:"avg_margin_p2"`
	Skipped     int     `json:"skipped"` // games dropped for malformed scores
}

// SpreadLine reports a historical cover rate for one half-point spread.
// Spread is expressed from the player's side: -6.5 reads "wins by more
// than 6.5 or loses by fewer than 6.5", matching book conventions.
type SpreadLine struct {
	Spread  float64 `json:"spread"`
	Hits    int     `json:"hits"`
	Total   int     `json:"total"`
	HitRate float64 `json:"hit_rate"`
}

// FormSnapshot is the short-term win count over a positional window.
type FormSnapshot struct {
	Window     int `json:"window"`
	Wins       int `json:"wins"`
	Considered int `json:"considered"`
}

// Engine holds the tunable parameters for the statistical transforms.
type Engine struct {
	minCoverRate float64
}

// NewEngine creates an Engine with default configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		minCoverRate: defaultMinCoverRate,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MarginFor returns the signed point margin of the given game from the
// perspective of playerID, and whether the score was parseable. A game
// whose score is absent or not "<int>-<int>" yields ok=false.
func MarginFor(g model.Game, playerID string) (int, bool) {
	if g.Home == nil || g.Away == nil {
		return 0, false
	}
	parts := strings.Split(g.Score, "-")
	if len(parts) != 2 {
		return 0, false
	}
	home, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	away, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if g.Home.ID == playerID {
		return home - away, true
	}
	return away - home, true
}

// Summarize produces the record and margin report for playerID against
// the single opponent present in games. A margin of exactly zero counts
// as an opponent win; there is no draw category. Malformed scores are
// skipped and reported via Summary.Skipped.
func (e *Engine) Summarize(games []model.Game, playerID string) Summary {
	var s Summary
	var sum int
	var counted int
	for _, g := range games {
		m, ok := MarginFor(g, playerID)
		if !ok {
			s.Skipped++
			continue
		}
		if m > 0 {
			s.WinsP1++
		} else {
			s.WinsP2++
		}
		sum += m
		counted++
	}
	if counted > 0 {
		s.AvgMarginP1 = float64(sum) / float64(counted)
		// The opponent's average is the exact negation, not an
		// independent computation.
		s.AvgMarginP2 = -s.AvgMarginP1
	}
	return s
}

// CoveringSpreads enumerates every half-point spread line between the
// observed margin extremes and returns the ones whose historical hit
// rate meets the engine's minimum, sorted by descending hit rate. The
// sort is stable, so rate ties stay in ascending-threshold order.
// Games with unparseable scores are excluded from the margin set
// entirely; with zero valid games the result is empty.
func (e *Engine) CoveringSpreads(games []model.Game, playerID string) []SpreadLine {
	margins := make([]int, 0, len(games))
	for _, g := range games {
		if m, ok := MarginFor(g, playerID); ok {
			margins = append(margins, m)
		}
	}
	if len(margins) == 0 {
		return nil
	}

	lo, hi := margins[0], margins[0]
	for _, m := range margins[1:] {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}

	total := len(margins)
	lines := make([]SpreadLine, 0, hi-lo+2)
	for t := lo - 1; t <= hi; t++ {
		line := float64(t) + halfPoint
		hits := 0
		for _, m := range margins {
			if float64(m) > line {
				hits++
			}
		}
		rate := float64(hits) / float64(total)
		if rate >= e.minCoverRate {
			lines = append(lines, SpreadLine{
				Spread:  -line,
				Hits:    hits,
				Total:   total,
				HitRate: rate,
			})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].HitRate > lines[j].HitRate
	})
	return lines
}

// Form counts wins for playerID over the first min(lastN, len(games))
// entries of the supplied order. The caller supplies games
// most-recent-first; the engine never re-sorts. The denominator is
// fixed by position: ties and malformed scores inside the window are
// skipped without shrinking it.
func (e *Engine) Form(games []model.Game, playerID string, lastN int) FormSnapshot {
	considered := lastN
	if considered < 0 {
		considered = 0
	}
	if considered > len(games) {
		considered = len(games)
	}
	snap := FormSnapshot{Window: lastN, Considered: considered}
	for _, g := range games[:considered] {
		if m, ok := MarginFor(g, playerID); ok && m > 0 {
			snap.Wins++
		}
	}
	return snap
}
