// Package matchup assembles the qualifying game set for a head-to-head
// pairing by driving a paginated game source.
package matchup

import (
	"context"

	"github.com/okian/versus/internal/domain/model"
	"github.com/okian/versus/pkg/logger"
)

// Source is the game source boundary. Page returns the raw games on one
// page for the anchor competitor; an empty slice signals exhaustion and
// an error signals any transport, timeout, or payload failure.
type Source interface {
	Page(ctx context.Context, competitorID string, page int) ([]model.Game, error)
}

// Outcome tags how a fetch terminated, so callers can tell "these two
// have never played" apart from "the source broke mid-scan".
type Outcome string

// Fetch outcomes.
const (
	OutcomeTargetReached Outcome = "target_reached"
	OutcomeExhausted     Outcome = "exhausted"
	OutcomeSourceFailed  Outcome = "source_failed"
	OutcomePageLimit     Outcome = "page_limit"
)

// Fetcher drives a Source across successive pages and filters the
// stream down to completed games between exactly two competitors.
// Fetches are sequential: one page request completes before the next
// is issued, and nothing is cached across calls.
type Fetcher struct {
	source   Source
	maxPages int // 0 means unbounded
	log      logger.Logger
}

// Option applies a configuration option to the Fetcher.
type Option func(*Fetcher)

// WithMaxPages caps the number of pages visited per fetch. Zero (the
// default) leaves the scan unbounded, preserving the original
// keep-paging-until-exhausted behavior; a positive cap is a defensive
// guard against a source that never runs out of non-matching pages.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		if n >= 0 {
			f.maxPages = n
		}
	}
}

// WithLogger sets a custom logger for the fetcher.
func WithLogger(log logger.Logger) Option {
	return func(f *Fetcher) {
		if log != nil {
			f.log = log
		}
	}
}

// New creates a Fetcher over the given source.
func New(source Source, opts ...Option) *Fetcher {
	f := &Fetcher{
		source: source,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch accumulates up to target completed games played between player1
// and player2, in the order the source delivers them (most-recent-first
// upstream). Pages are requested for player1 only; the filter admits
// both home/away orderings of the pair. A source failure or an empty
// page terminates the scan and yields the partial result — a short or
// empty set is not an error state for the caller.
func (f *Fetcher) Fetch(ctx context.Context, player1, player2 string, target int) ([]model.Game, Outcome) {
	games := make([]model.Game, 0, target)
	if target <= 0 {
		return games, OutcomeTargetReached
	}

	for page := 1; ; page++ {
		if f.maxPages > 0 && page > f.maxPages {
			f.debug(ctx, "page limit reached", logger.Int("page", page), logger.Int("found", len(games)))
			return games, OutcomePageLimit
		}

		raw, err := f.source.Page(ctx, player1, page)
		if err != nil {
			f.debug(ctx, "source failed, returning partial result",
				logger.Int("page", page),
				logger.Int("found", len(games)),
				logger.Error(err),
			)
			return games, OutcomeSourceFailed
		}
		if len(raw) == 0 {
			return games, OutcomeExhausted
		}

		for _, g := range raw {
			if !g.Ended() || !g.Involves(player1, player2) {
				continue
			}
			games = append(games, g)
			if len(games) >= target {
				return games, OutcomeTargetReached
			}
		}
	}
}

func (f *Fetcher) debug(ctx context.Context, msg string, fields ...logger.Field) {
	if f.log != nil {
		f.log.Debug(ctx, msg, fields...)
	}
}
