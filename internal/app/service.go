// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/versus/internal/domain/matchup"
	"github.com/okian/versus/internal/domain/roster"
	"github.com/okian/versus/internal/domain/stats"
	"github.com/okian/versus/internal/domain/types"
	"github.com/okian/versus/pkg/logger"
	"github.com/okian/versus/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultGameCount = 10
	defaultMaxCount  = 50
)

// defaultFormWindows are the recent-form windows reported when none
// are configured.
var defaultFormWindows = []int{5, 10}

// Service implements head-to-head comparison on top of a game source,
// a static roster, and the statistics engine.
type Service struct {
	mu sync.RWMutex

	// Core components
	source  matchup.Source
	roster  *roster.Roster
	fetcher *matchup.Fetcher
	engine  *stats.Engine

	// Configuration
	defaultCount int
	maxCount     int
	maxPages     int
	formWindows  []int
	minCoverRate float64

	// State
	started         bool
	reportsComputed int64

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the game source the service fetches from.
func WithSource(src matchup.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithRoster sets the competitor roster.
func WithRoster(r *roster.Roster) Option {
	return func(s *Service) {
		if r != nil {
			s.roster = r
		}
	}
}

// WithDefaultGameCount sets the qualifying-set target used when the
// caller does not supply one.
func WithDefaultGameCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.defaultCount = count
		}
	}
}

// WithMaxGameCount caps the caller-supplied qualifying-set target.
func WithMaxGameCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.maxCount = count
		}
	}
}

// WithMaxSourcePages caps pages visited per fetch; zero leaves the
// scan unbounded.
func WithMaxSourcePages(pages int) Option {
	return func(s *Service) {
		if pages >= 0 {
			s.maxPages = pages
		}
	}
}

// WithFormWindows sets the recent-form window sizes reported per
// comparison.
func WithFormWindows(windows []int) Option {
	return func(s *Service) {
		if len(windows) > 0 {
			s.formWindows = windows
		}
	}
}

// WithMinCoverRate sets the minimum historical hit rate for reported
// spread lines.
func WithMinCoverRate(rate float64) Option {
	return func(s *Service) {
		if rate > 0 && rate <= 1 {
			s.minCoverRate = rate
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultCount: defaultGameCount,
		maxCount:     defaultMaxCount,
		formWindows:  defaultFormWindows,
		minCoverRate: 0, // engine default applies
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.source == nil {
		return ErrNoSource
	}

	if s.log == nil {
		s.log = logger.Get()
	}
	if s.roster == nil {
		s.roster = roster.NBA()
	}

	s.fetcher = matchup.New(s.source,
		matchup.WithMaxPages(s.maxPages),
		matchup.WithLogger(s.log),
	)

	engineOpts := []stats.Option{}
	if s.minCoverRate > 0 {
		engineOpts = append(engineOpts, stats.WithMinCoverRate(s.minCoverRate))
	}
	s.engine = stats.NewEngine(engineOpts...)

	metrics.UpdateRosterSize(s.roster.Size())

	s.started = true
	s.log.Info(ctx, "head-to-head service started",
		logger.Int("rosterSize", s.roster.Size()),
		logger.Int("defaultGameCount", s.defaultCount),
		logger.Int("maxSourcePages", s.maxPages),
	)
	return nil
}

// Stop shuts the service down. It exists for symmetry with Start; the
// service holds no background resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// DefaultGameCount returns the configured default qualifying-set target.
func (s *Service) DefaultGameCount() int {
	return s.defaultCount
}

// MaxGameCount returns the configured cap on the qualifying-set target.
func (s *Service) MaxGameCount() int {
	return s.maxCount
}

// Competitors lists the roster for presentation layers.
func (s *Service) Competitors(ctx context.Context) []roster.Competitor {
	return s.roster.List()
}

// Compare resolves both display names, assembles the qualifying game
// set, and derives the three statistical reports. An unknown name
// fails before any fetch is attempted. A source failure mid-scan is
// not an error: the report carries the outcome tag and whatever games
// were accumulated.
func (s *Service) Compare(ctx context.Context, name1, name2 string, count int) (types.Report, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return types.Report{}, ErrNotStarted
	}

	p1, ok := s.roster.Resolve(name1)
	if !ok {
		return types.Report{}, fmt.Errorf("%w: %q", ErrUnknownCompetitor, name1)
	}
	p2, ok := s.roster.Resolve(name2)
	if !ok {
		return types.Report{}, fmt.Errorf("%w: %q", ErrUnknownCompetitor, name2)
	}
	if p1.ID == p2.ID {
		return types.Report{}, fmt.Errorf("%w: %q and %q", ErrSameCompetitor, name1, name2)
	}

	if count <= 0 {
		count = s.defaultCount
	}
	if count > s.maxCount {
		count = s.maxCount
	}

	start := time.Now()
	games, outcome := s.fetcher.Fetch(ctx, p1.ID, p2.ID, count)
	metrics.RecordFetchDuration(float64(time.Since(start).Milliseconds()))
	metrics.RecordFetchOutcome(string(outcome))
	metrics.RecordGamesAdmitted(len(games))
	metrics.UpdateLastFetchGames(len(games))

	record := s.engine.Summarize(games, p1.ID)
	metrics.RecordGamesSkipped(record.Skipped)

	report := types.Report{
		Player1:        types.CompetitorRef{ID: p1.ID, Name: p1.Name},
		Player2:        types.CompetitorRef{ID: p2.ID, Name: p2.Name},
		GamesRequested: count,
		GamesFound:     len(games),
		Outcome:        string(outcome),
		Record:         record,
		Spreads:        s.engine.CoveringSpreads(games, p1.ID),
		Form:           make([]stats.FormSnapshot, 0, len(s.formWindows)),
	}
	for _, w := range s.formWindows {
		report.Form = append(report.Form, s.engine.Form(games, p1.ID, w))
	}

	s.mu.Lock()
	s.reportsComputed++
	s.mu.Unlock()
	metrics.RecordReportComputed()

	s.log.Debug(ctx, "report computed",
		logger.String("player1", p1.Name),
		logger.String("player2", p2.Name),
		logger.Int("gamesFound", len(games)),
		logger.String("outcome", string(outcome)),
	)
	return report, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"defaultGameCount": s.defaultCount,
		"maxGameCount":     s.maxCount,
		"maxSourcePages":   s.maxPages,
		"formWindows":      s.formWindows,
		"reportsComputed":  s.reportsComputed,
	}
	if s.roster != nil {
		stats["rosterSize"] = s.roster.Size()
	}
	return stats
}
