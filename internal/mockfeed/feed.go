// Package mockfeed generates a deterministic fake ended-events feed.
// It backs local development and load testing: the same wire shape as
// the real upstream, reproducible from a seed, with a sprinkling of
// malformed scores so downstream skip handling gets exercised.
package mockfeed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/okian/versus/internal/domain/model"
	"github.com/okian/versus/internal/domain/roster"
)

// Default feed configuration constants.
const (
	defaultSeed         = 42
	defaultGamesPerPair = 12
	defaultPageSize     = 50

	scoreFloor = 85
	scoreSpan  = 45

	// One game in malformedEvery carries an empty score.
	malformedEvery = 20
)

// Option applies a configuration option to the Feed.
type Option func(*Feed)

// WithSeed sets the deterministic generation seed.
func WithSeed(seed int64) Option {
	return func(f *Feed) {
		f.seed = seed
	}
}

// WithGamesPerPair sets how many games each pairing gets.
func WithGamesPerPair(n int) Option {
	return func(f *Feed) {
		if n > 0 {
			f.gamesPerPair = n
		}
	}
}

// WithPageSize sets how many games one page response carries.
func WithPageSize(n int) Option {
	return func(f *Feed) {
		if n > 0 {
			f.pageSize = n
		}
	}
}

// WithRoster sets the competitors games are generated for.
func WithRoster(r *roster.Roster) Option {
	return func(f *Feed) {
		if r != nil {
			f.roster = r
		}
	}
}

// Feed holds a generated season of ended games, indexed per team in
// most-recent-first order. It implements matchup.Source directly, so
// tests can drive the paginator without a network hop.
type Feed struct {
	seed         int64
	gamesPerPair int
	pageSize     int
	roster       *roster.Roster

	byTeam map[string][]model.Game
}

// New creates a Feed and generates its games.
func New(opts ...Option) *Feed {
	f := &Feed{
		seed:         defaultSeed,
		gamesPerPair: defaultGamesPerPair,
		pageSize:     defaultPageSize,
		roster:       roster.NBA(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.generate()
	return f
}

// generate builds the full schedule. Deterministic for a given seed:
// game ids come from a uuid source seeded alongside the scores.
func (f *Feed) generate() {
	rng := rand.New(rand.NewSource(f.seed)) //nolint:gosec // deterministic seed for reproducible fixtures
	uuid.SetRand(rng)
	defer uuid.SetRand(nil)

	teams := f.roster.List()
	f.byTeam = make(map[string][]model.Game, len(teams))

	gameNo := 0
	for i := range teams {
		for j := i + 1; j < len(teams); j++ {
			for n := 0; n < f.gamesPerPair; n++ {
				home, away := teams[i], teams[j]
				if rng.Intn(2) == 1 {
					home, away = away, home
				}
				score := fmt.Sprintf("%d-%d", scoreFloor+rng.Intn(scoreSpan), scoreFloor+rng.Intn(scoreSpan))
				gameNo++
				if gameNo%malformedEvery == 0 {
					score = ""
				}
				g := model.Game{
					ID:         uuid.New().String(),
					Home:       &model.Side{ID: home.ID, Name: home.Name},
					Away:       &model.Side{ID: away.ID, Name: away.Name},
					TimeStatus: model.TimeStatusEnded,
					Score:      score,
				}
				f.byTeam[home.ID] = append(f.byTeam[home.ID], g)
				f.byTeam[away.ID] = append(f.byTeam[away.ID], g)
			}
		}
	}
}

// GamesFor returns every generated game involving the given team,
// most-recent-first.
func (f *Feed) GamesFor(teamID string) []model.Game {
	return f.byTeam[teamID]
}

// Page returns one page of games for the team. Pages start at 1; a
// page past the end is empty, signalling exhaustion.
func (f *Feed) Page(_ context.Context, teamID string, page int) ([]model.Game, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page %d", ErrBadPage, page)
	}
	games := f.byTeam[teamID]
	start := (page - 1) * f.pageSize
	if start >= len(games) {
		return []model.Game{}, nil
	}
	end := start + f.pageSize
	if end > len(games) {
		end = len(games)
	}
	return games[start:end], nil
}
