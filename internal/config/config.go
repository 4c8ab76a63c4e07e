// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// SourceBaseURL is the root of the upstream ended-events API.
	SourceBaseURL string `koanf:"source_base_url"`

	// SourceToken authenticates requests to the upstream API.
	SourceToken string `koanf:"source_token"`

	// SourceTimeoutMS bounds a single upstream page request.
	SourceTimeoutMS int `koanf:"source_timeout_ms"`

	// SportID selects the upstream sport feed.
	SportID string `koanf:"sport_id"`

	// DefaultGameCount is the qualifying-set target when the caller
	// does not supply one.
	DefaultGameCount int `koanf:"default_game_count"`

	// MaxGameCount caps the caller-supplied qualifying-set target.
	MaxGameCount int `koanf:"max_game_count"`

	// MaxSourcePages caps pages visited per fetch. Zero preserves the
	// original unbounded scan.
	MaxSourcePages int `koanf:"max_source_pages"`

	// FormWindows lists the recent-form window sizes reported per
	// head-to-head comparison.
	FormWindows []int `koanf:"form_windows"`

	// MinCoverRate is the minimum historical hit rate for a spread
	// line to be reported.
	MinCoverRate float64 `koanf:"min_cover_rate"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9090",
		SourceBaseURL:    "https://api.b365api.com",
		SourceToken:      "",
		SourceTimeoutMS:  8_000,
		SportID:          "18",
		DefaultGameCount: 10,
		MaxGameCount:     50,
		MaxSourcePages:   0,
		FormWindows:      []int{5, 10},
		MinCoverRate:     0.80,
	}
}
