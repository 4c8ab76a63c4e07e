package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if VERSUS_CONFIG is set
//  3. env (prefix VERSUS_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("VERSUS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: VERSUS_ADDR, VERSUS_SOURCE_TOKEN, ...
	// Map env keys like VERSUS_MAX_SOURCE_PAGES -> max_source_pages,
	// preserving underscores to match the koanf tags on the struct.
	envProvider := env.Provider("VERSUS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "versus_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.SourceBaseURL == "":
		return fmt.Errorf("%w: source_base_url must not be empty", ErrInvalidConfig)
	case c.DefaultGameCount < 1:
		return fmt.Errorf("%w: default_game_count must be positive", ErrInvalidConfig)
	case c.MaxGameCount < c.DefaultGameCount:
		return fmt.Errorf("%w: max_game_count must be >= default_game_count", ErrInvalidConfig)
	case c.MaxSourcePages < 0:
		return fmt.Errorf("%w: max_source_pages must not be negative", ErrInvalidConfig)
	case c.MinCoverRate <= 0 || c.MinCoverRate > 1:
		return fmt.Errorf("%w: min_cover_rate must be in (0, 1]", ErrInvalidConfig)
	}
	for _, w := range c.FormWindows {
		if w < 1 {
			return fmt.Errorf("%w: form_windows entries must be positive", ErrInvalidConfig)
		}
	}
	return nil
}
