// Package config loads league settings from LEAGUE_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/talgya/robot-league/internal/arena"
	"github.com/talgya/robot-league/internal/scores"
	"github.com/talgya/robot-league/internal/tournament"
)

// Config is the league configuration.
type Config struct {
	Rounds          int      `env:"LEAGUE_ROUNDS" envDefault:"10"`
	Seed            int64    `env:"LEAGUE_SEED" envDefault:"0"`
	Sides           []string `env:"LEAGUE_SIDES" envDefault:"grazer,raider,builder,balanced" envSeparator:","`
	ArenaSize       int      `env:"LEAGUE_ARENA_SIZE" envDefault:"48"`
	Frames          int64    `env:"LEAGUE_FRAMES" envDefault:"6000"`
	SampleInterval  int64    `env:"LEAGUE_SAMPLE_INTERVAL" envDefault:"100"`
	EarlyCheckpoint int64    `env:"LEAGUE_EARLY_CHECKPOINT" envDefault:"4500"`
	DBPath          string   `env:"LEAGUE_DB_PATH" envDefault:"data/league.db"`
	LogLevel        string   `env:"LEAGUE_LOG_LEVEL" envDefault:"info"`
	LogFormat       string   `env:"LEAGUE_LOG_FORMAT" envDefault:"auto"` // auto, text or json
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	switch {
	case c.Rounds <= 0:
		return fmt.Errorf("LEAGUE_ROUNDS must be positive, got %d", c.Rounds)
	case c.ArenaSize < 4:
		return fmt.Errorf("LEAGUE_ARENA_SIZE must be at least 4, got %d", c.ArenaSize)
	case c.Frames <= 0:
		return fmt.Errorf("LEAGUE_FRAMES must be positive, got %d", c.Frames)
	case c.SampleInterval <= 0:
		return fmt.Errorf("LEAGUE_SAMPLE_INTERVAL must be positive, got %d", c.SampleInterval)
	case c.EarlyCheckpoint < 0:
		return fmt.Errorf("LEAGUE_EARLY_CHECKPOINT must not be negative, got %d", c.EarlyCheckpoint)
	}
	if _, err := c.Strategies(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("LEAGUE_LOG_FORMAT must be auto, text or json, got %q", c.LogFormat)
	}
	return nil
}

// Strategies resolves the configured side names to preset strategies. A name
// may repeat.
func (c Config) Strategies() ([]arena.Strategy, error) {
	presets := arena.Presets()
	var out []arena.Strategy
	for _, name := range c.Sides {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, ok := presets[name]
		if !ok {
			return nil, fmt.Errorf("unknown side %q in LEAGUE_SIDES", name)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("LEAGUE_SIDES names no sides")
	}
	return out, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LEAGUE_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// Tournament builds the tournament configuration, starting from the defaults.
func (c Config) Tournament() tournament.Config {
	tc := tournament.DefaultConfig()
	tc.Rounds = c.Rounds
	tc.Seed = c.Seed
	tc.Arena.Size = c.ArenaSize
	tc.Arena.FramesPerRound = scores.Frames(c.Frames)
	tc.Arena.SampleInterval = scores.Frames(c.SampleInterval)
	tc.SideConfig.EarlyCheckpoint = scores.Frames(c.EarlyCheckpoint)
	return tc
}
