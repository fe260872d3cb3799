package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/talgya/robot-league/internal/scores"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rounds != 10 || cfg.Seed != 0 || cfg.DBPath != "data/league.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	strategies, err := cfg.Strategies()
	if err != nil {
		t.Fatalf("Strategies: %v", err)
	}
	if len(strategies) != 4 {
		t.Fatalf("expected 4 default sides, got %d", len(strategies))
	}
	if level, _ := cfg.Level(); level != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", level)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LEAGUE_ROUNDS", "3")
	t.Setenv("LEAGUE_SEED", "99")
	t.Setenv("LEAGUE_SIDES", "raider, raider,grazer")
	t.Setenv("LEAGUE_FRAMES", "1200")
	t.Setenv("LEAGUE_EARLY_CHECKPOINT", "900")
	t.Setenv("LEAGUE_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	strategies, err := cfg.Strategies()
	if err != nil {
		t.Fatalf("Strategies: %v", err)
	}
	if len(strategies) != 3 || strategies[1].Name != "raider" || strategies[2].Name != "grazer" {
		t.Fatalf("unexpected strategies: %+v", strategies)
	}

	tc := cfg.Tournament()
	if tc.Rounds != 3 || tc.Seed != 99 {
		t.Fatalf("unexpected tournament config: %+v", tc)
	}
	if tc.Arena.FramesPerRound != scores.Frames(1200) || tc.SideConfig.EarlyCheckpoint != scores.Frames(900) {
		t.Fatalf("frames=%d checkpoint=%d", tc.Arena.FramesPerRound, tc.SideConfig.EarlyCheckpoint)
	}
	if tc.SideConfig.FirstRobotNumber != 1 {
		t.Fatalf("side defaults lost: %+v", tc.SideConfig)
	}
	if level, _ := cfg.Level(); level != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", level)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		key, value, want string
	}{
		{"LEAGUE_ROUNDS", "0", "LEAGUE_ROUNDS"},
		{"LEAGUE_ROUNDS", "many", "parse env:"},
		{"LEAGUE_SIDES", "grazer,wizard", "wizard"},
		{"LEAGUE_SIDES", " , ", "no sides"},
		{"LEAGUE_ARENA_SIZE", "2", "LEAGUE_ARENA_SIZE"},
		{"LEAGUE_SAMPLE_INTERVAL", "0", "LEAGUE_SAMPLE_INTERVAL"},
		{"LEAGUE_LOG_LEVEL", "loud", "LEAGUE_LOG_LEVEL"},
		{"LEAGUE_LOG_FORMAT", "xml", "LEAGUE_LOG_FORMAT"},
	}
	for _, c := range cases {
		t.Run(c.key+"="+c.value, func(t *testing.T) {
			t.Setenv(c.key, c.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected %q in error, got %v", c.want, err)
			}
		})
	}
}
