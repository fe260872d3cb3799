// Command league plays a robot tournament, prints the standings, stores the
// run and prints campaign standings over every stored run.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/talgya/robot-league/internal/config"
	"github.com/talgya/robot-league/internal/persistence"
	"github.com/talgya/robot-league/internal/report"
	"github.com/talgya/robot-league/internal/tournament"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("league failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(cfg config.Config) {
	level, _ := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}

	format := cfg.LogFormat
	if format == "auto" {
		format = "json"
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			format = "text"
		}
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func run(ctx context.Context, cfg config.Config) error {
	strategies, err := cfg.Strategies()
	if err != nil {
		return err
	}

	// ── Database ──────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Tournament ────────────────────────────────────────────────────
	t, err := tournament.New(cfg.Tournament(), strategies)
	if err != nil {
		return err
	}
	res, err := t.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		slog.Warn("tournament interrupted", "rounds_played", res.Rounds)
	}

	if err := report.Standings(os.Stdout, res); err != nil {
		return err
	}

	// ── Persistence ───────────────────────────────────────────────────
	if res.Rounds == 0 {
		slog.Info("no rounds finished, run not saved")
		return nil
	}
	if err := db.SaveRun(res); err != nil {
		return err
	}

	// ── Campaign ──────────────────────────────────────────────────────
	runs, err := db.Runs()
	if err != nil {
		return err
	}
	campaign, err := db.Campaign()
	if err != nil {
		return err
	}
	rows := make([]report.Row, len(campaign))
	for i, rec := range campaign {
		rows[i] = report.Row{Name: rec.Name, Totals: &rec.Totals, RoundFrames: rec.RoundFrames()}
	}
	os.Stdout.WriteString("\n")
	return report.Campaign(os.Stdout, len(runs), rows)
}
