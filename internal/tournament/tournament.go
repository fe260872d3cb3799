// Package tournament plays a series of arena rounds between sides and keeps
// each side's score record across them.
package tournament

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/robot-league/internal/arena"
	"github.com/talgya/robot-league/internal/entropy"
	"github.com/talgya/robot-league/internal/scores"
)

// Config holds tournament parameters.
type Config struct {
	Rounds     int
	Seed       int64 // 0 draws a fresh seed
	Arena      arena.Config
	SideConfig scores.SideConfig
}

// DefaultConfig returns a ten-round tournament in the default arena.
func DefaultConfig() Config {
	return Config{
		Rounds:     10,
		Arena:      arena.DefaultConfig(),
		SideConfig: scores.DefaultSideConfig(),
	}
}

// Entry is one competing side.
type Entry struct {
	Name     string
	Strategy arena.Strategy
	Scores   *scores.Side
}

// Result is a finished (or interrupted) tournament.
type Result struct {
	ID        string
	Seed      int64
	StartedAt time.Time
	Rounds    int           // rounds finalized
	Frames    scores.Frames // frames played over those rounds
	Sides     []*Entry
	Totals    scores.Totals // every side combined
}

// Tournament runs rounds between a fixed set of sides.
type Tournament struct {
	id    string
	cfg   Config
	sides []*Entry
}

// New creates a tournament with one entry per strategy, in order.
func New(cfg Config, strategies []arena.Strategy) (*Tournament, error) {
	if len(strategies) == 0 {
		return nil, fmt.Errorf("tournament: no sides")
	}
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("tournament: rounds must be positive, got %d", cfg.Rounds)
	}
	if cfg.Seed == 0 {
		cfg.Seed = entropy.Seed()
	}

	t := &Tournament{
		id:  uuid.New().String(),
		cfg: cfg,
	}
	seen := make(map[string]int)
	for _, s := range strategies {
		name := s.Name
		// Repeated strategies get a numeric suffix so standings stay readable.
		if n := seen[s.Name]; n > 0 {
			name = fmt.Sprintf("%s-%d", s.Name, n+1)
		}
		seen[s.Name]++
		t.sides = append(t.sides, &Entry{
			Name:     name,
			Strategy: s,
			Scores:   scores.NewSide(cfg.SideConfig),
		})
	}
	return t, nil
}

// ID returns the run ID.
func (t *Tournament) ID() string { return t.id }

// Seed returns the tournament seed, drawn at New when none was configured.
func (t *Tournament) Seed() int64 { return t.cfg.Seed }

// Sides returns the entries in seeding order.
func (t *Tournament) Sides() []*Entry { return t.sides }

// Run plays every round. When ctx is cancelled the round in progress is
// discarded and the result covers the rounds already finalized, along with
// ctx's error.
func (t *Tournament) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	slog.Info("tournament starting",
		"id", t.id,
		"seed", t.cfg.Seed,
		"sides", len(t.sides),
		"rounds", t.cfg.Rounds,
	)

	teams := make([]*arena.Team, len(t.sides))
	for i, e := range t.sides {
		teams[i] = &arena.Team{Strategy: e.Strategy, Scores: e.Scores}
	}

	var (
		runErr error
		played int
		frames scores.Frames
	)
	for round := 0; round < t.cfg.Rounds; round++ {
		saved := t.checkpoint()
		seed := entropy.Derive(t.cfg.Seed, round)
		out, err := arena.NewRound(t.cfg.Arena, seed, teams).Run(ctx)
		if err != nil {
			runErr = fmt.Errorf("round %d: %w", round+1, err)
			t.discardRound(saved)
			break
		}
		t.finishRound()
		played++
		frames += out.Frames

		slog.Info("round complete",
			"round", round+1,
			"frames", out.Frames,
			"survivors", t.survivorNames(out.Survivors),
			"robots", out.Robots,
		)
	}

	res := &Result{
		ID:        t.id,
		Seed:      t.cfg.Seed,
		StartedAt: started,
		Rounds:    played,
		Frames:    frames,
		Sides:     t.sides,
		Totals:    t.Totals(),
	}
	for _, e := range t.sides {
		e.Scores.ReportTotals(res.Totals)
	}

	slog.Info("tournament complete",
		"id", t.id,
		"rounds", played,
		"elapsed", time.Since(started).Round(time.Millisecond),
	)
	return res, runErr
}

// RoundFrames is the mean round length in frames.
func (r *Result) RoundFrames() scores.Frames {
	if r.Rounds == 0 {
		return 0
	}
	return r.Frames / scores.Frames(r.Rounds)
}

// finishRound hands every side the combined record of the round just played
// and then finalizes it, so per-round fractions are shares of the round.
func (t *Tournament) finishRound() {
	records := make([]*scores.Totals, len(t.sides))
	for i, e := range t.sides {
		rt := e.Scores.RoundTotals()
		records[i] = &rt
	}
	ref := scores.Aggregate(records...)
	for _, e := range t.sides {
		e.Scores.ReportTotals(ref)
		e.Scores.OneRound()
	}
}

// checkpoint copies every side's lifetime record.
func (t *Tournament) checkpoint() []scores.Totals {
	saved := make([]scores.Totals, len(t.sides))
	for i, e := range t.sides {
		saved[i] = e.Scores.Clone()
	}
	return saved
}

// discardRound drops an interrupted round: every side's lifetime record goes
// back to the checkpoint taken before the round started.
func (t *Tournament) discardRound(saved []scores.Totals) {
	for i, e := range t.sides {
		e.Scores.Totals = saved[i]
		if e.Scores.Phase() == scores.PhaseAccumulating {
			e.Scores.AbandonRound()
		}
	}
}

// Totals combines every side's lifetime record.
func (t *Tournament) Totals() scores.Totals {
	records := make([]*scores.Totals, len(t.sides))
	for i, e := range t.sides {
		records[i] = &e.Scores.Totals
	}
	return scores.Aggregate(records...)
}

func (t *Tournament) survivorNames(idx []int) []string {
	names := make([]string, 0, len(idx))
	for _, i := range idx {
		names = append(names, t.sides[i].Name)
	}
	return names
}
