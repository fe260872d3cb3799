// Package report renders score records as plain-text standings tables.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/talgya/robot-league/internal/scores"
	"github.com/talgya/robot-league/internal/tournament"
)

// Row is one line of a standings table.
type Row struct {
	Name        string
	Totals      *scores.Totals
	RoundFrames scores.Frames // mean round length, for doubletime

	// Shares of the whole tournament, shown when HasShares is set.
	HasShares    bool
	BiomassShare float64
	KillShare    float64
}

// Rows turns a tournament result into table rows, one per side.
func Rows(res *tournament.Result) []Row {
	rows := make([]Row, len(res.Sides))
	for i, e := range res.Sides {
		rows[i] = Row{
			Name:         e.Name,
			Totals:       &e.Scores.Totals,
			RoundFrames:  res.RoundFrames(),
			HasShares:    true,
			BiomassShare: e.Scores.BiomassShare(),
			KillShare:    e.Scores.KillShare(),
		}
	}
	return rows
}

// Standings writes the standings of one tournament, best biomass fraction
// first, followed by the combined record.
func Standings(w io.Writer, res *tournament.Result) error {
	fmt.Fprintf(w, "run %s  seed %d  started %s  %d rounds, %s frames\n\n",
		res.ID, res.Seed, humanize.Time(res.StartedAt), res.Rounds, humanize.Comma(int64(res.Frames)))
	total := Row{Name: "all", Totals: &res.Totals, RoundFrames: res.RoundFrames()}
	return table(w, Rows(res), &total)
}

// Campaign writes standings merged across stored runs.
func Campaign(w io.Writer, runs int, rows []Row) error {
	fmt.Fprintf(w, "campaign over %s\n\n", english.Plural(runs, "run", "runs"))
	return table(w, rows, nil)
}

var columns = []string{
	"side", "seeds", "rounds", "surv", "early", "late", "elim",
	"biomass", "±sd (err)", "killed", "income", "spent", "eff",
	"econ", "combat", "double", "share", "kills",
}

func table(w io.Writer, rows []Row, total *Row) error {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b Row) int {
		return cmp.Compare(b.Totals.BiomassFraction(), a.Totals.BiomassFraction())
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeLine(tw, columns)
	for _, r := range sorted {
		writeLine(tw, cells(r))
	}
	if total != nil {
		writeLine(tw, cells(*total))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write standings: %w", err)
	}
	return nil
}

func writeLine(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, c)
	}
	io.WriteString(w, "\t\n")
}

func cells(r Row) []string {
	t := r.Totals
	return []string{
		r.Name,
		humanize.Comma(t.Sides()),
		humanize.Comma(t.Rounds()),
		percent(t.Survival()),
		percent(t.EarlyDeathRate()),
		percent(t.LateDeathRate()),
		percent(t.EliminationRate()),
		percent(t.BiomassFraction()),
		fmt.Sprintf("%.1f (%.1f)", t.BiomassFractionSD()*100, t.BiomassFractionError()*100),
		percent(t.KilledFraction()),
		humanize.Comma(t.Income().Total()),
		humanize.Comma(t.Expenditure().Total()),
		percent(t.Efficiency()),
		percent(t.EconFraction().Float()),
		percent(t.CombatFraction().Float()),
		frames(t.Doubletime(r.RoundFrames)),
		share(r.HasShares, r.BiomassShare),
		share(r.HasShares, r.KillShare),
	}
}

func share(ok bool, f float64) string {
	if !ok {
		return "-"
	}
	return percent(f)
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

func frames(f scores.Frames) string {
	if f == scores.Never {
		return "-"
	}
	return humanize.Comma(int64(f))
}
