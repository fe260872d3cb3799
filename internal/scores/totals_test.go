package scores

import (
	"math"
	"reflect"
	"testing"
)

func survivingRound(biomass Energy, fraction float64) Round {
	return Round{
		Seeded:          true,
		Population:      4,
		PopulationHigh:  6,
		Biomass:         biomass,
		EarlyBiomass:    biomass / 2,
		Constructor:     10,
		EconHardware:    30,
		CombatHardware:  10,
		TotalHardware:   50,
		Territory:       3,
		BiomassFraction: fraction,
	}
}

func extinctRound(early bool) Round {
	return Round{Seeded: true, EarlyDeath: early}
}

func sampleTotals(rounds int, biomass Energy) *Totals {
	var t Totals
	for i := 0; i < rounds; i++ {
		t.OneRound(survivingRound(biomass+Energy(i), 0.25))
	}
	t.seeded = 1000
	t.killed = 60
	t.dead = 30
	t.suicide = 10
	t.damageDone = 12.5
	t.income.ReportAutotrophy(800)
	t.expenditure.ReportConstruction(300)
	t.expenditure.ReportWasted(100)
	return &t
}

func TestTotals_ZeroRoundsSentinels(t *testing.T) {
	var tot Totals
	floats := map[string]float64{
		"Survival":                tot.Survival(),
		"SurvivalNotSterile":      tot.SurvivalNotSterile(),
		"EarlyDeathRate":          tot.EarlyDeathRate(),
		"LateDeathRate":           tot.LateDeathRate(),
		"EliminationRate":         tot.EliminationRate(),
		"BiomassFraction":         tot.BiomassFraction(),
		"EarlyBiomassFraction":    tot.EarlyBiomassFraction(),
		"SurvivalBiomassFraction": tot.SurvivalBiomassFraction(),
		"BiomassFractionSD":       tot.BiomassFractionSD(),
		"BiomassFractionError":    tot.BiomassFractionError(),
		"KilledFraction":          tot.KilledFraction(),
		"KillRate":                tot.KillRate(),
		"MeanKilledFraction":      tot.MeanKilledFraction(),
		"Efficiency":              tot.Efficiency(),
		"EconFraction":            tot.EconFraction().Float(),
		"CombatFraction":          tot.CombatFraction().Float(),
	}
	for name, v := range floats {
		if v != 0 || math.IsNaN(v) {
			t.Fatalf("%s with zero rounds should be 0, got %v", name, v)
		}
	}
	if tot.SurvivalBiomass() != 0 || tot.EarlySurvivalBiomass() != 0 {
		t.Fatal("per-round biomass with zero rounds should be 0")
	}
	if tot.Doubletime(1000) != Never {
		t.Fatalf("doubletime without growth should be Never, got %d", tot.Doubletime(1000))
	}
	if tot.BiomassHistory() != nil {
		t.Fatal("fresh record should have no history")
	}
}

func TestTotals_EarlyDeathOnlyCountsEliminations(t *testing.T) {
	var tot Totals
	r := survivingRound(100, 0.5)
	r.EarlyDeath = true
	tot.OneRound(r)
	tot.OneRound(extinctRound(true))

	if tot.EarlyDeaths() != 1 || tot.Elimination() != 1 || tot.Survived() != 1 {
		t.Fatalf("early=%d elimination=%d survived=%d", tot.EarlyDeaths(), tot.Elimination(), tot.Survived())
	}
	if tot.LateDeathRate() < 0 {
		t.Fatalf("late death rate must not be negative, got %v", tot.LateDeathRate())
	}
}

func TestTotals_ResetMatchesFresh(t *testing.T) {
	tot := sampleTotals(3, 100)
	tot.Reset()
	var fresh Totals
	if !reflect.DeepEqual(tot.Snapshot(), fresh.Snapshot()) {
		t.Fatalf("reset record differs from fresh:\n%+v\n%+v", tot.Snapshot(), fresh.Snapshot())
	}
}

func TestTotals_RoundCounters(t *testing.T) {
	var tot Totals
	tot.OneRound(survivingRound(100, 0.5))
	sterile := survivingRound(100, 0.5)
	sterile.Sterile = true
	tot.OneRound(sterile)
	tot.OneRound(extinctRound(true))
	tot.OneRound(extinctRound(false))

	if tot.Rounds() != 4 || tot.Survived() != 2 || tot.Sterile() != 1 {
		t.Fatalf("unexpected counters rounds=%d survived=%d sterile=%d", tot.Rounds(), tot.Survived(), tot.Sterile())
	}
	if tot.Elimination() != 2 || tot.EarlyDeaths() != 1 || tot.Sides() != 4 {
		t.Fatalf("unexpected counters elimination=%d early=%d sides=%d", tot.Elimination(), tot.EarlyDeaths(), tot.Sides())
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"Survival", tot.Survival(), 0.5},
		{"SurvivalNotSterile", tot.SurvivalNotSterile(), 0.25},
		{"EarlyDeathRate", tot.EarlyDeathRate(), 0.25},
		{"LateDeathRate", tot.LateDeathRate(), 1.0 / 3.0},
		{"EliminationRate", tot.EliminationRate(), 0.5},
		{"BiomassFraction", tot.BiomassFraction(), 0.25},
		{"SurvivalBiomassFraction", tot.SurvivalBiomassFraction(), 0.5},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-12 {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
	if tot.SurvivedEarly() != 3 {
		t.Fatalf("expected 3 rounds past the checkpoint, got %d", tot.SurvivedEarly())
	}
	if tot.SurvivalBiomass() != 100 {
		t.Fatalf("expected survival biomass 100, got %d", tot.SurvivalBiomass())
	}
	if got := tot.BiomassHistory(); !reflect.DeepEqual(got, []int64{100, 100, 0, 0}) {
		t.Fatalf("unexpected history %v", got)
	}
	if tot.PopulationEver() != 6 {
		t.Fatalf("expected population high 6, got %d", tot.PopulationEver())
	}
}

func TestTotals_SurvivalAfterCleanRounds(t *testing.T) {
	var tot Totals
	const n = 7
	for i := 0; i < n; i++ {
		tot.OneRound(survivingRound(50, 0.1))
	}
	if tot.Survival() != 1.0 {
		t.Fatalf("expected survival 1.0, got %v", tot.Survival())
	}
	if len(tot.BiomassHistory()) != n {
		t.Fatalf("expected %d history entries, got %d", n, len(tot.BiomassHistory()))
	}
	if tot.BiomassFractionSD() < 0 {
		t.Fatal("deviation must not be negative")
	}
}

func TestTotals_DerivedEnergy(t *testing.T) {
	tot := sampleTotals(2, 100)

	if got := tot.KilledFraction(); got != 0.6 {
		t.Fatalf("expected killed fraction 0.6, got %v", got)
	}
	if got := tot.KillRate(); got != 30 {
		t.Fatalf("expected kill rate 30, got %v", got)
	}
	if got := tot.Efficiency(); got != 0.75 {
		t.Fatalf("expected efficiency 0.75, got %v", got)
	}
	econ := tot.EconFraction()
	if econ.Num != 60 || econ.Den != 100 {
		t.Fatalf("expected econ 60:100, got %v:%v", econ.Num, econ.Den)
	}
	if tot.CombatFraction().Float() != 0.2 {
		t.Fatalf("expected combat fraction 0.2, got %v", tot.CombatFraction().Float())
	}
	if tot.DamageDone() != 13 {
		t.Fatalf("expected damage 13, got %d", tot.DamageDone())
	}
}

func TestTotals_Doubletime(t *testing.T) {
	var tot Totals
	tot.seeded = 100
	tot.OneRound(survivingRound(400, 1))

	if got := tot.Doubletime(1000); got != 500 {
		t.Fatalf("quadrupling in 1000 frames should double every 500, got %d", got)
	}

	var shrinking Totals
	shrinking.seeded = 100
	shrinking.OneRound(survivingRound(50, 1))
	if got := shrinking.Doubletime(1000); got != Never {
		t.Fatalf("shrinking biomass should give Never, got %d", got)
	}
	if got := tot.Doubletime(0); got != Never {
		t.Fatalf("zero elapsed time should give Never, got %d", got)
	}
}

func TestTotals_CombineAcrossSides(t *testing.T) {
	a := sampleTotals(5, 100)
	b := sampleTotals(5, 200)

	total := Aggregate(a, b)
	if total.Rounds() != 10 || total.Survived() != 10 {
		t.Fatalf("expected 10 side-rounds survived, got rounds=%d survived=%d", total.Rounds(), total.Survived())
	}
	history := total.BiomassHistory()
	want := []int64{300, 302, 304, 306, 308}
	if !reflect.DeepEqual(history, want) {
		t.Fatalf("expected index-wise history %v, got %v", want, history)
	}
	if total.PopulationEver() != 6 {
		t.Fatalf("population high should be the max, got %d", total.PopulationEver())
	}
	if total.Population() != 40 {
		t.Fatalf("population should be summed, got %d", total.Population())
	}
	if total.Income().Total() != 1600 || total.Expenditure().Total() != 800 {
		t.Fatalf("unexpected merged income=%d expenditure=%d", total.Income().Total(), total.Expenditure().Total())
	}
	if a.Rounds() != 5 || len(a.BiomassHistory()) != 5 {
		t.Fatal("aggregate must not mutate its inputs")
	}
}

func TestTotals_CombineAcrossSidesUnevenHistory(t *testing.T) {
	short := sampleTotals(2, 10)
	long := sampleTotals(4, 100)

	var total Totals
	total.CombineAcrossSides(short)
	total.CombineAcrossSides(long)
	want := []int64{110, 112, 102, 103}
	if got := total.BiomassHistory(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTotals_CombineAcrossRuns(t *testing.T) {
	first := sampleTotals(5, 100)
	second := sampleTotals(5, 200)

	campaign := first.Clone()
	campaign.CombineAcrossRuns(second)
	if campaign.Rounds() != 10 {
		t.Fatalf("expected 10 rounds, got %d", campaign.Rounds())
	}
	want := []int64{100, 101, 102, 103, 104, 200, 201, 202, 203, 204}
	if got := campaign.BiomassHistory(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected concatenated history %v, got %v", want, got)
	}
	if first.Rounds() != 5 {
		t.Fatal("clone must not share state with the original")
	}
}

func TestTotals_CombineAssociativeCommutative(t *testing.T) {
	a := sampleTotals(3, 100)
	b := sampleTotals(2, 50)
	c := sampleTotals(4, 10)

	left := a.Clone()
	left.CombineAcrossSides(b)
	left.CombineAcrossSides(c)

	bc := b.Clone()
	bc.CombineAcrossSides(c)
	right := a.Clone()
	right.CombineAcrossSides(&bc)

	swapped := Aggregate(c, a, b)

	if !reflect.DeepEqual(left.Snapshot(), right.Snapshot()) {
		t.Fatalf("side combine should be associative:\n%+v\n%+v", left.Snapshot(), right.Snapshot())
	}
	if !reflect.DeepEqual(left.Snapshot(), swapped.Snapshot()) {
		t.Fatalf("side combine should be commutative:\n%+v\n%+v", left.Snapshot(), swapped.Snapshot())
	}

	runsLeft := a.Clone()
	runsLeft.CombineAcrossRuns(b)
	runsLeft.CombineAcrossRuns(c)
	runsBC := b.Clone()
	runsBC.CombineAcrossRuns(c)
	runsRight := a.Clone()
	runsRight.CombineAcrossRuns(&runsBC)
	if !reflect.DeepEqual(runsLeft.Snapshot(), runsRight.Snapshot()) {
		t.Fatal("run combine should be associative")
	}
}

func TestTotals_SnapshotRoundTrip(t *testing.T) {
	tot := sampleTotals(3, 120)
	back := FromSnapshot(tot.Snapshot())
	if !reflect.DeepEqual(back.Snapshot(), tot.Snapshot()) {
		t.Fatalf("snapshot round trip lost data:\n%+v\n%+v", back.Snapshot(), tot.Snapshot())
	}
	if back.BiomassFraction() != tot.BiomassFraction() || back.Income().Autotrophy() != 800 {
		t.Fatal("rebuilt record should answer the same accessors")
	}
}
