package scores

import "math"

// Round is the sample of one finished round that Totals.OneRound folds in.
type Round struct {
	Seeded         bool // the side was seeded this round
	Sterile        bool // survived but stopped reproducing
	EarlyDeath     bool // eliminated, and extinct by the early checkpoint
	Population     int64
	PopulationHigh int64
	Biomass        Energy
	EarlyBiomass   Energy
	Constructor    Energy
	EconHardware   Energy
	CombatHardware Energy
	TotalHardware  Energy
	Territory      int64

	BiomassFraction      float64
	EarlyBiomassFraction float64
	KilledFraction       float64
}

// Totals is the aggregate score record. One exists per side (embedded in
// Side) and one for the whole tournament, produced by combining the sides.
//
// Sampled quantities hold the sum over finalized rounds of each round's
// end-of-round sample, except populationEver which holds the maximum.
// Event totals are summed as events are reported and are never zeroed
// between rounds.
type Totals struct {
	// rounds
	sides       int64
	rounds      int64
	survived    int64
	sterile     int64
	earlyDeaths int64
	elimination int64

	// sampled
	population     int64
	populationEver int64
	biomass        Energy
	earlyBiomass   Energy
	biomassHistory []int64
	constructor    Energy
	econHardware   Energy
	combatHardware Energy
	totalHardware  Energy
	territory      int64

	// accumulated
	seeded       Energy
	income       Income
	expenditure  Expenditure
	dead         Energy
	killed       Energy
	suicide      Energy
	damageDone   Damage
	damageTaken  Damage
	friendlyFire Damage

	// fractions
	biomassFraction      Moments
	earlyBiomassFraction Moments
	killedFraction       Moments
}

// Reset zeroes every field, history included.
func (t *Totals) Reset() {
	*t = Totals{}
}

// OneRound finalizes one round. Event totals are left alone; they were
// summed as the events happened.
func (t *Totals) OneRound(r Round) {
	t.rounds++
	if r.Seeded {
		t.sides++
	}
	if r.Population > 0 {
		t.survived++
		if r.Sterile {
			t.sterile++
		}
	} else {
		t.elimination++
		if r.EarlyDeath {
			t.earlyDeaths++
		}
	}

	t.population += r.Population
	t.populationEver = max(t.populationEver, r.PopulationHigh, r.Population)
	t.biomass += r.Biomass
	t.earlyBiomass += r.EarlyBiomass
	t.constructor += r.Constructor
	t.econHardware += r.EconHardware
	t.combatHardware += r.CombatHardware
	t.totalHardware += r.TotalHardware
	t.territory += r.Territory
	t.biomassHistory = append(t.biomassHistory, round(float64(r.Biomass)))

	t.biomassFraction.Add(r.BiomassFraction)
	t.earlyBiomassFraction.Add(r.EarlyBiomassFraction)
	t.killedFraction.Add(r.KilledFraction)
}

// CombineAcrossSides folds another side's record into t. Rounds are summed,
// so two sides of five rounds each combine to ten side-rounds, and the
// biomass histories are summed index by index: entry i of the result is the
// total biomass of all sides at the end of round i.
func (t *Totals) CombineAcrossSides(other *Totals) {
	history := other.BiomassHistory()
	t.combine(other)
	if len(history) > len(t.biomassHistory) {
		t.biomassHistory = append(t.biomassHistory, make([]int64, len(history)-len(t.biomassHistory))...)
	}
	for i, b := range history {
		t.biomassHistory[i] += b
	}
}

// CombineAcrossRuns folds the record of a later run of the same side into t.
// Counters and totals sum exactly as in CombineAcrossSides; the biomass
// histories are concatenated, t's rounds first.
func (t *Totals) CombineAcrossRuns(other *Totals) {
	history := other.BiomassHistory()
	t.combine(other)
	t.biomassHistory = append(t.biomassHistory, history...)
}

func (t *Totals) combine(other *Totals) {
	t.sides += other.sides
	t.rounds += other.rounds
	t.survived += other.survived
	t.sterile += other.sterile
	t.earlyDeaths += other.earlyDeaths
	t.elimination += other.elimination

	t.population += other.population
	t.populationEver = max(t.populationEver, other.populationEver)
	t.biomass += other.biomass
	t.earlyBiomass += other.earlyBiomass
	t.constructor += other.constructor
	t.econHardware += other.econHardware
	t.combatHardware += other.combatHardware
	t.totalHardware += other.totalHardware
	t.territory += other.territory

	t.seeded += other.seeded
	t.income.Add(other.income)
	t.expenditure.Add(other.expenditure)
	t.dead += other.dead
	t.killed += other.killed
	t.suicide += other.suicide
	t.damageDone += other.damageDone
	t.damageTaken += other.damageTaken
	t.friendlyFire += other.friendlyFire

	t.biomassFraction.Merge(other.biomassFraction)
	t.earlyBiomassFraction.Merge(other.earlyBiomassFraction)
	t.killedFraction.Merge(other.killedFraction)
}

// Aggregate combines records across sides into a fresh Totals. The inputs
// are not modified.
func Aggregate(records ...*Totals) Totals {
	var total Totals
	for _, r := range records {
		total.CombineAcrossSides(r)
	}
	return total
}

// Clone returns a deep copy of t.
func (t *Totals) Clone() Totals {
	c := *t
	c.biomassHistory = t.BiomassHistory()
	return c
}

// --- basics ---

func (t *Totals) Sides() int64       { return t.sides }
func (t *Totals) Rounds() int64      { return t.rounds }
func (t *Totals) Survived() int64    { return t.survived }
func (t *Totals) Sterile() int64     { return t.sterile }
func (t *Totals) EarlyDeaths() int64 { return t.earlyDeaths }
func (t *Totals) Elimination() int64 { return t.elimination }

// Survival is the fraction of rounds survived.
func (t *Totals) Survival() float64 {
	return ratio(float64(t.survived), float64(t.rounds))
}

// SurvivalNotSterile is the fraction of rounds survived while still reproducing.
func (t *Totals) SurvivalNotSterile() float64 {
	return ratio(float64(t.survived-t.sterile), float64(t.rounds))
}

func (t *Totals) EarlyDeathRate() float64 {
	return ratio(float64(t.earlyDeaths), float64(t.rounds))
}

// SurvivedEarly counts the rounds that got past the early checkpoint.
func (t *Totals) SurvivedEarly() int64 {
	return t.rounds - t.earlyDeaths
}

// LateDeathRate is the fraction of rounds that got past the early
// checkpoint but were not survived.
func (t *Totals) LateDeathRate() float64 {
	early := t.SurvivedEarly()
	return ratio(float64(early-t.survived), float64(early))
}

func (t *Totals) EliminationRate() float64 {
	return ratio(float64(t.elimination), float64(t.rounds))
}

// --- samples ---

func (t *Totals) Population() int64     { return t.population }
func (t *Totals) PopulationEver() int64 { return t.populationEver }
func (t *Totals) Biomass() int64        { return round(float64(t.biomass)) }
func (t *Totals) EarlyBiomass() int64   { return round(float64(t.earlyBiomass)) }
func (t *Totals) Constructor() int64    { return round(float64(t.constructor)) }
func (t *Totals) Territory() int64      { return t.territory }

// SurvivalBiomass is the mean end-of-round biomass per survived round.
func (t *Totals) SurvivalBiomass() int64 {
	if t.survived == 0 {
		return 0
	}
	return round(float64(t.biomass) / float64(t.survived))
}

// EarlySurvivalBiomass is the mean early biomass per round that got past the
// early checkpoint.
func (t *Totals) EarlySurvivalBiomass() int64 {
	early := t.SurvivedEarly()
	if early == 0 {
		return 0
	}
	return round(float64(t.earlyBiomass) / float64(early))
}

func (t *Totals) BiomassFraction() float64 {
	return ratio(t.biomassFraction.Sum, float64(t.rounds))
}

func (t *Totals) EarlyBiomassFraction() float64 {
	return ratio(t.earlyBiomassFraction.Sum, float64(t.rounds))
}

// SurvivalBiomassFraction averages the biomass fraction over survived rounds.
func (t *Totals) SurvivalBiomassFraction() float64 {
	return ratio(t.biomassFraction.Sum, float64(t.survived))
}

// BiomassHistory returns a copy of the per-round biomass samples.
func (t *Totals) BiomassHistory() []int64 {
	if len(t.biomassHistory) == 0 {
		return nil
	}
	return append([]int64(nil), t.biomassHistory...)
}

// EconFraction is economy hardware over total hardware.
func (t *Totals) EconFraction() Ratio {
	return Ratio{Num: t.econHardware, Den: t.totalHardware}
}

// CombatFraction is combat hardware over total hardware.
func (t *Totals) CombatFraction() Ratio {
	return Ratio{Num: t.combatHardware, Den: t.totalHardware}
}

// --- cumulative ---

func (t *Totals) Seeded() int64             { return round(float64(t.seeded)) }
func (t *Totals) Income() *Income           { return &t.income }
func (t *Totals) Expenditure() *Expenditure { return &t.expenditure }
func (t *Totals) Dead() int64               { return round(float64(t.dead)) }
func (t *Totals) Killed() int64             { return round(float64(t.killed)) }
func (t *Totals) Suicide() int64            { return round(float64(t.suicide)) }
func (t *Totals) DamageDone() int64         { return round(float64(t.damageDone)) }
func (t *Totals) DamageTaken() int64        { return round(float64(t.damageTaken)) }
func (t *Totals) FriendlyFire() int64       { return round(float64(t.friendlyFire)) }

// KilledFraction is the share of energy won by killing among all energy
// exchanged through deaths: killed / (killed + dead + suicide).
func (t *Totals) KilledFraction() float64 {
	return ratio(float64(t.killed), float64(t.killed+t.dead+t.suicide))
}

// KillRate is killed energy per round.
func (t *Totals) KillRate() float64 {
	return ratio(float64(t.killed), float64(t.rounds))
}

// MeanKilledFraction averages the per-round killed fraction.
func (t *Totals) MeanKilledFraction() float64 {
	return ratio(t.killedFraction.Sum, float64(t.rounds))
}

// --- oddballs ---

// Efficiency is productive expenditure over total expenditure.
func (t *Totals) Efficiency() float64 {
	return ratio(float64(t.expenditure.Productive()), float64(t.expenditure.sum()))
}

// Doubletime projects how many frames biomass takes to double, assuming the
// growth from seeded energy to the current biomass over currentTime frames
// was exponential. Returns Never when there was no growth.
func (t *Totals) Doubletime(currentTime Frames) Frames {
	return doubletime(t.seeded, t.biomass, currentTime)
}

func doubletime(seeded, biomass Energy, elapsed Frames) Frames {
	if seeded <= 0 || biomass <= seeded || elapsed <= 0 {
		return Never
	}
	growth := math.Log(float64(biomass / seeded))
	return Frames(math.Round(float64(elapsed) * math.Ln2 / growth))
}

// BiomassFractionSD is the standard deviation of the per-round biomass fraction.
func (t *Totals) BiomassFractionSD() float64 {
	return StandardDeviation(t.rounds, t.biomassFraction.Sum, t.biomassFraction.SumSquares)
}

// BiomassFractionError is the standard error of BiomassFraction.
func (t *Totals) BiomassFractionError() float64 {
	return StandardError(t.rounds, t.biomassFraction.Sum, t.biomassFraction.SumSquares)
}
