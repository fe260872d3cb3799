package scores

// SideConfig holds per-side scoring parameters.
type SideConfig struct {
	EarlyCheckpoint  Frames // frame at which early biomass is sampled
	FirstRobotNumber int64  // first number handed out by NewRobotNumber
}

// DefaultSideConfig returns the standard tournament settings.
func DefaultSideConfig() SideConfig {
	return SideConfig{
		EarlyCheckpoint:  4500,
		FirstRobotNumber: 1,
	}
}

// Side is the score record of one competitor. The embedded Totals is the
// side's lifetime record; Side adds the live sample of the round in progress,
// the extinction and sterility timestamps and the robot number counter.
//
// Round lifecycle: ResetSampledStatistics opens a round (and is repeated at
// every sampling pass), the Report methods accumulate, OneRound closes it.
type Side struct {
	Totals

	cfg         SideConfig
	phase       Phase
	extinctTime Frames
	sterileTime Frames
	nextRobot   int64

	live         liveRound
	reference    Totals
	hasReference bool
}

// liveRound is what Side knows about the round in progress.
type liveRound struct {
	// sampled, cleared at every sampling pass
	population     int64
	biomass        Energy
	constructor    Energy
	econHardware   Energy
	combatHardware Energy
	totalHardware  Energy
	territory      int64

	// round-scoped, cleared when a round opens
	populationHigh int64
	earlyBiomass   Energy
	earlySampled   bool
	seeded         Energy
	killed         Energy
	dead           Energy
	suicide        Energy
}

func (l *liveRound) resetSampled() {
	l.population = 0
	l.biomass = 0
	l.constructor = 0
	l.econHardware = 0
	l.combatHardware = 0
	l.totalHardware = 0
	l.territory = 0
}

// NewSide creates an empty side record.
func NewSide(cfg SideConfig) *Side {
	return &Side{
		cfg:         cfg,
		extinctTime: Never,
		sterileTime: Never,
		nextRobot:   cfg.FirstRobotNumber,
	}
}

// Reset clears the lifetime record and any round in progress. Robot numbers
// keep counting so they stay unique for the side's lifetime.
func (s *Side) Reset() {
	s.Totals.Reset()
	s.phase = PhaseFinalized
	s.extinctTime = Never
	s.sterileTime = Never
	s.live = liveRound{}
	s.reference = Totals{}
	s.hasReference = false
}

// ReportTotals gives the side a copy of a combined record (the round's or the
// tournament's) to measure its shares against. The side's own totals are not
// touched.
func (s *Side) ReportTotals(totals Totals) {
	s.reference = totals.Clone()
	s.hasReference = true
}

// ReportSeeded records energy given to the side at round start.
func (s *Side) ReportSeeded(en Energy) {
	expectPhase(s.phase, PhaseAccumulating, "ReportSeeded")
	s.seeded += en
	s.live.seeded += en
}

// ReportFrame notes the first frame at which the side was extinct and the
// first frame at which it was alive with nothing invested in construction,
// and samples early biomass at the early checkpoint. Call it after the
// sampling pass for the frame.
func (s *Side) ReportFrame(frame Frames) {
	expectPhase(s.phase, PhaseAccumulating, "ReportFrame")
	if s.live.population == 0 {
		if s.extinctTime == Never {
			s.extinctTime = frame
		}
	} else if s.live.constructor == 0 && s.sterileTime == Never {
		s.sterileTime = frame
	}
	if !s.live.earlySampled && frame >= s.cfg.EarlyCheckpoint {
		s.live.earlyBiomass = s.live.biomass
		s.live.earlySampled = true
	}
}

// ResetSampledStatistics clears the sampled fields before a sampling pass.
// The first call after NewSide, Reset or OneRound also opens a new round.
func (s *Side) ResetSampledStatistics() {
	if s.phase == PhaseFinalized {
		s.live = liveRound{}
		s.extinctTime = Never
		s.sterileTime = Never
		s.reference = Totals{}
		s.hasReference = false
		s.phase = PhaseAccumulating
	}
	s.live.resetSampled()
}

// ReportRobot adds one living robot to the current sampling pass.
func (s *Side) ReportRobot(biomass, construction, economy, combat, hardware Energy) {
	expectPhase(s.phase, PhaseAccumulating, "ReportRobot")
	s.live.population++
	s.live.biomass += biomass
	s.live.constructor += construction
	s.live.econHardware += economy
	s.live.combatHardware += combat
	s.live.totalHardware += hardware
	s.live.populationHigh = max(s.live.populationHigh, s.live.population)
	s.populationEver = max(s.populationEver, s.live.population)
}

// ReportDead records energy lost when one of the side's robots was killed.
func (s *Side) ReportDead(en Energy) {
	expectPhase(s.phase, PhaseAccumulating, "ReportDead")
	s.dead += en
	s.live.dead += en
}

// ReportKilled records energy gained by killing another side's robot.
func (s *Side) ReportKilled(en Energy) {
	expectPhase(s.phase, PhaseAccumulating, "ReportKilled")
	s.killed += en
	s.live.killed += en
}

// ReportSuicide records energy lost to self-destruction.
func (s *Side) ReportSuicide(en Energy) {
	expectPhase(s.phase, PhaseAccumulating, "ReportSuicide")
	s.suicide += en
	s.live.suicide += en
}

func (s *Side) ReportDamageDone(d Damage) {
	expectPhase(s.phase, PhaseAccumulating, "ReportDamageDone")
	s.damageDone += d
}

func (s *Side) ReportDamageTaken(d Damage) {
	expectPhase(s.phase, PhaseAccumulating, "ReportDamageTaken")
	s.damageTaken += d
}

func (s *Side) ReportFriendlyFire(d Damage) {
	expectPhase(s.phase, PhaseAccumulating, "ReportFriendlyFire")
	s.friendlyFire += d
}

// ReportTerritory credits one unit of controlled territory for this pass.
func (s *Side) ReportTerritory() {
	expectPhase(s.phase, PhaseAccumulating, "ReportTerritory")
	s.live.territory++
}

// OneRound closes the round in progress and folds it into the lifetime record.
func (s *Side) OneRound() {
	expectPhase(s.phase, PhaseAccumulating, "OneRound")
	s.Totals.OneRound(s.round())
	s.phase = PhaseFinalized
}

// AbandonRound closes the round in progress without folding it into the
// lifetime record. Events already reported stay counted.
func (s *Side) AbandonRound() {
	s.live = liveRound{}
	s.phase = PhaseFinalized
}

// RoundTotals returns the round in progress as a one-round record. The
// tournament driver combines these across sides to build the reference it
// hands back through ReportTotals.
func (s *Side) RoundTotals() Totals {
	t := Totals{
		seeded:  s.live.seeded,
		killed:  s.live.killed,
		dead:    s.live.dead,
		suicide: s.live.suicide,
	}
	t.OneRound(s.round())
	return t
}

func (s *Side) round() Round {
	l := &s.live
	// A round that ended before the checkpoint is its own early sample.
	early := l.biomass
	if l.earlySampled {
		early = l.earlyBiomass
	}
	return Round{
		Seeded:         l.seeded > 0,
		Sterile:        l.population > 0 && s.sterileTime != Never,
		EarlyDeath:     l.population == 0 && s.extinctTime != Never && s.extinctTime <= s.cfg.EarlyCheckpoint,
		Population:     l.population,
		PopulationHigh: l.populationHigh,
		Biomass:        l.biomass,
		EarlyBiomass:   early,
		Constructor:    l.constructor,
		EconHardware:   l.econHardware,
		CombatHardware: l.combatHardware,
		TotalHardware:  l.totalHardware,
		Territory:      l.territory,

		BiomassFraction:      s.fraction(l.biomass, s.reference.biomass),
		EarlyBiomassFraction: s.fraction(early, s.reference.earlyBiomass),
		KilledFraction:       ratio(float64(l.killed), float64(l.killed+l.dead+l.suicide)),
	}
}

// fraction measures x against the reference total when one was reported and
// is positive, and against the round's seeded energy otherwise.
func (s *Side) fraction(x, referenceTotal Energy) float64 {
	if s.hasReference && referenceTotal > 0 {
		return float64(x / referenceTotal)
	}
	return ratio(float64(x), float64(s.live.seeded))
}

// ExtinctTime is the first frame this round at which the side had no robots.
func (s *Side) ExtinctTime() Frames { return s.extinctTime }

// SterileTime is the first frame this round at which the side was alive but
// investing nothing in construction.
func (s *Side) SterileTime() Frames { return s.sterileTime }

func (s *Side) Phase() Phase { return s.phase }

// LivePopulation is the population counted by the latest sampling pass.
func (s *Side) LivePopulation() int64 { return s.live.population }

// LiveBiomass is the biomass counted by the latest sampling pass.
func (s *Side) LiveBiomass() Energy { return s.live.biomass }

// Doubletime projects the biomass doubling time of the round in progress
// from the round's seeded energy and the latest sample.
func (s *Side) Doubletime(currentTime Frames) Frames {
	return doubletime(s.live.seeded, s.live.biomass, currentTime)
}

// Reference returns the record last given to ReportTotals.
func (s *Side) Reference() (Totals, bool) {
	return s.reference.Clone(), s.hasReference
}

// BiomassShare is the side's lifetime biomass over the reference's. Both
// shares are meant to be read after ReportTotals was given the tournament
// aggregate.
func (s *Side) BiomassShare() float64 {
	if !s.hasReference {
		return 0
	}
	return ratio(float64(s.biomass), float64(s.reference.biomass))
}

// KillShare is the side's lifetime killed energy over the reference's.
func (s *Side) KillShare() float64 {
	if !s.hasReference {
		return 0
	}
	return ratio(float64(s.killed), float64(s.reference.killed))
}

// NewRobotNumber returns the next robot number. Numbers are never reused.
func (s *Side) NewRobotNumber() int64 {
	n := s.nextRobot
	s.nextRobot++
	return n
}
