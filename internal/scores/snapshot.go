package scores

// Snapshot is the exported form of a Totals record, used to persist it.
type Snapshot struct {
	Sides       int64 `json:"sides"`
	Rounds      int64 `json:"rounds"`
	Survived    int64 `json:"survived"`
	Sterile     int64 `json:"sterile"`
	EarlyDeaths int64 `json:"early_deaths"`
	Elimination int64 `json:"elimination"`

	Population     int64   `json:"population"`
	PopulationEver int64   `json:"population_ever"`
	Biomass        float64 `json:"biomass"`
	EarlyBiomass   float64 `json:"early_biomass"`
	BiomassHistory []int64 `json:"biomass_history"`
	Constructor    float64 `json:"constructor"`
	EconHardware   float64 `json:"econ_hardware"`
	CombatHardware float64 `json:"combat_hardware"`
	TotalHardware  float64 `json:"total_hardware"`
	Territory      int64   `json:"territory"`

	Seeded float64 `json:"seeded"`

	// autotrophy, theotrophy, heterotrophy, cannibalism, kleptotrophy
	Income [5]float64 `json:"income"`

	// construction, engine, weapons, force field, shield, repairs,
	// sensors, brain, stolen, wasted
	Expenditure [10]float64 `json:"expenditure"`

	Dead         float64 `json:"dead"`
	Killed       float64 `json:"killed"`
	Suicide      float64 `json:"suicide"`
	DamageDone   float64 `json:"damage_done"`
	DamageTaken  float64 `json:"damage_taken"`
	FriendlyFire float64 `json:"friendly_fire"`

	BiomassFraction      Moments `json:"biomass_fraction"`
	EarlyBiomassFraction Moments `json:"early_biomass_fraction"`
	KilledFraction       Moments `json:"killed_fraction"`
}

// Snapshot exports t.
func (t *Totals) Snapshot() Snapshot {
	in, ex := &t.income, &t.expenditure
	return Snapshot{
		Sides:       t.sides,
		Rounds:      t.rounds,
		Survived:    t.survived,
		Sterile:     t.sterile,
		EarlyDeaths: t.earlyDeaths,
		Elimination: t.elimination,

		Population:     t.population,
		PopulationEver: t.populationEver,
		Biomass:        float64(t.biomass),
		EarlyBiomass:   float64(t.earlyBiomass),
		BiomassHistory: t.BiomassHistory(),
		Constructor:    float64(t.constructor),
		EconHardware:   float64(t.econHardware),
		CombatHardware: float64(t.combatHardware),
		TotalHardware:  float64(t.totalHardware),
		Territory:      t.territory,

		Seeded: float64(t.seeded),
		Income: [5]float64{
			float64(in.autotrophy), float64(in.theotrophy), float64(in.heterotrophy),
			float64(in.cannibalism), float64(in.kleptotrophy),
		},
		Expenditure: [10]float64{
			float64(ex.construction), float64(ex.engine), float64(ex.weapons),
			float64(ex.forceField), float64(ex.shield), float64(ex.repairs),
			float64(ex.sensors), float64(ex.brain), float64(ex.stolen), float64(ex.wasted),
		},
		Dead:         float64(t.dead),
		Killed:       float64(t.killed),
		Suicide:      float64(t.suicide),
		DamageDone:   float64(t.damageDone),
		DamageTaken:  float64(t.damageTaken),
		FriendlyFire: float64(t.friendlyFire),

		BiomassFraction:      t.biomassFraction,
		EarlyBiomassFraction: t.earlyBiomassFraction,
		KilledFraction:       t.killedFraction,
	}
}

// FromSnapshot rebuilds a Totals record from its exported form.
func FromSnapshot(s Snapshot) Totals {
	return Totals{
		sides:       s.Sides,
		rounds:      s.Rounds,
		survived:    s.Survived,
		sterile:     s.Sterile,
		earlyDeaths: s.EarlyDeaths,
		elimination: s.Elimination,

		population:     s.Population,
		populationEver: s.PopulationEver,
		biomass:        Energy(s.Biomass),
		earlyBiomass:   Energy(s.EarlyBiomass),
		biomassHistory: append([]int64(nil), s.BiomassHistory...),
		constructor:    Energy(s.Constructor),
		econHardware:   Energy(s.EconHardware),
		combatHardware: Energy(s.CombatHardware),
		totalHardware:  Energy(s.TotalHardware),
		territory:      s.Territory,

		seeded: Energy(s.Seeded),
		income: Income{
			autotrophy:   Energy(s.Income[0]),
			theotrophy:   Energy(s.Income[1]),
			heterotrophy: Energy(s.Income[2]),
			cannibalism:  Energy(s.Income[3]),
			kleptotrophy: Energy(s.Income[4]),
		},
		expenditure: Expenditure{
			construction: Energy(s.Expenditure[0]),
			engine:       Energy(s.Expenditure[1]),
			weapons:      Energy(s.Expenditure[2]),
			forceField:   Energy(s.Expenditure[3]),
			shield:       Energy(s.Expenditure[4]),
			repairs:      Energy(s.Expenditure[5]),
			sensors:      Energy(s.Expenditure[6]),
			brain:        Energy(s.Expenditure[7]),
			stolen:       Energy(s.Expenditure[8]),
			wasted:       Energy(s.Expenditure[9]),
		},
		dead:         Energy(s.Dead),
		killed:       Energy(s.Killed),
		suicide:      Energy(s.Suicide),
		damageDone:   Damage(s.DamageDone),
		damageTaken:  Damage(s.DamageTaken),
		friendlyFire: Damage(s.FriendlyFire),

		biomassFraction:      s.BiomassFraction,
		earlyBiomassFraction: s.EarlyBiomassFraction,
		killedFraction:       s.KilledFraction,
	}
}
