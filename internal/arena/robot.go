package arena

import "github.com/talgya/robot-league/internal/scores"

// Kind is a robot design.
type Kind uint8

const (
	KindGatherer Kind = iota
	KindFighter
	KindConstructor
)

func (k Kind) String() string {
	switch k {
	case KindGatherer:
		return "gatherer"
	case KindFighter:
		return "fighter"
	case KindConstructor:
		return "constructor"
	default:
		return "unknown"
	}
}

// Profile is the hardware bill of a robot design. Cost is the total
// hardware; Economy, Combat and Construction are the parts of it reported as
// economy, combat and constructor investment.
type Profile struct {
	Cost         scores.Energy
	Economy      scores.Energy
	Combat       scores.Energy
	Construction scores.Energy
	MaxArmor     scores.Damage
	SolarShare   float64 // fraction of full solar income the design collects
}

var profiles = map[Kind]Profile{
	KindGatherer:    {Cost: 150, Economy: 100, MaxArmor: 40, SolarShare: 1.0},
	KindFighter:     {Cost: 200, Combat: 150, MaxArmor: 80, SolarShare: 0.25},
	KindConstructor: {Cost: 250, Economy: 50, Construction: 150, MaxArmor: 50, SolarShare: 0.5},
}

// Profile returns the hardware bill for this kind.
func (k Kind) Profile() Profile {
	return profiles[k]
}

// Robot is one living robot.
type Robot struct {
	Number   int64 // side-local robot number
	Team     int
	Kind     Kind
	X, Y     int
	Energy   scores.Energy
	Armor    scores.Damage
	Progress scores.Energy // construction energy toward the next child
	Starving int           // consecutive frames spent without energy
	Alive    bool
}

// Biomass is the robot's hardware plus its stored energy.
func (r *Robot) Biomass() scores.Energy {
	return r.Kind.Profile().Cost + r.Energy
}

// Strategy is a side's build policy: relative weights of the robot kinds it
// seeds and constructs.
type Strategy struct {
	Name         string
	Gatherers    int
	Fighters     int
	Constructors int
}

// Choose picks a kind by weight for a roll in [0, 1).
func (s Strategy) Choose(roll float64) Kind {
	total := s.Gatherers + s.Fighters + s.Constructors
	if total <= 0 {
		return KindGatherer
	}
	pick := int(roll * float64(total))
	switch {
	case pick < s.Gatherers:
		return KindGatherer
	case pick < s.Gatherers+s.Fighters:
		return KindFighter
	default:
		return KindConstructor
	}
}

// Presets returns the built-in strategies keyed by name.
func Presets() map[string]Strategy {
	return map[string]Strategy{
		"grazer":   {Name: "grazer", Gatherers: 6, Fighters: 0, Constructors: 3},
		"raider":   {Name: "raider", Gatherers: 2, Fighters: 5, Constructors: 2},
		"builder":  {Name: "builder", Gatherers: 3, Fighters: 1, Constructors: 5},
		"balanced": {Name: "balanced", Gatherers: 3, Fighters: 3, Constructors: 3},
	}
}
