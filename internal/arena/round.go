package arena

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/talgya/robot-league/internal/scores"
)

// Per-frame economy and combat constants.
const (
	brainCost      = 0.05 // every robot, every frame
	sensorCost     = 0.03 // every robot, every frame
	forceFieldCost = 0.02 // fighters only
	moveChance     = 0.3
	moveCost       = 0.1

	corpseBite     = 5.0 // gatherer feeding limit per frame
	corpseShare    = 0.5 // share of a dead robot's biomass left as corpse
	feedReserve    = 200 // gatherers keep this much before feeding teammates
	feedAmount     = 2.0
	constructRate  = 2.0
	constructRes   = 50 // constructors keep this much before building
	childEnergy    = 20
	shotCost       = 1.0
	shotDamage     = 4.0
	shieldCost     = 0.5
	shieldAbsorb   = 1.0
	stealAmount    = 1.0
	friendlyChance = 0.05
	repairCost     = 0.2
	repairRate     = 0.5
	repairReserve  = 10
	starveLimit    = 200 // frames without energy before self-destruction
)

// Scorer is the score record a team reports to. *scores.Side satisfies it.
type Scorer interface {
	ResetSampledStatistics()
	ReportSeeded(en scores.Energy)
	ReportFrame(frame scores.Frames)
	ReportRobot(biomass, construction, economy, combat, hardware scores.Energy)
	ReportDead(en scores.Energy)
	ReportKilled(en scores.Energy)
	ReportSuicide(en scores.Energy)
	ReportDamageDone(d scores.Damage)
	ReportDamageTaken(d scores.Damage)
	ReportFriendlyFire(d scores.Damage)
	ReportTerritory()
	Income() *scores.Income
	Expenditure() *scores.Expenditure
	NewRobotNumber() int64
}

// Team is one side competing in a round.
type Team struct {
	Strategy Strategy
	Scores   Scorer
}

// Outcome summarizes a finished round.
type Outcome struct {
	Frames    scores.Frames
	Survivors []int // indexes of teams with robots left
	Robots    int   // robots alive at the end
}

// Round is one arena run from seeding to a terminal condition.
type Round struct {
	cfg     Config
	field   *Field
	spawner *Spawner
	rng     *rand.Rand
	teams   []*Team

	robots    []*Robot
	plans     map[*Robot]Kind // next child of each constructor
	occupancy map[int][]*Robot
	alive     []int // robots alive per team
}

// NewRound builds the field and spawner for one round.
func NewRound(cfg Config, seed int64, teams []*Team) *Round {
	field := GenerateField(cfg, seed)
	return &Round{
		cfg:       cfg,
		field:     field,
		spawner:   NewSpawner(seed, field),
		rng:       rand.New(rand.NewSource(seed + 100)),
		teams:     teams,
		plans:     make(map[*Robot]Kind),
		occupancy: make(map[int][]*Robot),
		alive:     make([]int, len(teams)),
	}
}

// Field returns the round's arena floor.
func (r *Round) Field() *Field { return r.field }

// Robots returns the robots currently alive.
func (r *Round) Robots() []*Robot { return r.robots }

// Run seeds every team and plays frames until the frame limit, until at most
// one of several teams is left, or until every team is extinct. Each team's
// round is left open: the caller finalizes it.
func (r *Round) Run(ctx context.Context) (Outcome, error) {
	if len(r.teams) == 0 {
		return Outcome{}, fmt.Errorf("arena: round has no teams")
	}
	r.seed()
	r.sample(0)

	loop := &Loop{
		SampleInterval: r.cfg.SampleInterval,
		OnFrame:        r.step,
		OnSample:       r.sample,
		Done:           r.decided,
	}
	if err := loop.Run(ctx, r.cfg.FramesPerRound); err != nil {
		return Outcome{}, fmt.Errorf("arena: round stopped at frame %d: %w", loop.Frame, err)
	}
	if !loop.Sampled() {
		r.sample(loop.Frame)
	}

	out := Outcome{Frames: loop.Frame, Robots: len(r.robots)}
	for i, n := range r.alive {
		if n > 0 {
			out.Survivors = append(out.Survivors, i)
		}
	}
	slog.Debug("arena round finished",
		"frames", out.Frames,
		"robots", out.Robots,
		"survivors", len(out.Survivors),
		"corpse_energy", fmt.Sprintf("%.0f", r.field.CorpseEnergy()),
	)
	return out, nil
}

func (r *Round) seed() {
	for i, t := range r.teams {
		t.Scores.ResetSampledStatistics()
		t.Scores.ReportSeeded(r.cfg.SeedEnergy)
		x, y := r.spawner.Home(i, len(r.teams))
		for _, bot := range r.spawner.SeedTeam(i, [2]int{x, y}, t, r.cfg.SeedRobots, r.cfg.SeedEnergy) {
			r.add(bot)
		}
	}
}

func (r *Round) add(bot *Robot) {
	r.robots = append(r.robots, bot)
	r.alive[bot.Team]++
	if bot.Kind == KindConstructor {
		r.plans[bot] = r.teams[bot.Team].Strategy.Choose(r.rng.Float64())
	}
}

// decided reports whether the round has reached a terminal condition.
func (r *Round) decided() bool {
	teamsAlive := 0
	for _, n := range r.alive {
		if n > 0 {
			teamsAlive++
		}
	}
	return teamsAlive == 0 || (len(r.teams) > 1 && teamsAlive == 1)
}

// step advances every robot by one frame.
func (r *Round) step(frame scores.Frames) {
	r.index()
	// Children born this frame act from the next frame on.
	n := len(r.robots)
	for i := 0; i < n; i++ {
		if bot := r.robots[i]; bot.Alive {
			r.act(bot)
		}
	}
	r.compact()
}

// index rebuilds the tile → robots lookup.
func (r *Round) index() {
	clear(r.occupancy)
	for _, bot := range r.robots {
		if bot.Alive {
			i := r.field.index(bot.X, bot.Y)
			r.occupancy[i] = append(r.occupancy[i], bot)
		}
	}
}

// compact drops dead robots.
func (r *Round) compact() {
	live := r.robots[:0]
	for _, bot := range r.robots {
		if bot.Alive {
			live = append(live, bot)
		} else {
			delete(r.plans, bot)
		}
	}
	clear(r.robots[len(live):])
	r.robots = live
}

// neighbour finds a living robot within one tile of bot, of another team
// when enemy is true and of bot's team otherwise.
func (r *Round) neighbour(bot *Robot, enemy bool, want func(*Robot) bool) *Robot {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := bot.X+dx, bot.Y+dy
			if !r.field.Contains(x, y) {
				continue
			}
			for _, other := range r.occupancy[r.field.index(x, y)] {
				if other == bot || !other.Alive || (other.Team != bot.Team) != enemy {
					continue
				}
				if want == nil || want(other) {
					return other
				}
			}
		}
	}
	return nil
}

// spend takes up to amount from bot and reports what was actually spent.
func spend(bot *Robot, amount scores.Energy, report func(scores.Energy)) scores.Energy {
	amt := min(amount, bot.Energy)
	if amt <= 0 {
		return 0
	}
	bot.Energy -= amt
	report(amt)
	return amt
}

// gain credits income to bot.
func gain(bot *Robot, amount scores.Energy, report func(scores.Energy)) {
	if amount <= 0 {
		return
	}
	bot.Energy += amount
	report(amount)
}

func (r *Round) act(bot *Robot) {
	t := r.teams[bot.Team]
	in, ex := t.Scores.Income(), t.Scores.Expenditure()
	p := bot.Kind.Profile()

	// Upkeep.
	spend(bot, brainCost, ex.ReportBrain)
	spend(bot, sensorCost, ex.ReportSensors)
	if bot.Kind == KindFighter {
		spend(bot, forceFieldCost, ex.ReportForceField)
	}

	// Wander.
	if r.rng.Float64() < moveChance {
		x, y := bot.X+r.rng.Intn(3)-1, bot.Y+r.rng.Intn(3)-1
		if r.field.Contains(x, y) && spend(bot, moveCost, ex.ReportEngine) > 0 {
			bot.X, bot.Y = x, y
		}
	}

	// Feed.
	share := scores.Energy(p.SolarShare)
	gain(bot, r.cfg.SolarRate*scores.Energy(r.field.Sunlight(bot.X, bot.Y))*share, in.ReportAutotrophy)
	if r.field.Manna(bot.X, bot.Y) {
		gain(bot, r.cfg.MannaRate*share, in.ReportTheotrophy)
	}

	switch bot.Kind {
	case KindGatherer:
		r.scavenge(bot, in)
		r.feedTeammate(bot)
	case KindConstructor:
		r.construct(bot, t)
	case KindFighter:
		r.fight(bot, t)
	}
	if !bot.Alive {
		return
	}

	if bot.Armor < p.MaxArmor && bot.Energy > repairReserve {
		if spend(bot, repairCost, ex.ReportRepairs) > 0 {
			bot.Armor = min(p.MaxArmor, bot.Armor+repairRate)
		}
	}

	if bot.Energy > r.cfg.MaxRobotEnergy {
		ex.ReportWasted(bot.Energy - r.cfg.MaxRobotEnergy)
		bot.Energy = r.cfg.MaxRobotEnergy
	}

	if bot.Energy > 0 {
		bot.Starving = 0
		return
	}
	bot.Starving++
	if bot.Starving > starveLimit {
		r.selfDestruct(bot)
	}
}

// scavenge eats from a corpse on the gatherer's tile.
func (r *Round) scavenge(bot *Robot, in *scores.Income) {
	bite, owner := r.field.EatCorpse(bot.X, bot.Y, corpseBite)
	if bite <= 0 {
		return
	}
	if owner == bot.Team {
		gain(bot, bite, in.ReportCannibalism)
	} else {
		gain(bot, bite, in.ReportHeterotrophy)
	}
}

// feedTeammate hands surplus energy to an adjacent non-gatherer of the same
// team. The transfer stays inside the side, so nothing is reported.
func (r *Round) feedTeammate(bot *Robot) {
	if bot.Energy <= feedReserve {
		return
	}
	mate := r.neighbour(bot, false, func(o *Robot) bool { return o.Kind != KindGatherer })
	if mate == nil {
		return
	}
	amt := min(feedAmount, bot.Energy-feedReserve)
	bot.Energy -= amt
	mate.Energy += amt
}

// construct invests surplus energy in the next child and spawns it once the
// child's hardware is paid for.
func (r *Round) construct(bot *Robot, t *Team) {
	if bot.Energy <= constructRes {
		return
	}
	bot.Progress += spend(bot, min(constructRate, bot.Energy-constructRes), t.Scores.Expenditure().ReportConstruction)

	plan := r.plans[bot]
	cost := plan.Profile().Cost
	if bot.Progress < cost {
		return
	}
	bot.Progress -= cost
	child := r.spawner.SpawnChild(bot, t, plan)
	gift := min(childEnergy, bot.Energy)
	bot.Energy -= gift
	child.Energy = gift
	r.add(child)
	r.plans[bot] = t.Strategy.Choose(r.rng.Float64())
}

// fight shoots at an adjacent robot, stealing from it when it survives.
// Now and then the shot goes to a teammate instead.
func (r *Round) fight(bot *Robot, t *Team) {
	target := r.neighbour(bot, true, nil)
	if target == nil {
		return
	}
	friendly := false
	if r.rng.Float64() < friendlyChance {
		if mate := r.neighbour(bot, false, nil); mate != nil {
			target, friendly = mate, true
		}
	}
	if spend(bot, shotCost, t.Scores.Expenditure().ReportWeapons) < shotCost {
		return
	}

	victim := r.teams[target.Team]
	dmg := scores.Damage(shotDamage)
	if spend(target, shieldCost, victim.Scores.Expenditure().ReportShield) > 0 {
		dmg -= shieldAbsorb
	}
	if friendly {
		t.Scores.ReportFriendlyFire(dmg)
	} else {
		t.Scores.ReportDamageDone(dmg)
	}
	victim.Scores.ReportDamageTaken(dmg)
	target.Armor -= dmg

	if target.Armor <= 0 {
		r.kill(target, bot)
		return
	}
	if !friendly {
		loot := min(stealAmount, target.Energy)
		if loot > 0 {
			target.Energy -= loot
			victim.Scores.Expenditure().ReportStolen(loot)
			gain(bot, loot, t.Scores.Income().ReportKleptotrophy)
		}
	}
}

func (r *Round) kill(victim, killer *Robot) {
	biomass := victim.Biomass()
	r.remove(victim)
	r.teams[victim.Team].Scores.ReportDead(biomass)
	if killer.Team != victim.Team {
		r.teams[killer.Team].Scores.ReportKilled(biomass)
	}
	r.field.DropCorpse(victim.X, victim.Y, victim.Team, biomass*corpseShare)
}

func (r *Round) selfDestruct(bot *Robot) {
	biomass := bot.Biomass()
	r.remove(bot)
	r.teams[bot.Team].Scores.ReportSuicide(biomass)
	r.field.DropCorpse(bot.X, bot.Y, bot.Team, biomass*corpseShare)
}

func (r *Round) remove(bot *Robot) {
	bot.Alive = false
	r.alive[bot.Team]--
}

// sample runs one sampling pass: every team's sampled statistics are reset
// and rebuilt from the living robots, then the frame is reported.
func (r *Round) sample(frame scores.Frames) {
	for _, t := range r.teams {
		t.Scores.ResetSampledStatistics()
	}

	cellSize := max(r.cfg.TerritoryCell, 1)
	perRow := (r.field.Size + cellSize - 1) / cellSize
	cells := make([]map[int]struct{}, len(r.teams))
	for i := range cells {
		cells[i] = make(map[int]struct{})
	}

	for _, bot := range r.robots {
		if !bot.Alive {
			continue
		}
		p := bot.Kind.Profile()
		r.teams[bot.Team].Scores.ReportRobot(bot.Biomass(), p.Construction, p.Economy, p.Combat, p.Cost)
		cells[bot.Team][(bot.Y/cellSize)*perRow+bot.X/cellSize] = struct{}{}
	}

	for i, t := range r.teams {
		for range cells[i] {
			t.Scores.ReportTerritory()
		}
		t.Scores.ReportFrame(frame)
	}
}
