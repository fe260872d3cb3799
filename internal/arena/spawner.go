package arena

import (
	"math"
	"math/rand"

	"github.com/talgya/robot-league/internal/scores"
)

// Spawner places robots for the teams of one round. Robot numbers come from
// each team's score record so they stay unique across rounds.
type Spawner struct {
	rng   *rand.Rand
	field *Field
}

// NewSpawner creates a spawner with the given seed.
func NewSpawner(seed int64, field *Field) *Spawner {
	return &Spawner{
		rng:   rand.New(rand.NewSource(seed + 300)),
		field: field,
	}
}

// Home returns the starting tile of team i out of n, spread evenly on a
// circle around the arena centre.
func (s *Spawner) Home(i, n int) (int, int) {
	size := s.field.Size
	if n <= 1 {
		return size / 2, size / 2
	}
	angle := 2 * math.Pi * float64(i) / float64(n)
	radius := float64(size) * 0.35
	x := int(math.Round(float64(size)/2 + radius*math.Cos(angle)))
	y := int(math.Round(float64(size)/2 + radius*math.Sin(angle)))
	return clampInt(x, 0, size-1), clampInt(y, 0, size-1)
}

// SeedTeam creates the opening robots of a team around its home tile. The
// seed energy pays for the hardware first; what is left is split as stored
// energy.
func (s *Spawner) SeedTeam(team int, home [2]int, t *Team, count int, seed scores.Energy) []*Robot {
	robots := make([]*Robot, 0, count)
	if count <= 0 {
		return robots
	}
	share := seed / scores.Energy(count)
	for i := 0; i < count; i++ {
		kind := t.Strategy.Choose(s.rng.Float64())
		r := s.spawnOne(team, t, kind, home[0], home[1])
		r.Energy = max(share-kind.Profile().Cost, 0)
		robots = append(robots, r)
	}
	return robots
}

// SpawnChild creates a newly constructed robot next to its parent.
func (s *Spawner) SpawnChild(parent *Robot, t *Team, kind Kind) *Robot {
	return s.spawnOne(parent.Team, t, kind, parent.X, parent.Y)
}

func (s *Spawner) spawnOne(team int, t *Team, kind Kind, x, y int) *Robot {
	dx, dy := s.rng.Intn(3)-1, s.rng.Intn(3)-1
	size := s.field.Size
	return &Robot{
		Number: t.Scores.NewRobotNumber(),
		Team:   team,
		Kind:   kind,
		X:      clampInt(x+dx, 0, size-1),
		Y:      clampInt(y+dy, 0, size-1),
		Armor:  kind.Profile().MaxArmor,
		Alive:  true,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
