package arena

import (
	"math"
	"slices"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/robot-league/internal/scores"
)

// Corpse is what a dead robot leaves on its tile.
type Corpse struct {
	Team   int
	Energy scores.Energy
}

// Field is the square arena floor: a sunlight level per tile, sparse manna
// tiles and the corpses currently lying around.
type Field struct {
	Size     int
	sunlight []float64 // 0.0–1.0
	manna    []bool
	corpses  map[int]*Corpse
}

// GenerateField lays out sunlight with layered simplex noise and scatters
// manna where a second noise layer peaks.
func GenerateField(cfg Config, seed int64) *Field {
	lightNoise := opensimplex.NewNormalized(seed)
	mannaNoise := opensimplex.NewNormalized(seed + 1)

	n := cfg.Size * cfg.Size
	f := &Field{
		Size:     cfg.Size,
		sunlight: make([]float64, n),
		manna:    make([]bool, n),
		corpses:  make(map[int]*Corpse),
	}

	peaks := make([]float64, n)
	for y := 0; y < cfg.Size; y++ {
		for x := 0; x < cfg.Size; x++ {
			i := f.index(x, y)
			light := octaveNoise(lightNoise, float64(x), float64(y), 3, 0.08, 0.5)
			// Stretch around the middle so the arena has real dark and bright patches.
			f.sunlight[i] = clamp01((light-0.5)*1.6 + 0.5)
			peaks[i] = octaveNoise(mannaNoise, float64(x), float64(y), 2, 0.3, 0.5)
		}
	}

	// Manna goes on the highest MannaDensity share of the second layer.
	want := int(math.Round(cfg.MannaDensity * float64(n)))
	if want <= 0 {
		return f
	}
	sorted := slices.Clone(peaks)
	slices.Sort(sorted)
	cut := sorted[max(n-want, 0)]
	for i, p := range peaks {
		f.manna[i] = p >= cut
	}
	return f
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

func (f *Field) index(x, y int) int { return y*f.Size + x }

// Contains reports whether (x, y) lies on the field.
func (f *Field) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Size && y < f.Size
}

// Sunlight returns the light level of a tile.
func (f *Field) Sunlight(x, y int) float64 { return f.sunlight[f.index(x, y)] }

// Manna reports whether a tile carries manna.
func (f *Field) Manna(x, y int) bool { return f.manna[f.index(x, y)] }

// DropCorpse adds energy to the corpse on a tile. A fresh corpse belongs to
// the team that dropped it; later drops on the same tile just add energy.
func (f *Field) DropCorpse(x, y, team int, en scores.Energy) {
	i := f.index(x, y)
	if c, ok := f.corpses[i]; ok {
		c.Energy += en
		return
	}
	f.corpses[i] = &Corpse{Team: team, Energy: en}
}

// EatCorpse removes up to limit energy from the corpse on a tile and returns
// how much was taken and whose corpse it was. Team is -1 when there is none.
func (f *Field) EatCorpse(x, y int, limit scores.Energy) (scores.Energy, int) {
	i := f.index(x, y)
	c, ok := f.corpses[i]
	if !ok {
		return 0, -1
	}
	bite := scores.Energy(math.Min(float64(limit), float64(c.Energy)))
	c.Energy -= bite
	if c.Energy <= 0 {
		delete(f.corpses, i)
	}
	return bite, c.Team
}

// CorpseEnergy returns the total energy lying in corpses.
func (f *Field) CorpseEnergy() scores.Energy {
	var total scores.Energy
	for _, c := range f.corpses {
		total += c.Energy
	}
	return total
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
