// Package scores accumulates per-side economic and combat statistics for a
// multi-round robot tournament and derives the summary metrics used to rank
// sides. It performs no I/O and no scheduling; the arena simulation drives it
// through the Report methods and the tournament driver finalizes rounds.
package scores

import "math"

// Energy is an amount of robot energy. It is kept distinct from Damage and
// Frames so the three cannot be mixed by accident.
type Energy float64

// Damage is an amount of hit-point damage.
type Damage float64

// Frames counts simulation frames.
type Frames int64

// Never marks a frame that was not observed (or a projection that is undefined).
const Never Frames = -1

// Ratio is an exact numerator:denominator pair kept for display.
type Ratio struct {
	Num Energy
	Den Energy
}

// Float returns Num/Den, or 0 when the denominator is 0.
func (r Ratio) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num / r.Den)
}

// round rounds to the nearest integral energy unit, ties away from zero.
func round(x float64) int64 {
	return int64(math.Round(x))
}

// ratio returns num/den as a float, or 0 when den is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
