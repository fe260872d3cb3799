package scores

import "math"

// Moments is a running count, sum and sum of squares of per-round samples.
// Merging two Moments is plain addition, so it is associative and commutative.
type Moments struct {
	N          int64
	Sum        float64
	SumSquares float64
}

// Add records one sample.
func (m *Moments) Add(x float64) {
	m.N++
	m.Sum += x
	m.SumSquares += x * x
}

// Merge adds other's samples into m.
func (m *Moments) Merge(other Moments) {
	m.N += other.N
	m.Sum += other.Sum
	m.SumSquares += other.SumSquares
}

// Mean returns Sum/N, or 0 with no samples.
func (m Moments) Mean() float64 {
	if m.N == 0 {
		return 0
	}
	return m.Sum / float64(m.N)
}

// StandardDeviation returns the population standard deviation of the samples.
func (m Moments) StandardDeviation() float64 {
	return StandardDeviation(m.N, m.Sum, m.SumSquares)
}

// StandardError returns the standard error of the mean.
func (m Moments) StandardError() float64 {
	return StandardError(m.N, m.Sum, m.SumSquares)
}

// StandardDeviation computes sqrt(E[x²] - E[x]²) from n samples summing to
// sum with squares summing to sumSquares. The radicand is clamped at zero so
// rounding error never yields NaN. Returns 0 when n is 0.
func StandardDeviation(n int64, sum, sumSquares float64) float64 {
	if n <= 0 {
		return 0
	}
	mean := sum / float64(n)
	variance := sumSquares/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// StandardError is StandardDeviation / sqrt(n), or 0 when n is 0.
func StandardError(n int64, sum, sumSquares float64) float64 {
	if n <= 0 {
		return 0
	}
	return StandardDeviation(n, sum, sumSquares) / math.Sqrt(float64(n))
}
