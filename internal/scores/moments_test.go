package scores

import (
	"math"
	"testing"
)

func TestMoments_IdenticalSamples(t *testing.T) {
	var m Moments
	for i := 0; i < 10; i++ {
		m.Add(0.5)
	}
	if m.Mean() != 0.5 {
		t.Fatalf("expected mean 0.5, got %v", m.Mean())
	}
	if m.StandardDeviation() != 0 {
		t.Fatalf("identical samples should have zero deviation, got %v", m.StandardDeviation())
	}
}

func TestMoments_KnownDeviation(t *testing.T) {
	var m Moments
	for _, x := range []float64{1, 2, 3, 4} {
		m.Add(x)
	}
	want := math.Sqrt(1.25)
	if math.Abs(m.StandardDeviation()-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, m.StandardDeviation())
	}
	if math.Abs(m.StandardError()-want/2) > 1e-12 {
		t.Fatalf("expected error %v, got %v", want/2, m.StandardError())
	}
}

func TestStandardDeviation_Edges(t *testing.T) {
	cases := []struct {
		name       string
		n          int64
		sum, sumSq float64
	}{
		{"no samples", 0, 0, 0},
		{"negative radicand", 3, 0.3, 0.0299999},
		{"rounding noise", 10, 1, 0.1},
	}
	for _, tc := range cases {
		sd := StandardDeviation(tc.n, tc.sum, tc.sumSq)
		if math.IsNaN(sd) || sd < 0 {
			t.Fatalf("%s: expected non-negative deviation, got %v", tc.name, sd)
		}
	}
	if StandardDeviation(3, 0.3, 0.0299999) != 0 {
		t.Fatal("negative radicand should clamp to zero")
	}
	if StandardError(0, 1, 1) != 0 {
		t.Fatal("standard error with no samples should be 0")
	}
}

func TestMoments_Merge(t *testing.T) {
	var a, b, all Moments
	for _, x := range []float64{1, 2} {
		a.Add(x)
		all.Add(x)
	}
	for _, x := range []float64{3, 4, 5} {
		b.Add(x)
		all.Add(x)
	}
	a.Merge(b)
	if a != all {
		t.Fatalf("merged moments %+v should equal direct %+v", a, all)
	}
}
