package scores

import "testing"

func TestIncome_AccessorsRound(t *testing.T) {
	var in Income
	in.ReportAutotrophy(10.4)
	in.ReportTheotrophy(10.5)
	in.ReportHeterotrophy(-2.5)
	if in.Autotrophy() != 10 {
		t.Fatalf("autotrophy: expected 10, got %d", in.Autotrophy())
	}
	if in.Theotrophy() != 11 {
		t.Fatalf("theotrophy: ties round away from zero, expected 11, got %d", in.Theotrophy())
	}
	if in.Heterotrophy() != -3 {
		t.Fatalf("heterotrophy: expected -3, got %d", in.Heterotrophy())
	}
}

func TestIncome_TotalRoundsOnce(t *testing.T) {
	var in Income
	in.ReportAutotrophy(0.4)
	in.ReportTheotrophy(0.4)
	in.ReportHeterotrophy(0.4)
	in.ReportCannibalism(0.4)
	in.ReportKleptotrophy(0.4)

	sumRounded := in.Autotrophy() + in.Theotrophy() + in.Heterotrophy() + in.Cannibalism() + in.Kleptotrophy()
	if sumRounded != 0 {
		t.Fatalf("each category should round to 0, sum got %d", sumRounded)
	}
	if in.Total() != 2 {
		t.Fatalf("total should round the unrounded sum 2.0, got %d", in.Total())
	}
}

func TestIncome_OrderIndependent(t *testing.T) {
	var a, b Income
	a.ReportAutotrophy(100)
	a.ReportKleptotrophy(25)
	a.ReportAutotrophy(50)

	b.ReportAutotrophy(50)
	b.ReportAutotrophy(100)
	b.ReportKleptotrophy(25)

	if a != b {
		t.Fatalf("report order should not matter: %+v vs %+v", a, b)
	}
	if a.Total() != 175 {
		t.Fatalf("expected total 175, got %d", a.Total())
	}
}

func TestIncome_AddAssociativeCommutative(t *testing.T) {
	mk := func(base Energy) Income {
		var in Income
		in.ReportAutotrophy(base)
		in.ReportTheotrophy(base * 2)
		in.ReportHeterotrophy(base * 3)
		in.ReportCannibalism(base * 4)
		in.ReportKleptotrophy(base * 5)
		return in
	}
	a, b, c := mk(1), mk(10), mk(100)

	left := a
	left.Add(b)
	left.Add(c)

	bc := b
	bc.Add(c)
	right := a
	right.Add(bc)

	swapped := c
	swapped.Add(a)
	swapped.Add(b)

	if left != right {
		t.Fatalf("add should be associative: %+v vs %+v", left, right)
	}
	if left != swapped {
		t.Fatalf("add should be commutative: %+v vs %+v", left, swapped)
	}
	if left.Total() != 111*15 {
		t.Fatalf("expected total %d, got %d", 111*15, left.Total())
	}
}

func TestIncome_Reset(t *testing.T) {
	var in Income
	in.ReportCannibalism(42)
	in.Reset()
	if in != (Income{}) {
		t.Fatalf("reset should zero every category, got %+v", in)
	}
}
