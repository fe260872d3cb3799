package scores

// Income accumulates energy gained, split by acquisition mode.
type Income struct {
	autotrophy   Energy
	theotrophy   Energy
	heterotrophy Energy
	cannibalism  Energy
	kleptotrophy Energy
}

// Reset zeroes every category.
func (in *Income) Reset() {
	*in = Income{}
}

func (in *Income) ReportAutotrophy(en Energy)   { in.autotrophy += en }
func (in *Income) ReportTheotrophy(en Energy)   { in.theotrophy += en }
func (in *Income) ReportHeterotrophy(en Energy) { in.heterotrophy += en }
func (in *Income) ReportCannibalism(en Energy)  { in.cannibalism += en }
func (in *Income) ReportKleptotrophy(en Energy) { in.kleptotrophy += en }

func (in *Income) Autotrophy() int64   { return round(float64(in.autotrophy)) }
func (in *Income) Theotrophy() int64   { return round(float64(in.theotrophy)) }
func (in *Income) Heterotrophy() int64 { return round(float64(in.heterotrophy)) }
func (in *Income) Cannibalism() int64  { return round(float64(in.cannibalism)) }
func (in *Income) Kleptotrophy() int64 { return round(float64(in.kleptotrophy)) }

// Total rounds the unrounded sum of all categories once.
func (in *Income) Total() int64 {
	return round(float64(in.sum()))
}

func (in *Income) sum() Energy {
	return in.autotrophy + in.theotrophy + in.heterotrophy + in.cannibalism + in.kleptotrophy
}

// Add merges other into in, category by category.
func (in *Income) Add(other Income) {
	in.autotrophy += other.autotrophy
	in.theotrophy += other.theotrophy
	in.heterotrophy += other.heterotrophy
	in.cannibalism += other.cannibalism
	in.kleptotrophy += other.kleptotrophy
}
