package scores

// Expenditure accumulates energy spent, split by where it went.
// Stolen and wasted are losses rather than investments and may be reported
// with either sign.
type Expenditure struct {
	construction Energy
	engine       Energy
	weapons      Energy
	forceField   Energy
	shield       Energy
	repairs      Energy
	sensors      Energy
	brain        Energy
	stolen       Energy
	wasted       Energy
}

// Reset zeroes every category.
func (ex *Expenditure) Reset() {
	*ex = Expenditure{}
}

func (ex *Expenditure) ReportConstruction(en Energy) { ex.construction += en }
func (ex *Expenditure) ReportEngine(en Energy)       { ex.engine += en }
func (ex *Expenditure) ReportWeapons(en Energy)      { ex.weapons += en }
func (ex *Expenditure) ReportForceField(en Energy)   { ex.forceField += en }
func (ex *Expenditure) ReportShield(en Energy)       { ex.shield += en }
func (ex *Expenditure) ReportRepairs(en Energy)      { ex.repairs += en }
func (ex *Expenditure) ReportSensors(en Energy)      { ex.sensors += en }
func (ex *Expenditure) ReportBrain(en Energy)        { ex.brain += en }
func (ex *Expenditure) ReportStolen(en Energy)       { ex.stolen += en }
func (ex *Expenditure) ReportWasted(en Energy)       { ex.wasted += en }

func (ex *Expenditure) Construction() int64 { return round(float64(ex.construction)) }
func (ex *Expenditure) Engine() int64       { return round(float64(ex.engine)) }
func (ex *Expenditure) Weapons() int64      { return round(float64(ex.weapons)) }
func (ex *Expenditure) ForceField() int64   { return round(float64(ex.forceField)) }
func (ex *Expenditure) Shield() int64       { return round(float64(ex.shield)) }
func (ex *Expenditure) Repairs() int64      { return round(float64(ex.repairs)) }
func (ex *Expenditure) Sensors() int64      { return round(float64(ex.sensors)) }
func (ex *Expenditure) Brain() int64        { return round(float64(ex.brain)) }
func (ex *Expenditure) Stolen() int64       { return round(float64(ex.stolen)) }
func (ex *Expenditure) Wasted() int64       { return round(float64(ex.wasted)) }

// Total rounds the unrounded sum of all ten categories once.
func (ex *Expenditure) Total() int64 {
	return round(float64(ex.sum()))
}

// Productive is the unrounded energy spent on hardware and upkeep, that is
// everything except stolen and wasted.
func (ex *Expenditure) Productive() Energy {
	return ex.construction + ex.engine + ex.weapons + ex.forceField +
		ex.shield + ex.repairs + ex.sensors + ex.brain
}

func (ex *Expenditure) sum() Energy {
	return ex.Productive() + ex.stolen + ex.wasted
}

// Add merges other into ex, category by category.
func (ex *Expenditure) Add(other Expenditure) {
	ex.construction += other.construction
	ex.engine += other.engine
	ex.weapons += other.weapons
	ex.forceField += other.forceField
	ex.shield += other.shield
	ex.repairs += other.repairs
	ex.sensors += other.sensors
	ex.brain += other.brain
	ex.stolen += other.stolen
	ex.wasted += other.wasted
}
