package scores

import "fmt"

// Phase tracks where a Side is in the round lifecycle.
type Phase uint8

const (
	// PhaseFinalized: no round in progress. A new Side starts here and
	// OneRound returns here.
	PhaseFinalized Phase = iota
	// PhaseAccumulating: ResetSampledStatistics has opened a round and
	// Report calls are expected.
	PhaseAccumulating
)

func (p Phase) String() string {
	switch p {
	case PhaseFinalized:
		return "finalized"
	case PhaseAccumulating:
		return "accumulating"
	default:
		return "unknown"
	}
}

// expectPhase panics on a call-ordering violation in builds tagged
// scoresdebug. Release builds compile it to nothing.
func expectPhase(got, want Phase, op string) {
	if checkOrdering && got != want {
		panic(fmt.Sprintf("scores: %s called in %s phase, want %s", op, got, want))
	}
}
