package trace

import (
	"maps"
	"slices"
)

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Steps        int
	TotalFirings int
	LitLamps     []int // lamp IDs lit in the last record, ascending
	// SettledAt is the first recorded step from which every later record
	// matches the last one, or -1 if the state changed on the last step.
	// This only describes the recorded window; it is not a convergence proof.
	SettledAt int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields, SettledAt -1).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{SettledAt: -1}
	if st == nil || len(st.Steps) == 0 {
		return summary
	}

	summary.Steps = len(st.Steps)
	for _, r := range st.Steps {
		summary.TotalFirings += r.Fired
	}

	last := st.Steps[len(st.Steps)-1]
	for id, lit := range last.Lamps {
		if lit {
			summary.LitLamps = append(summary.LitLamps, id)
		}
	}
	slices.Sort(summary.LitLamps)

	first := len(st.Steps) - 1
	for first > 0 && sameState(st.Steps[first-1], last) {
		first--
	}
	if first < len(st.Steps)-1 {
		summary.SettledAt = st.Steps[first].Step
	}

	return summary
}

func sameState(a, b StepRecord) bool {
	return maps.Equal(a.Lamps, b.Lamps) && maps.Equal(a.Currents, b.Currents)
}
