package trace

import (
	"fmt"
	"io"
	"slices"
)

// WriteReport prints one line per recorded step followed by the summary line.
// The output depends only on the records, never on the run id, so it is stable
// across runs of the same circuit.
func WriteReport(w io.Writer, st *SimulationTrace) error {
	if st != nil {
		for _, r := range st.Steps {
			if _, err := fmt.Fprintf(w, "step %d: fired=%d lit=%v pins=%v\n",
				r.Step, r.Fired, litLamps(r), livePins(r)); err != nil {
				return err
			}
		}
	}
	s := Summarize(st)
	lit := s.LitLamps
	if lit == nil {
		lit = []int{}
	}
	_, err := fmt.Fprintf(w, "summary: steps=%d firings=%d lit=%v settled_at=%d\n",
		s.Steps, s.TotalFirings, lit, s.SettledAt)
	return err
}

func litLamps(r StepRecord) []int {
	out := []int{}
	for id, lit := range r.Lamps {
		if lit {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

func livePins(r StepRecord) []int64 {
	out := []int64{}
	for p, v := range r.Currents {
		if v != 0 {
			out = append(out, p)
		}
	}
	slices.Sort(out)
	return out
}
