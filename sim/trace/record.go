// Package trace provides step-trace recording for circuit propagation runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// StepRecord captures the visible state after one propagation step.
type StepRecord struct {
	Step     int
	Fired    int           // component firings during the step
	Lamps    map[int]bool  // lamp component ID → lit
	Currents map[int64]int // pin → current level (absent pins are 0)
}
