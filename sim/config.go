package sim

import (
	"fmt"

	"github.com/inference-sim/circuit-sim/sim/trace"
)

// RunConfig groups the per-run options of a Simulator.
type RunConfig struct {
	TraceLevel string // "none" (default) or "steps"
}

// NewRunConfig creates a RunConfig. Zero values are kept as given.
func NewRunConfig(traceLevel string) RunConfig {
	return RunConfig{TraceLevel: traceLevel}
}

// Validate checks the configured trace level.
func (c RunConfig) Validate() error {
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
