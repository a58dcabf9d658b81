// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/circuit-sim/sim/trace"
)

// State is the run state of a Simulator.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// Simulator drives current propagation over one Circuit. It is Idle until
// Start succeeds; while Running the host calls Step once per tick.
// A Simulator is not safe for concurrent use.
type Simulator struct {
	Circuit *Circuit
	Config  RunConfig
	State   State
	// RunID identifies the current run in logs and traces; empty while Idle.
	RunID string
	// StepCount is the number of steps executed in the current run.
	StepCount int
	// Graph is fixed for the duration of a run.
	Graph *ConnectivityGraph
	// Trace holds step records when Config.TraceLevel is "steps". It survives
	// Stop so callers can inspect a finished run.
	Trace *trace.SimulationTrace

	currents map[Pin]int
}

// NewSimulator returns an Idle simulator for c.
func NewSimulator(c *Circuit, cfg RunConfig) *Simulator {
	return &Simulator{
		Circuit: c,
		Config:  cfg,
		State:   StateIdle,
	}
}

// Start discovers the connectivity graph and enters Running with an empty
// current table. On failure the simulator stays Idle.
func (s *Simulator) Start() error {
	if s.State == StateRunning {
		return ErrAlreadyRunning
	}
	if err := s.Config.Validate(); err != nil {
		return err
	}
	g, err := s.Circuit.FindPathsFromSources()
	if err != nil {
		return fmt.Errorf("could not run: %w", err)
	}
	for _, lamp := range s.Circuit.Lamps() {
		lamp.On = false
	}
	s.Graph = g
	s.currents = make(map[Pin]int)
	s.StepCount = 0
	s.RunID = uuid.Must(uuid.NewV7()).String()
	s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(s.Config.TraceLevel)}, s.RunID)
	s.State = StateRunning
	logrus.WithField("run", s.RunID).Infof("Run started: %d component(s), %d edge(s)",
		len(s.Circuit.components), g.Len())
	return nil
}

// Stop discards the graph and current table and turns every lamp off.
func (s *Simulator) Stop() error {
	if s.State != StateRunning {
		return ErrNotRunning
	}
	logrus.WithField("run", s.RunID).Infof("Run stopped after %d step(s)", s.StepCount)
	for _, lamp := range s.Circuit.Lamps() {
		lamp.On = false
	}
	s.Graph = nil
	s.currents = nil
	s.RunID = ""
	s.State = StateIdle
	return nil
}

// Running reports whether a run is in progress.
func (s *Simulator) Running() bool {
	return s.State == StateRunning
}

// Current returns the level held at p. Unknown pins, and every pin while Idle, read 0.
func (s *Simulator) Current(p Pin) int {
	return s.currents[p]
}

// Currents returns a copy of the current table.
func (s *Simulator) Currents() map[Pin]int {
	out := make(map[Pin]int, len(s.currents))
	for p, v := range s.currents {
		out[p] = v
	}
	return out
}

// Step performs one full pass over every pin in first-seen order, firing each
// eligible component attached to it. Components read and write the shared
// table within the pass, so later pins see earlier writes. Step returns the
// number of firings; it does nothing while Idle.
func (s *Simulator) Step() int {
	if s.State != StateRunning {
		logrus.Warnf("Step called while %s; ignoring", s.State)
		return 0
	}
	fired := 0
	for _, p := range s.Circuit.pinOrder {
		for _, comp := range s.Circuit.pinIndex[p] {
			if !s.eligible(comp, p) {
				continue
			}
			s.fire(comp)
			fired++
		}
	}
	s.StepCount++
	logrus.Debugf("[step %05d] %d firing(s)", s.StepCount, fired)
	if s.Trace.Enabled() {
		s.Trace.RecordStep(s.snapshot(fired))
	}
	return fired
}

// Run executes n steps.
func (s *Simulator) Run(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// eligible reports whether comp may fire at p: terminals always may; any other
// component only if it conducts out of p and every pin it would conduct to is
// a recorded successor of p.
func (s *Simulator) eligible(comp *Component, p Pin) bool {
	if comp.Kind == KindTerminal {
		return true
	}
	pins := comp.conductingPins(p, s.Current)
	if len(pins) == 0 {
		return false
	}
	for _, q := range pins {
		if !s.Graph.HasEdge(p, q) {
			return false
		}
	}
	return true
}

func (s *Simulator) fire(comp *Component) {
	in := make([]int, len(comp.Pins))
	for i, p := range comp.Pins {
		in[i] = s.currents[p]
	}
	out := comp.Propagate(in)
	for i, p := range comp.Pins {
		s.currents[p] = out[i]
	}
}

func (s *Simulator) snapshot(fired int) trace.StepRecord {
	rec := trace.StepRecord{
		Step:     s.StepCount,
		Fired:    fired,
		Lamps:    make(map[int]bool),
		Currents: make(map[int64]int),
	}
	for _, lamp := range s.Circuit.Lamps() {
		rec.Lamps[lamp.ID] = lamp.On
	}
	for p, v := range s.currents {
		if v != 0 {
			rec.Currents[int64(p)] = v
		}
	}
	return rec
}
