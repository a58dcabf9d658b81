package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/circuit-sim/sim"
)

// Scenario is a circuit plus a press schedule, read from a YAML file.
// It stands in for the editor: each entry becomes one construction call.
// Component ids follow list order starting at 1.
type Scenario struct {
	Name       string          `yaml:"name"`
	Steps      int             `yaml:"steps"`
	Components []ComponentSpec `yaml:"components"`
	Presses    []PressSpec     `yaml:"presses"`
}

// ComponentSpec describes one placed component.
type ComponentSpec struct {
	Kind       string  `yaml:"kind"`
	Pins       []int64 `yaml:"pins"`
	Voltage    float64 `yaml:"voltage,omitempty"`
	Resistance float64 `yaml:"resistance,omitempty"`
	Pressed    bool    `yaml:"pressed,omitempty"` // buttons only
}

// PressSpec sets a button's state just before the given (1-based) step.
type PressSpec struct {
	Step      int  `yaml:"step"`
	Component int  `yaml:"component"`
	Pressed   bool `yaml:"pressed"`
}

// LoadScenario reads and parses a scenario file.
// Uses strict field checking: typos must cause errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks kinds, the step count and every press target.
// Pin counts are left to sim.Circuit.Add.
func (sc *Scenario) Validate() error {
	if sc.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", sc.Steps)
	}
	for i, c := range sc.Components {
		if _, err := sim.ParseKind(c.Kind); err != nil {
			return fmt.Errorf("component %d: %w", i+1, err)
		}
		if c.Pressed && c.Kind != "button" {
			return fmt.Errorf("component %d: pressed is only valid for buttons", i+1)
		}
	}
	for _, p := range sc.Presses {
		if p.Step < 1 {
			return fmt.Errorf("press of component %d: step must be >= 1, got %d", p.Component, p.Step)
		}
		if p.Component < 1 || p.Component > len(sc.Components) {
			return fmt.Errorf("press targets unknown component %d", p.Component)
		}
		if kind := sc.Components[p.Component-1].Kind; kind != "button" {
			return fmt.Errorf("press targets component %d, a %s", p.Component, kind)
		}
	}
	return nil
}

// Build constructs a fresh circuit from the scenario.
func (sc *Scenario) Build() (*sim.Circuit, error) {
	c := sim.NewCircuit()
	for i, spec := range sc.Components {
		kind, err := sim.ParseKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
		pins := make([]sim.Pin, len(spec.Pins))
		for j, p := range spec.Pins {
			pins[j] = sim.Pin(p)
		}
		attrs := sim.Attrs{Voltage: spec.Voltage, Resistance: spec.Resistance, On: spec.Pressed}
		if _, err := c.Add(kind, attrs, pins...); err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
	}
	return c, nil
}

// pressesBefore returns the presses scheduled for the given step, in file order.
func (sc *Scenario) pressesBefore(step int) []PressSpec {
	var out []PressSpec
	for _, p := range sc.Presses {
		if p.Step == step {
			out = append(out, p)
		}
	}
	return out
}
