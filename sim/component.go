// Defines the Component type that models every idealized electrical part in a circuit.
// Components are a closed set of kinds; conduction topology and current propagation
// are both dispatched on Kind.

package sim

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Pin names a connection node. Components that list the same Pin are joined there.
type Pin int64

// Kind identifies a component type.
type Kind int

const (
	KindTerminal Kind = iota
	KindWire
	KindDiode
	KindTransistor
	KindButton
	KindResistor
	KindLamp
)

// kindNames maps each kind to its lower-case name (used by scenarios and String).
var kindNames = map[Kind]string{
	KindTerminal:   "terminal",
	KindWire:       "wire",
	KindDiode:      "diode",
	KindTransistor: "transistor",
	KindButton:     "button",
	KindResistor:   "resistor",
	KindLamp:       "lamp",
}

// kindArity is the fixed number of pins per kind.
var kindArity = map[Kind]int{
	KindTerminal:   1,
	KindWire:       2,
	KindDiode:      2,
	KindTransistor: 3,
	KindButton:     2,
	KindResistor:   2,
	KindLamp:       2,
}

// ValidKinds is the set of recognized kind names.
var ValidKinds = map[string]Kind{
	"terminal":   KindTerminal,
	"wire":       KindWire,
	"diode":      KindDiode,
	"transistor": KindTransistor,
	"button":     KindButton,
	"resistor":   KindResistor,
	"lamp":       KindLamp,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Arity returns the number of pins a component of this kind takes, or 0 for unknown kinds.
func (k Kind) Arity() int {
	return kindArity[k]
}

// ParseKind resolves a kind name.
func ParseKind(name string) (Kind, error) {
	k, ok := ValidKinds[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Attrs holds the kind-specific attributes supplied at construction.
type Attrs struct {
	Voltage    float64 // terminal only; 0 means ground
	Resistance float64 // resistor only; stored, never read by propagation
	On         bool    // initial pressed state for a button
}

// Component is one placed part. Pins are ordered as the kind defines them:
// a transistor's pins are collector, base, emitter.
type Component struct {
	ID         int
	Kind       Kind
	Pins       []Pin
	Voltage    float64
	Resistance float64
	// On is the pressed state of a button or the lit state of a lamp.
	// Lamps are driven by Propagate; buttons by the host between steps.
	On bool
}

func (c *Component) String() string {
	pins := make([]string, len(c.Pins))
	for i, p := range c.Pins {
		pins[i] = fmt.Sprint(int64(p))
	}
	var attrs string
	switch c.Kind {
	case KindTerminal:
		attrs = fmt.Sprintf("voltage=%g", c.Voltage)
	case KindResistor:
		attrs = fmt.Sprintf("resistance=%g", c.Resistance)
	case KindButton, KindLamp:
		attrs = fmt.Sprintf("on=%t", c.On)
	}
	return fmt.Sprintf("%s#%d(%s | %s)", c.Kind, c.ID, strings.Join(pins, " "), attrs)
}

// IsGround reports whether c is a zero-voltage terminal.
func (c *Component) IsGround() bool {
	return c.Kind == KindTerminal && c.Voltage == 0
}

// IsSource reports whether c is a positive terminal.
func (c *Component) IsSource() bool {
	return c.Kind == KindTerminal && c.Voltage > 0
}

// ConnectedPins returns the pins current entering at `at` could leave through,
// ignoring live current. An unpressed button conducts nowhere. A pin that does
// not belong to c yields nil.
func (c *Component) ConnectedPins(at Pin) []Pin {
	if c.Kind == KindButton && !c.On {
		return nil
	}
	return c.topology(at)
}

// topology is the static conduction shape of the kind. Path discovery uses it so
// that buttons pressed mid-run find their edges already in the graph.
func (c *Component) topology(at Pin) []Pin {
	if !c.hasPin(at) {
		return nil
	}
	switch c.Kind {
	case KindTerminal:
		return []Pin{c.Pins[0]}
	case KindWire, KindButton, KindResistor, KindLamp:
		if at == c.Pins[0] {
			return []Pin{c.Pins[1]}
		}
		return []Pin{c.Pins[0]}
	case KindDiode:
		if at == c.Pins[0] {
			return []Pin{c.Pins[1]}
		}
		return nil
	case KindTransistor:
		if at == c.Pins[0] || at == c.Pins[1] {
			return []Pin{c.Pins[2]}
		}
		return nil
	default:
		panic(fmt.Sprintf("sim: unhandled component kind %d", c.Kind))
	}
}

// conductingPins is ConnectedPins with the live gate applied: a transistor
// conducts from its collector only while its base carries current.
func (c *Component) conductingPins(at Pin, level func(Pin) int) []Pin {
	pins := c.ConnectedPins(at)
	if c.Kind == KindTransistor && at == c.Pins[0] && level(c.Pins[1]) == 0 {
		return nil
	}
	return pins
}

func (c *Component) hasPin(p Pin) bool {
	for _, q := range c.Pins {
		if q == p {
			return true
		}
	}
	return false
}

// Propagate maps the current levels held at c's pins (ordered like Pins) to the
// levels to write back. Lamps update On as a side effect.
func (c *Component) Propagate(in []int) []int {
	switch c.Kind {
	case KindTerminal:
		return []int{1}
	case KindWire, KindButton, KindResistor:
		return wireCurrent(in[0], in[1])
	case KindDiode:
		return []int{in[0], in[0]}
	case KindTransistor:
		if in[1] != 0 {
			return []int{in[0], in[1], in[0]}
		}
		return []int{in[0], in[1], in[2]}
	case KindLamp:
		out := wireCurrent(in[0], in[1])
		c.setLit(out[0] != 0)
		return out
	default:
		panic(fmt.Sprintf("sim: unhandled component kind %d", c.Kind))
	}
}

// wireCurrent carries whichever end is non-zero to both ends.
func wireCurrent(i1, i2 int) []int {
	if i1 == 0 {
		return []int{i2, i2}
	}
	return []int{i1, i1}
}

func (c *Component) setLit(lit bool) {
	if c.On == lit {
		return
	}
	c.On = lit
	if lit {
		logrus.Infof("lamp %d on", c.ID)
	} else {
		logrus.Infof("lamp %d off", c.ID)
	}
}
