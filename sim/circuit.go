package sim

import "fmt"

// Circuit owns every component of one build together with the pin index.
// A fresh Circuit (or Reset) starts the id sequence at 1 again.
type Circuit struct {
	nextID     int
	components []*Component         // construction order
	byID       map[int]*Component   // id -> component
	pinOrder   []Pin                // pins in first-seen order
	pinIndex   map[Pin][]*Component // pin -> components listing it, construction order
}

// NewCircuit returns an empty circuit.
func NewCircuit() *Circuit {
	c := &Circuit{}
	c.Reset()
	return c
}

// Reset drops every component and restarts the id sequence.
func (c *Circuit) Reset() {
	c.nextID = 1
	c.components = nil
	c.byID = make(map[int]*Component)
	c.pinOrder = nil
	c.pinIndex = make(map[Pin][]*Component)
}

// Add constructs a component of the given kind on pins and registers it.
func (c *Circuit) Add(kind Kind, attrs Attrs, pins ...Pin) (*Component, error) {
	want, ok := kindArity[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if len(pins) != want {
		return nil, fmt.Errorf("%w: %s takes %d pins, got %d", ErrInvalidArity, kind, want, len(pins))
	}
	comp := &Component{
		ID:   c.nextID,
		Kind: kind,
		Pins: append([]Pin(nil), pins...),
	}
	switch kind {
	case KindTerminal:
		comp.Voltage = attrs.Voltage
	case KindResistor:
		comp.Resistance = attrs.Resistance
	case KindButton:
		comp.On = attrs.On
	}
	c.nextID++
	c.components = append(c.components, comp)
	c.byID[comp.ID] = comp
	for _, p := range comp.Pins {
		if _, seen := c.pinIndex[p]; !seen {
			c.pinOrder = append(c.pinOrder, p)
		}
		if !containsComponent(c.pinIndex[p], comp) {
			c.pinIndex[p] = append(c.pinIndex[p], comp)
		}
	}
	return comp, nil
}

// mustAdd is for the fixed-arity helpers below, whose pin counts are always right.
func (c *Circuit) mustAdd(kind Kind, attrs Attrs, pins ...Pin) *Component {
	comp, err := c.Add(kind, attrs, pins...)
	if err != nil {
		panic(err)
	}
	return comp
}

// Terminal adds a voltage source (voltage > 0) or ground (voltage == 0) at p.
func (c *Circuit) Terminal(p Pin, voltage float64) *Component {
	return c.mustAdd(KindTerminal, Attrs{Voltage: voltage}, p)
}

func (c *Circuit) Wire(p1, p2 Pin) *Component {
	return c.mustAdd(KindWire, Attrs{}, p1, p2)
}

// Diode conducts from p1 to p2 only.
func (c *Circuit) Diode(p1, p2 Pin) *Component {
	return c.mustAdd(KindDiode, Attrs{}, p1, p2)
}

// Transistor adds an NPN-style switch: collector, base, emitter.
func (c *Circuit) Transistor(collector, base, emitter Pin) *Component {
	return c.mustAdd(KindTransistor, Attrs{}, collector, base, emitter)
}

// Button adds a push switch, initially released.
func (c *Circuit) Button(p1, p2 Pin) *Component {
	return c.mustAdd(KindButton, Attrs{}, p1, p2)
}

func (c *Circuit) Resistor(p1, p2 Pin, resistance float64) *Component {
	return c.mustAdd(KindResistor, Attrs{Resistance: resistance}, p1, p2)
}

func (c *Circuit) Lamp(p1, p2 Pin) *Component {
	return c.mustAdd(KindLamp, Attrs{}, p1, p2)
}

// Component looks up a component by id.
func (c *Circuit) Component(id int) (*Component, bool) {
	comp, ok := c.byID[id]
	return comp, ok
}

// Components returns all components in construction order.
func (c *Circuit) Components() []*Component {
	return append([]*Component(nil), c.components...)
}

// Pins returns every pin in the order it was first referenced.
func (c *Circuit) Pins() []Pin {
	return append([]Pin(nil), c.pinOrder...)
}

// At returns the components attached to p, in construction order.
func (c *Circuit) At(p Pin) []*Component {
	return c.pinIndex[p]
}

// Neighbors returns the components sharing at least one pin with comp,
// excluding comp itself, in construction order.
func (c *Circuit) Neighbors(comp *Component) []*Component {
	var out []*Component
	for _, other := range c.components {
		if other == comp {
			continue
		}
		for _, p := range comp.Pins {
			if other.hasPin(p) {
				out = append(out, other)
				break
			}
		}
	}
	return out
}

// Sources returns the pins of all positive terminals in construction order.
// A pin carrying several positive terminals is listed once.
func (c *Circuit) Sources() []Pin {
	var out []Pin
	seen := make(map[Pin]bool)
	for _, comp := range c.components {
		if comp.IsSource() && !seen[comp.Pins[0]] {
			seen[comp.Pins[0]] = true
			out = append(out, comp.Pins[0])
		}
	}
	return out
}

// TerminalVoltage returns the voltage of the first terminal attached to p.
func (c *Circuit) TerminalVoltage(p Pin) (float64, bool) {
	for _, comp := range c.pinIndex[p] {
		if comp.Kind == KindTerminal {
			return comp.Voltage, true
		}
	}
	return 0, false
}

// Press sets a button's pressed state. It may be called between steps of a run.
func (c *Circuit) Press(id int, pressed bool) error {
	comp, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownComponent, id)
	}
	if comp.Kind != KindButton {
		return fmt.Errorf("component %d is a %s, not a button", id, comp.Kind)
	}
	comp.On = pressed
	return nil
}

// Lamps returns all lamps in construction order.
func (c *Circuit) Lamps() []*Component {
	var out []*Component
	for _, comp := range c.components {
		if comp.Kind == KindLamp {
			out = append(out, comp)
		}
	}
	return out
}

func (c *Circuit) isGround(p Pin) bool {
	for _, comp := range c.pinIndex[p] {
		if comp.IsGround() {
			return true
		}
	}
	return false
}

func containsComponent(list []*Component, comp *Component) bool {
	for _, x := range list {
		if x == comp {
			return true
		}
	}
	return false
}
