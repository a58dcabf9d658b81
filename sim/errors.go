package sim

import "errors"

var (
	// ErrInvalidArity is returned when a component is given the wrong number of pins.
	ErrInvalidArity = errors.New("invalid arity")
	// ErrUnknownKind is returned for a component kind name that is not registered.
	ErrUnknownKind = errors.New("unknown component kind")
	// ErrNoPositiveSource is returned when path discovery finds no terminal with voltage > 0.
	ErrNoPositiveSource = errors.New("no positive source")
	// ErrUnresolvedPath is returned when no positive source reaches a ground terminal.
	ErrUnresolvedPath = errors.New("unresolved path")
	// ErrAlreadyRunning is returned by Start on a running simulator.
	ErrAlreadyRunning = errors.New("simulation already running")
	// ErrNotRunning is returned by Stop on an idle simulator.
	ErrNotRunning = errors.New("simulation not running")
	// ErrUnknownComponent is returned when a component id is not part of the circuit.
	ErrUnknownComponent = errors.New("unknown component")
)
