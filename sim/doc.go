// Package sim provides the core current-propagation engine for circuit-sim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - component.go: the component kinds, their conduction topology and propagation rules
//   - circuit.go: the Circuit context (id sequence, pin index, construction helpers)
//   - paths.go: depth-first path discovery from positive terminals to ground
//   - simulator.go: the Idle/Running state machine and the propagation step
//
// # Model
//
// Components meet at integer pins. Current is a level per pin, 0 or 1; there is
// no voltage or resistance solving. On Start the simulator traces every path
// from each positive terminal to a ground terminal and keeps the union of those
// paths as a ConnectivityGraph. Each Step then walks every pin and fires the
// components whose conduction direction at that pin is present in the graph.
// Terminals always fire.
//
// Steps are driven by the host (typically once per rendered frame). The engine
// never detects a fixpoint: circuits may oscillate indefinitely, which is a
// valid state. sim/trace can record steps for post-hoc inspection.
//
// A Circuit is an explicit context: building a new one (or calling Reset)
// restarts the component id sequence, so nothing leaks between builds.
package sim
