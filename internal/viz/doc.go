// Package viz provides the live terminal view of an atom simulation.
//
// The view is a Bubble Tea program that owns the tick driver: every tick
// it steps the [sim.World] once and redraws through a Braille [Canvas],
// which implements [render.Sink].
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
