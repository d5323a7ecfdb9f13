package sim

import (
	"github.com/san-kum/atomsim/internal/atom"
	"gonum.org/v1/gonum/spatial/r2"
)

// World owns every body of a scenario and advances them one tick at a time.
type World struct {
	Bodies   []*atom.Body
	Arena    atom.Arena
	Resolver *atom.Resolver

	frame int
}

func NewWorld(bodies []*atom.Body, arena atom.Arena, resolver *atom.Resolver) *World {
	return &World{
		Bodies:   bodies,
		Arena:    arena,
		Resolver: resolver,
	}
}

// Step runs one tick: move every body, resolve all collision pairs, then
// advance every electron around its body's new center.
func (w *World) Step() Frame {
	for _, b := range w.Bodies {
		b.Update(w.Arena)
	}
	contacts := w.Resolver.ResolveAll(w.Bodies)
	for _, b := range w.Bodies {
		b.UpdateElectrons()
	}
	w.frame++

	f := w.Snapshot()
	f.Contacts = contacts
	return f
}

// Resize changes the arena half-extents, e.g. when the display is resized.
func (w *World) Resize(halfWidth, halfHeight float64) {
	w.Arena.HalfWidth = halfWidth
	w.Arena.HalfHeight = halfHeight
}

// FrameIndex is the number of completed ticks.
func (w *World) FrameIndex() int { return w.frame }

// Snapshot copies the current state without advancing it.
func (w *World) Snapshot() Frame {
	f := Frame{
		Index: w.frame,
		Atoms: make([]AtomState, len(w.Bodies)),
	}
	for i, b := range w.Bodies {
		electrons := make([]r2.Vec, len(b.Electrons))
		for j, e := range b.Electrons {
			electrons[j] = e.Position()
		}
		f.Atoms[i] = AtomState{
			Name:      b.Name,
			Pos:       b.Pos,
			Vel:       b.Vel,
			Mass:      b.Mass(),
			Radius:    b.Radius(),
			Electrons: electrons,
		}
	}
	return f
}

// Valid reports whether every body holds finite values.
func (w *World) Valid() bool {
	for _, b := range w.Bodies {
		if !b.Finite() {
			return false
		}
	}
	return true
}
