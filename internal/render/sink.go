// Package render draws atoms onto an explicit drawing surface.
//
// Simulation entities never hold a drawing handle. The driver owns a [Sink]
// and passes it to [DrawBodies] once per frame. Coordinates are world units
// with the origin at the arena center and y pointing up.
package render

import (
	"github.com/san-kum/atomsim/internal/atom"
)

// LabelOffset is the distance below an atom center at which its name is
// written.
const LabelOffset = 120.0

// Sink receives draw calls for one frame.
type Sink interface {
	FillCircle(x, y, r float64, color string)
	Circle(x, y, r float64, color string)
	Text(x, y float64, s, color string)
}

// DrawBodies renders every body: nucleus disc, nucleons, orbit rings,
// electrons and the name label.
func DrawBodies(s Sink, bodies []*atom.Body) {
	for _, b := range bodies {
		DrawBody(s, b)
	}
}

func DrawBody(s Sink, b *atom.Body) {
	cx, cy := b.Pos.X, b.Pos.Y

	s.FillCircle(cx, cy, b.Radius(), atom.NucleusColor)
	for _, site := range b.Layout() {
		n := atom.NucleonOf(site.Kind)
		s.FillCircle(cx+site.Pos.X, cy+site.Pos.Y, b.Nucleus.NucleonRadius, n.Color)
	}

	drawn := make(map[float64]bool, len(b.Electrons))
	for _, e := range b.Electrons {
		if drawn[e.OrbitRadius] {
			continue
		}
		drawn[e.OrbitRadius] = true
		s.Circle(cx, cy, e.OrbitRadius, b.Color)
	}
	for _, e := range b.Electrons {
		p := e.Position()
		s.FillCircle(p.X, p.Y, atom.ElectronRadius, e.Color)
	}

	s.Text(cx, cy-LabelOffset, b.Name, "white")
}
