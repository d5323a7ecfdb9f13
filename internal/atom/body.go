package atom

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Arena is the bounded play area, centered on the origin.
type Arena struct {
	HalfWidth  float64
	HalfHeight float64
	Margin     float64
}

// Body couples a nucleus and its electrons to a 2D position and velocity.
type Body struct {
	Name      string
	Nucleus   *Nucleus
	Electrons []*Electron
	Pos       r2.Vec
	Vel       r2.Vec
	Color     string

	layout Layout
}

// NewBody builds a body and packs its nucleus once. Protons and neutrons
// never change after construction, so the layout is kept for the body's
// lifetime.
func NewBody(name string, nucleus *Nucleus, electrons []*Electron, pos, vel r2.Vec, color string, p *Packer) *Body {
	b := &Body{
		Name:      name,
		Nucleus:   nucleus,
		Electrons: electrons,
		Pos:       pos,
		Vel:       vel,
		Color:     color,
		layout:    nucleus.Layout(p),
	}
	for _, e := range b.Electrons {
		e.Place(b.Pos)
	}
	return b
}

func (b *Body) Radius() float64 { return b.Nucleus.Radius() }
func (b *Body) Mass() float64   { return b.Nucleus.Mass() }

// Layout returns the nucleon offsets relative to the body center.
func (b *Body) Layout() Layout { return b.layout }

// Update moves the body by one frame and reflects it off the arena walls.
// Each axis is clamped and inverted independently, x before y.
func (b *Body) Update(a Arena) {
	b.Pos = r2.Add(b.Pos, b.Vel)

	xLim := a.HalfWidth - a.Margin
	yLim := a.HalfHeight - a.Margin

	if b.Pos.X > xLim {
		b.Pos.X = xLim
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.X < -xLim {
		b.Pos.X = -xLim
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.Y > yLim {
		b.Pos.Y = yLim
		b.Vel.Y = -b.Vel.Y
	}
	if b.Pos.Y < -yLim {
		b.Pos.Y = -yLim
		b.Vel.Y = -b.Vel.Y
	}
}

// UpdateElectrons advances every electron around the current center.
func (b *Body) UpdateElectrons() {
	for _, e := range b.Electrons {
		e.Update(b.Pos)
	}
}

// KineticEnergy is 1/2 m v^2 using the nucleus mass.
func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass() * r2.Dot(b.Vel, b.Vel)
}

// Momentum is m v using the nucleus mass.
func (b *Body) Momentum() r2.Vec {
	return r2.Scale(b.Mass(), b.Vel)
}
