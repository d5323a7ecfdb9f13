package atom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Electron orbits the current center of its atom at a fixed angular speed.
// Angles are in degrees and kept in [0, 360).
type Electron struct {
	OrbitRadius  float64
	Angle        float64
	AngularSpeed float64
	Color        string

	pos r2.Vec
}

func NewElectron(orbitRadius, angle, angularSpeed float64, color string) *Electron {
	if color == "" {
		color = ElectronColor
	}
	e := &Electron{
		OrbitRadius:  orbitRadius,
		Angle:        normalizeDegrees(angle),
		AngularSpeed: angularSpeed,
		Color:        color,
	}
	e.pos = e.pointAround(r2.Vec{})
	return e
}

// Update advances the angle by one tick and recomputes the position around
// center, which the caller reads from the owning atom every tick.
func (e *Electron) Update(center r2.Vec) r2.Vec {
	e.Angle = normalizeDegrees(e.Angle + e.AngularSpeed)
	e.pos = e.pointAround(center)
	return e.pos
}

// Position is the point computed by the last Update.
func (e *Electron) Position() r2.Vec {
	return e.pos
}

// Place recomputes the position around center without advancing the angle.
func (e *Electron) Place(center r2.Vec) {
	e.pos = e.pointAround(center)
}

func (e *Electron) pointAround(center r2.Vec) r2.Vec {
	rad := e.Angle * math.Pi / 180
	return r2.Vec{
		X: center.X + e.OrbitRadius*math.Cos(rad),
		Y: center.Y + e.OrbitRadius*math.Sin(rad),
	}
}

// normalizeDegrees maps a into [0,360). A tiny negative remainder rounds
// to 360 when shifted, so that case folds to 0.
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}
