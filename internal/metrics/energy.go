package metrics

import (
	"math"

	"github.com/san-kum/atomsim/internal/sim"
	"gonum.org/v1/gonum/spatial/r2"
)

// KineticEnergyOf sums 1/2 m v^2 over every atom of a frame.
func KineticEnergyOf(f sim.Frame) float64 {
	ke := 0.0
	for _, a := range f.Atoms {
		ke += 0.5 * a.Mass * r2.Dot(a.Vel, a.Vel)
	}
	return ke
}

// MomentumOf sums m v over every atom of a frame.
func MomentumOf(f sim.Frame) r2.Vec {
	var p r2.Vec
	for _, a := range f.Atoms {
		p = r2.Add(p, r2.Scale(a.Mass, a.Vel))
	}
	return p
}

// Energy is the mean total kinetic energy per frame.
type Energy struct {
	name string
	n    int
	sum  float64
}

func NewEnergy() *Energy {
	return &Energy{name: "kinetic_energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(f sim.Frame) {
	e.sum += KineticEnergyOf(f)
	e.n++
}

func (e *Energy) Value() float64 {
	if e.n == 0 {
		return 0
	}
	return e.sum / float64(e.n)
}

func (e *Energy) Reset() { *e = Energy{name: e.name} }

// EnergyDrift is the largest relative change of total kinetic energy
// against the first observed frame. Walls and elastic contacts both
// conserve it, so anything above rounding noise points at a bug.
type EnergyDrift struct {
	name  string
	seen  bool
	base  float64
	worst float64
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (d *EnergyDrift) Name() string { return d.name }

func (d *EnergyDrift) Observe(f sim.Frame) {
	ke := KineticEnergyOf(f)
	if !d.seen {
		d.base, d.seen = ke, true
		return
	}
	if d.base != 0 {
		d.worst = math.Max(d.worst, math.Abs(ke-d.base)/d.base)
	}
}

func (d *EnergyDrift) Value() float64 { return d.worst }

func (d *EnergyDrift) Reset() { *d = EnergyDrift{name: d.name} }
