package atom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Restitution of every nucleus contact.
const Restitution = 1.0

const jitter = 0.5

// Resolver applies impulse-based elastic collisions between overlapping
// nucleus discs, followed by mass-weighted de-penetration.
//
// By default the impulse is applied on every overlap, including pairs that
// are already separating. GateSeparating skips the impulse for those pairs
// while still de-penetrating them.
type Resolver struct {
	GateSeparating bool
	rng            Rand
}

func NewResolver(rng Rand) *Resolver {
	return &Resolver{rng: rng}
}

// ResolveAll checks every unordered pair once and returns the number of
// overlapping pairs found.
func (r *Resolver) ResolveAll(bodies []*Body) int {
	contacts := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if r.Resolve(bodies[i], bodies[j]) {
				contacts++
			}
		}
	}
	return contacts
}

// Resolve handles a single pair and reports whether their discs overlapped.
func (r *Resolver) Resolve(a, b *Body) bool {
	d := r2.Sub(a.Pos, b.Pos)
	dist := r2.Norm(d)
	if dist <= 0 {
		d = r2.Vec{X: uniform(r.rng, -jitter, jitter), Y: uniform(r.rng, -jitter, jitter)}
		dist = r2.Norm(d)
		if dist <= 0 {
			d = r2.Vec{X: jitter}
			dist = jitter
		}
	}

	radA, radB := a.Radius(), b.Radius()
	if dist >= radA+radB {
		return false
	}

	n := r2.Scale(1/dist, d)
	vAlong := r2.Dot(r2.Sub(a.Vel, b.Vel), n)
	m1, m2 := a.Mass(), b.Mass()

	if !r.GateSeparating || vAlong < 0 {
		j := -(1 + Restitution) * vAlong / (1/m1 + 1/m2)
		a.Vel = r2.Add(a.Vel, r2.Scale(j/m1, n))
		b.Vel = r2.Sub(b.Vel, r2.Scale(j/m2, n))
	}

	overlap := (radA + radB) - dist
	total := m1 + m2
	a.Pos = r2.Add(a.Pos, r2.Scale(overlap*m2/total, n))
	b.Pos = r2.Sub(b.Pos, r2.Scale(overlap*m1/total, n))

	return true
}

// Finite reports whether position and velocity hold no NaN or Inf.
func (b *Body) Finite() bool {
	for _, v := range []float64{b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
