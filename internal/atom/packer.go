package atom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	DefaultMinSeparationFactor = 0.9
	DefaultMaxAttempts         = 1000
)

// Placement is one packed nucleon offset from the disc center.
// Fallback marks a nucleon that could not be placed within the attempt
// budget and was put at the center instead.
type Placement struct {
	Pos      r2.Vec
	Fallback bool
}

// Packer places circles of equal radius inside a disc by rejection
// sampling. Samples are uniform by area: r = sqrt(a) * (disc - nucleon).
type Packer struct {
	MinSeparationFactor float64
	MaxAttempts         int
	rng                 Rand
}

func NewPacker(rng Rand) *Packer {
	return &Packer{
		MinSeparationFactor: DefaultMinSeparationFactor,
		MaxAttempts:         DefaultMaxAttempts,
		rng:                 rng,
	}
}

// Place returns exactly count placements inside a disc of discRadius.
func (p *Packer) Place(count int, discRadius, nucleonRadius float64) []Placement {
	return p.PlaceAmong(nil, count, discRadius, nucleonRadius)
}

// PlaceAmong places count nucleons that also keep clear of the already
// accepted positions in existing. Only the new placements are returned.
func (p *Packer) PlaceAmong(existing []r2.Vec, count int, discRadius, nucleonRadius float64) []Placement {
	if count <= 0 {
		return []Placement{}
	}

	minDist := 2 * nucleonRadius * p.MinSeparationFactor
	reach := discRadius - nucleonRadius
	if reach < 0 {
		reach = 0
	}

	accepted := make([]r2.Vec, len(existing), len(existing)+count)
	copy(accepted, existing)
	out := make([]Placement, 0, count)

	for i := 0; i < count; i++ {
		pl := Placement{Fallback: true}
		for attempt := 0; attempt < p.MaxAttempts; attempt++ {
			c := p.sample(reach)
			if clearOf(accepted, c, minDist) {
				pl = Placement{Pos: c}
				break
			}
		}
		accepted = append(accepted, pl.Pos)
		out = append(out, pl)
	}

	return out
}

func (p *Packer) sample(reach float64) r2.Vec {
	r := math.Sqrt(p.rng.Float64()) * reach
	theta := uniform(p.rng, 0, 2*math.Pi)
	return r2.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

func clearOf(accepted []r2.Vec, c r2.Vec, minDist float64) bool {
	for _, q := range accepted {
		if r2.Norm(r2.Sub(q, c)) < minDist {
			return false
		}
	}
	return true
}
