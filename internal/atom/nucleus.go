package atom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	minRadiusFactor = 3.0
	packingFactor   = 2.2
)

// Nucleus derives the visual radius and effective mass of a nucleus from
// its proton and neutron counts.
type Nucleus struct {
	Protons       int
	Neutrons      int
	NucleonRadius float64
	Scale         float64
}

// NewNucleus returns a nucleus with the standard nucleon radius. A
// non-positive scale is treated as 1.
func NewNucleus(protons, neutrons int, scale float64) *Nucleus {
	if protons < 0 {
		protons = 0
	}
	if neutrons < 0 {
		neutrons = 0
	}
	if scale <= 0 {
		scale = 1
	}
	return &Nucleus{
		Protons:       protons,
		Neutrons:      neutrons,
		NucleonRadius: NucleonRadius,
		Scale:         scale,
	}
}

func (n *Nucleus) total() int {
	return n.Protons + n.Neutrons
}

// Radius is never below NucleonRadius*3*Scale.
func (n *Nucleus) Radius() float64 {
	floor := n.NucleonRadius * minRadiusFactor * n.Scale
	packed := math.Sqrt(float64(max(1, n.total()))) * n.NucleonRadius * packingFactor * n.Scale
	return math.Max(floor, packed)
}

// Mass is the nucleon count, floored at 1.
func (n *Nucleus) Mass() float64 {
	return float64(max(1, n.total()))
}

// Site is one nucleon of a packed layout.
type Site struct {
	Kind Kind
	Placement
}

// Layout is the packed set of nucleons, protons first.
type Layout []Site

// Fallbacks counts sites that ended up at the center after the attempt
// budget ran out.
func (l Layout) Fallbacks() int {
	n := 0
	for _, s := range l {
		if s.Fallback {
			n++
		}
	}
	return n
}

// Layout packs protons and then neutrons into one non-overlapping set.
// Neutrons are placed against the proton positions as well.
func (n *Nucleus) Layout(p *Packer) Layout {
	radius := n.Radius()
	layout := make(Layout, 0, n.total())

	protons := p.Place(n.Protons, radius, n.NucleonRadius)
	accepted := make([]r2.Vec, 0, n.total())
	for _, pl := range protons {
		layout = append(layout, Site{Kind: Proton, Placement: pl})
		accepted = append(accepted, pl.Pos)
	}

	for _, pl := range p.PlaceAmong(accepted, n.Neutrons, radius, n.NucleonRadius) {
		layout = append(layout, Site{Kind: Neutron, Placement: pl})
	}

	return layout
}
