package metrics

import (
	"math"

	"github.com/san-kum/atomsim/internal/sim"
)

// Containment is the fraction of frames in which every atom center stayed
// within the given half-extents.
type Containment struct {
	name       string
	halfWidth  float64
	halfHeight float64
	violations int
	samples    int
}

func NewContainment(halfWidth, halfHeight float64) *Containment {
	return &Containment{
		name:       "containment",
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(f sim.Frame) {
	c.samples++
	for _, a := range f.Atoms {
		if math.Abs(a.Pos.X) > c.halfWidth || math.Abs(a.Pos.Y) > c.halfHeight {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
