package sim

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/config"
	"gonum.org/v1/gonum/spatial/r2"
)

// Build creates a world from a validated config. The seed drives both
// nucleon packing and collision jitter.
func Build(cfg *config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	packer := atom.NewPacker(rng)

	bodies := make([]*atom.Body, 0, len(cfg.Atoms))
	for _, a := range cfg.Atoms {
		nucleus := atom.NewNucleus(a.Protons, a.Neutrons, cfg.Scale)
		nucleus.NucleonRadius = cfg.NucleonRadius

		electrons := make([]*atom.Electron, 0, len(a.Electrons))
		for _, e := range a.Electrons {
			electrons = append(electrons, atom.NewElectron(e.OrbitRadius, e.Angle, e.Speed, e.Color))
		}

		pos := r2.Vec{X: a.X + cfg.Center.X, Y: a.Y + cfg.Center.Y}
		vel := r2.Vec{X: a.VX, Y: a.VY}
		bodies = append(bodies, atom.NewBody(a.Name, nucleus, electrons, pos, vel, a.Color, packer))
	}

	resolver := atom.NewResolver(rng)
	resolver.GateSeparating = cfg.GateSeparating

	arena := atom.Arena{
		HalfWidth:  cfg.Arena.HalfWidth,
		HalfHeight: cfg.Arena.HalfHeight,
		Margin:     cfg.WallMargin,
	}
	return NewWorld(bodies, arena, resolver), nil
}

// Factory returns a WorldFactory that rebuilds cfg with a different seed.
func Factory(cfg *config.Config) WorldFactory {
	return func(seed int64) (*World, error) {
		c := *cfg
		c.Seed = seed
		return Build(&c)
	}
}
