package metrics

import "github.com/san-kum/atomsim/internal/sim"

// Default returns the metrics attached to every run.
func Default(halfWidth, halfHeight float64) []sim.Metric {
	return []sim.Metric{
		NewEnergy(),
		NewEnergyDrift(),
		NewContacts(),
		NewContainment(halfWidth, halfHeight),
		NewSpeed(),
	}
}
