package metrics

import (
	"github.com/san-kum/atomsim/internal/sim"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

// Speed tracks atom speeds across every frame; Value is the mean.
type Speed struct {
	name   string
	speeds []float64
}

func NewSpeed() *Speed {
	return &Speed{name: "mean_speed"}
}

func (s *Speed) Name() string { return s.name }

func (s *Speed) Observe(f sim.Frame) {
	for _, a := range f.Atoms {
		s.speeds = append(s.speeds, r2.Norm(a.Vel))
	}
}

func (s *Speed) Value() float64 {
	if len(s.speeds) == 0 {
		return 0
	}
	return stat.Mean(s.speeds, nil)
}

// StdDev is the sample standard deviation of observed speeds.
func (s *Speed) StdDev() float64 {
	if len(s.speeds) < 2 {
		return 0
	}
	_, std := stat.MeanStdDev(s.speeds, nil)
	return std
}

func (s *Speed) Reset() {
	s.speeds = s.speeds[:0]
}

// FrameSpeeds returns the mean and standard deviation of atom speeds in a
// single frame.
func FrameSpeeds(f sim.Frame) (mean, std float64) {
	if len(f.Atoms) == 0 {
		return 0, 0
	}
	speeds := make([]float64, len(f.Atoms))
	for i, a := range f.Atoms {
		speeds[i] = r2.Norm(a.Vel)
	}
	if len(speeds) == 1 {
		return speeds[0], 0
	}
	return stat.MeanStdDev(speeds, nil)
}
