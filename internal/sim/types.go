package sim

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// AtomState is the per-frame telemetry of one body.
type AtomState struct {
	Name      string
	Pos       r2.Vec
	Vel       r2.Vec
	Mass      float64
	Radius    float64
	Electrons []r2.Vec
}

// Frame is a snapshot of the world after one completed tick.
type Frame struct {
	Index    int
	Contacts int
	Atoms    []AtomState
}

// Metric accumulates a scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Observer is notified after every completed tick.
type Observer interface {
	OnFrame(f Frame)
}

type Config struct {
	Frames int
	// KeepFrames stores every snapshot in the Result. Metrics and observers
	// see every frame regardless.
	KeepFrames bool
}

func DefaultConfig() Config {
	return Config{
		Frames:     600,
		KeepFrames: true,
	}
}

type Result struct {
	Frames    []Frame
	Final     Frame
	Metrics   map[string]float64
	Contacts  int
	FramesRun int
}
