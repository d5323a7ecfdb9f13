package atom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestElectronPeriodicity(t *testing.T) {
	e := NewElectron(100, 45, 5, "")
	start := e.Angle

	for i := 0; i < 71; i++ {
		e.Update(r2.Vec{})
		if e.Angle == start {
			t.Fatalf("returned to start angle early at tick %d", i+1)
		}
	}
	e.Update(r2.Vec{})
	if e.Angle != start {
		t.Errorf("after 72 ticks angle = %v, want %v", e.Angle, start)
	}
}

func TestElectronTracksMovingCenter(t *testing.T) {
	e := NewElectron(100, 0, 5, "blue")
	center := r2.Vec{X: -50, Y: 20}
	vel := r2.Vec{X: 3, Y: -1.5}

	for i := 0; i < 72; i++ {
		center = r2.Add(center, vel)
		p := e.Update(center)
		if d := r2.Norm(r2.Sub(p, center)); math.Abs(d-100) > 1e-9 {
			t.Fatalf("tick %d: distance from center = %v, want 100", i, d)
		}
		if p != e.Position() {
			t.Fatalf("tick %d: Position() disagrees with Update()", i)
		}
	}
}

func TestElectronAngleNormalized(t *testing.T) {
	tests := []struct {
		start, speed float64
		steps        int
		want         float64
	}{
		{-45, 0, 0, 315},
		{359, 2, 1, 1},
		{10, -20, 1, 350},
		{720, 0, 0, 0},
		{-1e-14, 0, 0, 0},
		{0.3, -0.1, 3, 0},
	}

	for _, tt := range tests {
		e := NewElectron(10, tt.start, tt.speed, "")
		for i := 0; i < tt.steps; i++ {
			e.Update(r2.Vec{})
		}
		if math.Abs(e.Angle-tt.want) > 1e-9 {
			t.Errorf("start %v speed %v: angle = %v, want %v", tt.start, tt.speed, e.Angle, tt.want)
		}
		if e.Angle < 0 || e.Angle >= 360 {
			t.Errorf("angle %v out of range", e.Angle)
		}
	}
}

func TestElectronPosition(t *testing.T) {
	e := NewElectron(100, 85, 5, "")
	p := e.Update(r2.Vec{X: 10, Y: 10})
	if math.Abs(p.X-10) > 1e-9 || math.Abs(p.Y-110) > 1e-9 {
		t.Errorf("position at 90 degrees = %v, want (10, 110)", p)
	}
	if e.Color != ElectronColor {
		t.Errorf("default color = %q, want %q", e.Color, ElectronColor)
	}
}
