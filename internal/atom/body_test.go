package atom

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func newTestBody(protons, neutrons int, pos, vel r2.Vec) *Body {
	p := NewPacker(rand.New(rand.NewSource(1)))
	return NewBody("test", NewNucleus(protons, neutrons, 1), nil, pos, vel, "white", p)
}

func TestBodyUpdate_WallReflection(t *testing.T) {
	arena := Arena{HalfWidth: 400, HalfHeight: 300, Margin: 50}

	tests := []struct {
		name    string
		pos     r2.Vec
		vel     r2.Vec
		wantPos r2.Vec
		wantVel r2.Vec
	}{
		{"right wall", r2.Vec{X: 355}, r2.Vec{X: 2}, r2.Vec{X: 350}, r2.Vec{X: -2}},
		{"left wall", r2.Vec{X: -355}, r2.Vec{X: -2}, r2.Vec{X: -350}, r2.Vec{X: 2}},
		{"top wall", r2.Vec{Y: 249}, r2.Vec{Y: 3}, r2.Vec{Y: 250}, r2.Vec{Y: -3}},
		{"bottom wall", r2.Vec{Y: -249}, r2.Vec{Y: -3}, r2.Vec{Y: -250}, r2.Vec{Y: 3}},
		{"corner", r2.Vec{X: 349, Y: 249}, r2.Vec{X: 4, Y: 4}, r2.Vec{X: 350, Y: 250}, r2.Vec{X: -4, Y: -4}},
		{"free flight", r2.Vec{X: 10, Y: -10}, r2.Vec{X: 1.5, Y: 2.5}, r2.Vec{X: 11.5, Y: -7.5}, r2.Vec{X: 1.5, Y: 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBody(1, 0, tt.pos, tt.vel)
			b.Update(arena)
			if b.Pos != tt.wantPos {
				t.Errorf("pos = %v, want %v", b.Pos, tt.wantPos)
			}
			if b.Vel != tt.wantVel {
				t.Errorf("vel = %v, want %v", b.Vel, tt.wantVel)
			}
		})
	}
}

func TestBodyUpdateElectrons(t *testing.T) {
	p := NewPacker(rand.New(rand.NewSource(1)))
	e := NewElectron(100, 0, 90, "")
	b := NewBody("H", NewNucleus(1, 0, 1), []*Electron{e}, r2.Vec{X: 5}, r2.Vec{X: 1}, "lightblue", p)

	if got := e.Position(); got != (r2.Vec{X: 105}) {
		t.Fatalf("initial electron position = %v, want (105, 0)", got)
	}

	b.Update(Arena{HalfWidth: 1000, HalfHeight: 1000})
	b.UpdateElectrons()

	want := r2.Vec{X: 6, Y: 100}
	if d := r2.Norm(r2.Sub(e.Position(), want)); d > 1e-9 {
		t.Errorf("electron position = %v, want %v", e.Position(), want)
	}
}

func TestBodyEnergyAndMomentum(t *testing.T) {
	b := newTestBody(2, 2, r2.Vec{}, r2.Vec{X: 3, Y: 4})
	if got := b.KineticEnergy(); got != 50 {
		t.Errorf("KineticEnergy() = %v, want 50", got)
	}
	if got := b.Momentum(); got != (r2.Vec{X: 12, Y: 16}) {
		t.Errorf("Momentum() = %v, want (12, 16)", got)
	}
	if len(b.Layout()) != 4 {
		t.Errorf("expected 4 packed nucleons, got %d", len(b.Layout()))
	}
}
