package atom

import (
	"math"
	"math/rand"
	"testing"
)

func TestNucleusRadius(t *testing.T) {
	tests := []struct {
		name     string
		protons  int
		neutrons int
		scale    float64
		want     float64
	}{
		{"empty", 0, 0, 1, 36},
		{"hydrogen", 1, 0, 1, 36},
		{"helium", 2, 2, 1, 52.8},
		{"helium scaled", 2, 2, 0.5, 26.4},
		{"carbon", 6, 6, 1, math.Sqrt(12) * 12 * 2.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewNucleus(tt.protons, tt.neutrons, tt.scale).Radius()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Radius() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNucleusRadius_Monotonic(t *testing.T) {
	for _, scale := range []float64{0.5, 1, 2} {
		prev := 0.0
		for total := 0; total <= 60; total++ {
			r := NewNucleus(total/2, total-total/2, scale).Radius()
			if r < prev {
				t.Errorf("scale %v: radius dropped from %v to %v at %d nucleons", scale, prev, r, total)
			}
			if floor := NucleonRadius * 3 * scale; r < floor {
				t.Errorf("scale %v: radius %v below floor %v", scale, r, floor)
			}
			prev = r
		}
	}
}

func TestNucleusMass_Floor(t *testing.T) {
	tests := []struct {
		protons, neutrons int
		want              float64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{0, 1, 1},
		{1, 2, 3},
		{2, 2, 4},
	}
	for _, tt := range tests {
		if got := NewNucleus(tt.protons, tt.neutrons, 1).Mass(); got != tt.want {
			t.Errorf("Mass(%d,%d) = %v, want %v", tt.protons, tt.neutrons, got, tt.want)
		}
	}
}

func TestNewNucleus_Guards(t *testing.T) {
	n := NewNucleus(-3, -1, 0)
	if n.Protons != 0 || n.Neutrons != 0 {
		t.Errorf("negative counts not clamped: %+v", n)
	}
	if n.Scale != 1 {
		t.Errorf("expected scale 1, got %v", n.Scale)
	}
}

func TestNucleusLayout(t *testing.T) {
	n := NewNucleus(6, 8, 1)
	layout := n.Layout(NewPacker(rand.New(rand.NewSource(9))))

	if len(layout) != 14 {
		t.Fatalf("expected 14 sites, got %d", len(layout))
	}
	for i, s := range layout {
		want := Proton
		if i >= 6 {
			want = Neutron
		}
		if s.Kind != want {
			t.Errorf("site %d: kind %v, want %v", i, s.Kind, want)
		}
	}

	// protons and neutrons are packed against each other
	minDist := 2 * NucleonRadius * DefaultMinSeparationFactor
	for i := range layout {
		for j := i + 1; j < len(layout); j++ {
			if layout[i].Fallback || layout[j].Fallback {
				continue
			}
			dx := layout[i].Pos.X - layout[j].Pos.X
			dy := layout[i].Pos.Y - layout[j].Pos.Y
			if math.Hypot(dx, dy) < minDist {
				t.Errorf("sites %d and %d overlap", i, j)
			}
		}
	}
}

func TestNucleusLayout_Empty(t *testing.T) {
	layout := NewNucleus(0, 0, 1).Layout(NewPacker(rand.New(rand.NewSource(1))))
	if len(layout) != 0 {
		t.Errorf("expected empty layout, got %d", len(layout))
	}
	if layout.Fallbacks() != 0 {
		t.Error("expected no fallbacks")
	}
}

func TestNucleonOf(t *testing.T) {
	p, n := NucleonOf(Proton), NucleonOf(Neutron)
	if p.Radius != n.Radius {
		t.Errorf("proton and neutron radii differ: %v vs %v", p.Radius, n.Radius)
	}
	if p.Charge != 1 || n.Charge != 0 {
		t.Errorf("unexpected charges %v, %v", p.Charge, n.Charge)
	}
	if Proton.String() != "proton" || Neutron.String() != "neutron" {
		t.Error("unexpected kind names")
	}
}
