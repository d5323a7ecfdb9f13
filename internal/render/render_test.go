package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/san-kum/atomsim/internal/atom"
	"gonum.org/v1/gonum/spatial/r2"
)

type call struct {
	op    string
	x, y  float64
	r     float64
	text  string
	color string
}

type recordingSink struct {
	calls []call
}

func (s *recordingSink) FillCircle(x, y, r float64, color string) {
	s.calls = append(s.calls, call{op: "fill", x: x, y: y, r: r, color: color})
}

func (s *recordingSink) Circle(x, y, r float64, color string) {
	s.calls = append(s.calls, call{op: "ring", x: x, y: y, r: r, color: color})
}

func (s *recordingSink) Text(x, y float64, text, color string) {
	s.calls = append(s.calls, call{op: "text", x: x, y: y, text: text, color: color})
}

func (s *recordingSink) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func helium(pos r2.Vec) *atom.Body {
	p := atom.NewPacker(rand.New(rand.NewSource(1)))
	electrons := []*atom.Electron{
		atom.NewElectron(100, 90, 2.5, ""),
		atom.NewElectron(100, 270, 2.5, ""),
	}
	return atom.NewBody("Helium", atom.NewNucleus(2, 2, 1), electrons, pos, r2.Vec{}, "yellow", p)
}

func TestDrawBody(t *testing.T) {
	s := &recordingSink{}
	DrawBody(s, helium(r2.Vec{X: 250, Y: 10}))

	// nucleus + 4 nucleons + 2 electrons
	if got := s.count("fill"); got != 7 {
		t.Errorf("expected 7 filled circles, got %d", got)
	}
	// both electrons share one orbit
	if got := s.count("ring"); got != 1 {
		t.Errorf("expected 1 orbit ring, got %d", got)
	}
	if got := s.count("text"); got != 1 {
		t.Errorf("expected 1 label, got %d", got)
	}

	first := s.calls[0]
	if first.op != "fill" || first.color != atom.NucleusColor || first.x != 250 || first.y != 10 {
		t.Errorf("nucleus drawn first at center, got %+v", first)
	}

	colors := map[string]int{}
	for _, c := range s.calls[1:5] {
		colors[c.color]++
	}
	if colors["red"] != 2 || colors["green"] != 2 {
		t.Errorf("expected 2 red protons and 2 green neutrons, got %v", colors)
	}

	last := s.calls[len(s.calls)-1]
	if last.text != "Helium" || last.y != 10-LabelOffset {
		t.Errorf("unexpected label call %+v", last)
	}
}

func TestDrawBodies(t *testing.T) {
	s := &recordingSink{}
	DrawBodies(s, []*atom.Body{helium(r2.Vec{}), helium(r2.Vec{X: 300})})
	if got := s.count("text"); got != 2 {
		t.Errorf("expected 2 labels, got %d", got)
	}
}

func TestSVGSink(t *testing.T) {
	s := NewSVGSink(100, 50)
	s.FillCircle(0, 0, 10, "red")
	s.Circle(-100, 50, 5, "yellow")
	s.Text(0, -20, "H<1>", "white")

	out := s.String()
	for _, want := range []string{
		`width="200" height="100"`,
		`<circle cx="100.0" cy="50.0" r="10.0" fill="red"/>`,
		`<circle cx="0.0" cy="0.0" r="5.0" fill="none" stroke="yellow"`,
		`y="70.0"`,
		`H&lt;1&gt;`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if !strings.HasSuffix(out, "</svg>") {
		t.Error("svg not closed")
	}
}
