package storage

import (
	"encoding/json"
	"io"
	"math"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/atomsim/internal/sim"
)

// Row is one atom in one frame.
type Row struct {
	Frame    int     `csv:"frame" json:"frame"`
	Atom     string  `csv:"atom" json:"atom"`
	X        float64 `csv:"x" json:"x"`
	Y        float64 `csv:"y" json:"y"`
	VX       float64 `csv:"vx" json:"vx"`
	VY       float64 `csv:"vy" json:"vy"`
	Speed    float64 `csv:"speed" json:"speed"`
	Contacts int     `csv:"contacts" json:"contacts"`
}

func Rows(frames []sim.Frame) []Row {
	n := 0
	for _, f := range frames {
		n += len(f.Atoms)
	}

	rows := make([]Row, 0, n)
	for _, f := range frames {
		for _, a := range f.Atoms {
			rows = append(rows, Row{
				Frame:    f.Index,
				Atom:     a.Name,
				X:        a.Pos.X,
				Y:        a.Pos.Y,
				VX:       a.Vel.X,
				VY:       a.Vel.Y,
				Speed:    math.Hypot(a.Vel.X, a.Vel.Y),
				Contacts: f.Contacts,
			})
		}
	}
	return rows
}

// WriteCSV writes frames with a header row. An empty frame list writes
// nothing.
func WriteCSV(w io.Writer, frames []sim.Frame) error {
	rows := Rows(frames)
	if len(rows) == 0 {
		return nil
	}
	return gocsv.Marshal(rows, w)
}

type ExportData struct {
	Scenario string             `json:"scenario"`
	Seed     int64              `json:"seed"`
	Frames   int                `json:"frames"`
	Contacts int                `json:"contacts"`
	Metrics  map[string]float64 `json:"metrics"`
	Rows     []Row              `json:"rows"`
}

func ExportJSON(w io.Writer, scenario string, seed int64, result *sim.Result) error {
	data := ExportData{
		Scenario: scenario,
		Seed:     seed,
		Frames:   result.FramesRun,
		Contacts: result.Contacts,
		Metrics:  result.Metrics,
		Rows:     Rows(result.Frames),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
