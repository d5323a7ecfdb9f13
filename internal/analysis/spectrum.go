package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/atomsim/internal/sim"
)

// PowerSpectrum returns the magnitudes of the first half of the DFT of the
// mean-removed signal. Index k corresponds to k cycles over the signal.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return []float64{}
	}

	mean := stat.Mean(data, nil)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period in frames of the strongest non-constant
// component, or 0 when the signal is flat or too short. The peak is refined
// between bins from the ratio of the larger neighbor to the peak, which is
// exact for a single unwindowed sinusoid.
func DominantPeriod(data []float64) float64 {
	ps := PowerSpectrum(data)
	best, peak := 0, 1e-9
	for k := 1; k < len(ps); k++ {
		if ps[k] > peak {
			best, peak = k, ps[k]
		}
	}
	if best == 0 {
		return 0
	}

	left, right := 0.0, 0.0
	if best > 1 {
		left = ps[best-1]
	}
	if best+1 < len(ps) {
		right = ps[best+1]
	}
	bin := float64(best)
	if right > left {
		bin += right / (peak + right)
	} else if left > 0 {
		bin -= left / (peak + left)
	}
	return float64(len(data)) / bin
}

// CrossingPeriod measures the period from upward crossings of the signal
// mean, interpolated between samples. It returns 0 when fewer than two
// crossings occur.
func CrossingPeriod(data []float64) float64 {
	if len(data) < 3 {
		return 0
	}
	mean := stat.Mean(data, nil)

	first, last, n := 0.0, 0.0, 0
	for i := 1; i < len(data); i++ {
		a, b := data[i-1]-mean, data[i]-mean
		if a < 0 && b >= 0 {
			at := float64(i-1) + a/(a-b)
			if n == 0 {
				first = at
			}
			last = at
			n++
		}
	}
	if n < 2 {
		return 0
	}
	return (last - first) / float64(n-1)
}

// OrbitSignal is the horizontal offset of electron e from the center of
// atom a in every frame. Frames missing that atom or electron are skipped.
func OrbitSignal(frames []sim.Frame, a, e int) []float64 {
	sig := make([]float64, 0, len(frames))
	for _, f := range frames {
		if a >= len(f.Atoms) || e >= len(f.Atoms[a].Electrons) {
			continue
		}
		at := f.Atoms[a]
		sig = append(sig, at.Electrons[e].X-at.Pos.X)
	}
	return sig
}
