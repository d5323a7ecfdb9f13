// Package analysis inspects the frames of a run.
//
//   - [PowerSpectrum], [DominantPeriod] and [CrossingPeriod]: periodicity of a per-frame signal
//   - [OrbitSignal]: horizontal offset of one electron from its nucleus
//   - [TrackPath] and [PathToASCII]: an atom's trajectory as a terminal plot
//
// # Orbit periods
//
// An electron advancing a fixed number of degrees per frame traces a
// cosine in its horizontal offset. The dominant period of that signal is
// 360/speed frames:
//
//	sig := analysis.OrbitSignal(frames, 0, 0)
//	period := analysis.CrossingPeriod(sig) // 72 for speed 5
package analysis
