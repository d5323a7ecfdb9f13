package atom

// Rand is the random source used for packing and collision jitter.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

func uniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
