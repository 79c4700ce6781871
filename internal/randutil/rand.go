// Package randutil builds the random sources used for shuffling.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed. Two sources
// built from the same seed produce the same shuffles, which is what tests and
// `--seed` rely on.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewFromEntropy returns a process-local source seeded from the runtime's
// entropy-backed global generator.
func NewFromEntropy() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Derive returns an independent source for worker i of a source seeded with
// seed, so parallel workers never share a generator.
func Derive(seed int64, i int) *rand.Rand {
	return New(int64(mix(uint64(seed)) + uint64(i)*goldenRatio64))
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
