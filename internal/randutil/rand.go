// Package randutil derives reproducible random sources for dealing.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand whose two seed words are both derived
// from seed, so equal seeds always deal equal hands.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seeded is New with zero meaning "pick one". The seed actually used is
// returned so a deal can be replayed with --seed.
func Seeded(seed int64) (*rand.Rand, int64) {
	for seed == 0 {
		seed = rand.Int64()
	}
	return New(seed), seed
}

// mix is the splitmix64 finaliser.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
