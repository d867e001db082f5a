// Package randutil derives reproducible math/rand/v2 sources from int64
// seeds. Every random draw in the module flows from one of these so a run
// can be replayed from its seed.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG source seeded from seed. Equal seeds give equal
// sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Stream returns the source for one numbered stream of a seed, such as a
// table or a seat. Streams of the same seed do not overlap with each other
// or with New(seed).
func Stream(seed int64, stream uint64) *rand.Rand {
	return New(Derive(seed, stream))
}

// Derive mixes a stream number into seed and returns the resulting seed
func Derive(seed int64, stream uint64) int64 {
	return int64(mix(uint64(seed) ^ mix((stream+1)*goldenRatio64)))
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
