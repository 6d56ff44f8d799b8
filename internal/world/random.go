package world

import "math/rand/v2"

// Source produces uniform integers in [0,n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG generator seeded once from seed.
// The same seed always yields the same sequence of caves and games.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
