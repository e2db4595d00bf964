package charset

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for symbol draws and spawn placement
// *rand.Rand from math/rand/v2 satisfies it
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a time-seeded source for production use
func NewRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeededRand returns a reproducible source for tests and replays
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}
