package game

import "golang.org/x/exp/rand"

// Rand is the source of uniform random integers used by a game.
// Intn returns a value in [0, n).
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded generator.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

// intBetween returns a uniform value in [lo, hi].
func intBetween(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
