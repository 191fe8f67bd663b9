package survival

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the randomness the engine draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	NormFloat64() float64
	IntN(n int) int
}

func NewRand(seed int64) *rand.Rand {
	return NewStream(seed, "sim")
}

// NewStream derives an independent deterministic source for a named
// consumer, so terrain generation does not shift the simulation's draws.
func NewStream(seed int64, stream string) *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, stream+":a"), seedWord(seed, stream+":b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
