// Package random supplies the integer randomness wallpapers are drawn from.
package random

import (
	"fmt"
	"math/rand/v2"
)

// Source picks integers uniformly from the inclusive range [lo, hi].
// Implementations panic when lo > hi and return lo without consuming
// randomness when lo == hi.
type Source interface {
	UniformInt(lo, hi int) int
}

func checkRange(lo, hi int) {
	if lo > hi {
		panic(fmt.Sprintf("random: empty range [%d, %d]", lo, hi))
	}
}

// PCG is a seeded, reproducible Source.
type PCG struct {
	rng *rand.Rand
}

// NewPCG returns a PCG source. The same seed yields the same sequence.
func NewPCG(seed uint64) *PCG {
	return &PCG{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Seed returns a fresh nondeterministic seed, never zero.
func Seed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

func (p *PCG) UniformInt(lo, hi int) int {
	checkRange(lo, hi)
	if lo == hi {
		return lo
	}
	return lo + int(p.rng.Uint64N(uint64(hi-lo)+1))
}
