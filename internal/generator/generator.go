// Package generator builds seeded random sources for target selection.
package generator

import (
	"math/rand/v2"
	"time"
)

// New returns a PCG-backed source. A zero seed selects a time-based seed.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
