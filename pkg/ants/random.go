package ants

import (
	"math/rand/v2"
	"sync"
)

// Source supplies uniform float64 values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// globalSource draws from the process-wide generator, which is unseeded and
// safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// lockedSource serialises access to a Source that is not safe for
// concurrent use, so it can be shared by the ant chunks of EvolveThreaded.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
