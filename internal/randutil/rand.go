// Package randutil provides the randomness source consumed by obstacle
// generation: uniform floats in [min, max) and uniform ints in [min, max].
package randutil

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Source is a uniform random number source.
// Both methods panic when min > max; that is a caller error, the same way
// rand.Intn panics on a non-positive bound.
type Source interface {
	Float(min, max float64) float64
	Int(min, max int) int
}

// Rand is the default Source backed by math/rand.
type Rand struct {
	rng *rand.Rand
}

// New creates a Source seeded with seed. A zero seed uses the current time.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a uniform value in [min, max).
func (r *Rand) Float(min, max float64) float64 {
	if min > max {
		panic(fmt.Sprintf("randutil: Float: min %v is greater than max %v", min, max))
	}
	return r.rng.Float64()*(max-min) + min
}

// Int returns a uniform value in [min, max], both ends inclusive.
func (r *Rand) Int(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("randutil: Int: min %d is greater than max %d", min, max))
	}
	return min + r.rng.Intn(max-min+1)
}

var (
	sharedOnce sync.Once
	shared     *Rand
)

// Default returns the process-wide shared Source, seeded from the clock.
func Default() Source {
	sharedOnce.Do(func() {
		shared = New(0)
	})
	return shared
}
