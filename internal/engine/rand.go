package engine

import (
	"math/rand"
	"time"
)

// Source yields uniform variates in [0, 1).
// The simulation draws every random number through this interface so a test
// can inject a fixed seed (or a scripted fake) and replay a series exactly.
type Source interface {
	Float64() float64
}

// NewSource returns a Source seeded with the given value.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSource returns a Source seeded from the wall clock.
func NewTimeSource() Source {
	return NewSource(time.Now().UnixNano())
}
