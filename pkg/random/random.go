package random

import (
	"math/rand/v2"
	"sync"
)

// Source supplies the randomness behind bonuses and game outcomes.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type global struct{}

// New returns a Source backed by the runtime's shared generator.
func New() Source {
	return global{}
}

func (global) Float64() float64 { return rand.Float64() }

func (global) IntN(n int) int { return rand.IntN(n) }

// Sequence replays fixed values in order and wraps around when exhausted.
type Sequence struct {
	mu     sync.Mutex
	Floats []float64
	Ints   []int
	fi, ii int
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

func (s *Sequence) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	return v % n
}
