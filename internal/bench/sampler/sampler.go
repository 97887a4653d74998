// Package sampler provides the seeded pseudorandom source shared by every
// simulation stage. A Source is never global: callers construct one and pass
// it through the pipeline so that two runs with the same seed draw the same
// sequence.
package sampler

import (
	"math"
	"math/rand/v2"
)

const DefaultSeed uint64 = 42

type Source struct {
	rng *rand.Rand
}

func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Uniform returns a draw from the open interval (0, 1).
// Exact zero is redrawn so that log(u) is always defined.
func (s *Source) Uniform() float64 {
	for {
		if u := s.rng.Float64(); u > 0 {
			return u
		}
	}
}

// Normal draws from N(mean, std²) with the Box–Muller transform over two
// uniform draws.
func (s *Source) Normal(mean, std float64) float64 {
	u1 := s.Uniform()
	u2 := s.Uniform()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + std*z
}

func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// Choice picks one element uniformly. items must not be empty.
func Choice[T any](s *Source, items []T) T {
	return items[s.IntN(len(items))]
}

func Clip(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
