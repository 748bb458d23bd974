package aggregator

import (
	"math/rand/v2"
	"sync"
)

// source serializes access to a *rand.Rand, which is not safe for
// concurrent use on its own.
type source struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newSource(seed uint64) *source {
	return &source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *source) between(rg Range) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rg.Min + s.r.Float64()*(rg.Max-rg.Min)
}

// WithRand uses r for every synthetic field. The aggregator takes
// ownership of r; callers must not use it concurrently afterwards.
func WithRand(r *rand.Rand) Option {
	return func(a *Aggregator) { a.rnd = &source{r: r} }
}
