package problemgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// MaxRejections caps every rejection-sampling loop.
const MaxRejections = 1000

// ErrRejectionExhausted is returned when a rejection loop hits MaxRejections
// without drawing acceptable parameters.
var ErrRejectionExhausted = errors.New("rejection sampling exhausted")

// Source is the random source consumed by a Sampler.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the process-wide math/rand/v2 generator, which is
// safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Sampler draws bounded integers for the generators.
type Sampler struct {
	src Source
}

// NewSampler returns a Sampler with a deterministic PCG source.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSamplerFrom wraps an existing source.
func NewSamplerFrom(src Source) *Sampler {
	return &Sampler{src: src}
}

// DefaultSampler returns a Sampler backed by the process-wide generator.
func DefaultSampler() *Sampler {
	return &Sampler{src: globalSource{}}
}

// Between returns a uniform integer in [lo, hi]. It panics if hi < lo.
func (s *Sampler) Between(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("problemgen: invalid range [%d, %d]", lo, hi))
	}
	return lo + s.src.IntN(hi-lo+1)
}

// Sign returns -1 or 1 with equal probability.
func (s *Sampler) Sign() int {
	if s.src.IntN(2) == 0 {
		return -1
	}
	return 1
}

// pick returns one of options uniformly.
func pick[T any](s *Sampler, options ...T) T {
	return options[s.src.IntN(len(options))]
}

// resample draws until accept returns true, at most max times.
func resample[T any](max int, draw func() T, accept func(T) bool) (T, error) {
	var v T
	for i := 0; i < max; i++ {
		v = draw()
		if accept(v) {
			return v, nil
		}
	}
	return v, ErrRejectionExhausted
}
