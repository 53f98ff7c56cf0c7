package problemgen

import (
	"fmt"

	"github.com/abhisek/mathdrill/internal/topic"
)

// Generator produces exercises.
type Generator interface {
	// Generate samples parameters for the topic and difficulty and returns
	// a fully built, validated Problem. An invalid topic or difficulty is
	// reported as a *topic.ConfigError.
	Generate(t topic.Topic, d topic.Difficulty) (*Problem, error)
}

// strategy samples parameters and builds a problem for one topic.
type strategy func(d topic.Difficulty, s *Sampler) (*Problem, error)

var strategies = map[topic.Topic]strategy{
	topic.Derivative:    generateDerivative,
	topic.LinearSystem:  generateLinear,
	topic.Probability:   generateProbability,
	topic.Combinatorics: generateCombinatorics,
	topic.Sequence:      generateSequence,
}

// LocalGenerator samples parameters from a Sampler and derives everything
// else deterministically.
type LocalGenerator struct {
	sampler *Sampler
	config  Config
}

var _ Generator = (*LocalGenerator)(nil)

// New creates a generator. A nil sampler uses DefaultSampler.
func New(sampler *Sampler, cfg Config) *LocalGenerator {
	if sampler == nil {
		sampler = DefaultSampler()
	}
	return &LocalGenerator{sampler: sampler, config: cfg}
}

func (g *LocalGenerator) Generate(t topic.Topic, d topic.Difficulty) (*Problem, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	gen, ok := strategies[t]
	if !ok {
		return nil, &topic.ConfigError{Field: "topic", Value: string(t), Reason: "unknown topic"}
	}

	p, err := gen(d, g.sampler)
	if err != nil {
		return nil, fmt.Errorf("generate %s (difficulty %d): %w", t, d, err)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(p); verr != nil {
			return nil, verr
		}
	}
	return p, nil
}
