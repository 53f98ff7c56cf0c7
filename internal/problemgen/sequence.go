package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mathdrill/internal/topic"
)

// seedTerms is the number of terms shown in the prompt.
const seedTerms = 4

// SequenceParams are the sampled parameters of a sequence problem.
//
//	d1: arithmetic, Start + i*Step
//	d2: geometric, Start * Ratio^i
//	d3: quadratic, A*n^2 + B for n = 1..4
type SequenceParams struct {
	Start, Step, Ratio int
	A, B               int
}

func sampleSequence(d topic.Difficulty, s *Sampler) SequenceParams {
	start := s.Between(1, 10)
	switch d {
	case topic.Easy:
		return SequenceParams{Start: start, Step: s.Between(2, 10)}
	case topic.Medium:
		return SequenceParams{Start: start, Ratio: s.Between(2, 3)}
	default:
		return SequenceParams{A: s.Between(2, 4), B: s.Between(1, 5)}
	}
}

func generateSequence(d topic.Difficulty, s *Sampler) (*Problem, error) {
	return NewSequence(d, sampleSequence(d, s))
}

// NewSequence builds a next-term problem from explicit parameters.
func NewSequence(d topic.Difficulty, p SequenceParams) (*Problem, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	prob := &Problem{
		topic:      topic.Sequence,
		difficulty: d,
		answerType: AnswerTypeInteger,
	}

	terms := make([]int, seedTerms)
	var next int
	switch d {
	case topic.Easy:
		for i := range terms {
			terms[i] = p.Start + i*p.Step
		}
		last := terms[seedTerms-1]
		next = last + p.Step
		prob.hint = fmt.Sprintf("This is an arithmetic progression with step %d.", p.Step)
		prob.explanation = fmt.Sprintf(
			"This is an arithmetic progression with step %d. Each term is the previous one plus %d. Next term: %d + %d = %d.",
			p.Step, p.Step, last, p.Step, next)

	case topic.Medium:
		if p.Ratio == 0 {
			return nil, invalidParams("ratio must be non-zero")
		}
		term := p.Start
		for i := range terms {
			terms[i] = term
			term *= p.Ratio
		}
		last := terms[seedTerms-1]
		next = last * p.Ratio
		prob.hint = fmt.Sprintf("This is a geometric progression: each term is multiplied by %d.", p.Ratio)
		prob.explanation = fmt.Sprintf(
			"This is a geometric progression: each term is multiplied by %d. Next term: %d * %d = %d.",
			p.Ratio, last, p.Ratio, next)

	case topic.Hard:
		for i := range terms {
			n := i + 1
			terms[i] = p.A*n*n + p.B
		}
		n := seedTerms + 1
		next = p.A*n*n + p.B
		prob.hint = "The sequence follows the formula a*n^2 + b, where n is the position of the term."
		prob.explanation = fmt.Sprintf(
			"The sequence follows a*n^2 + b, where n is the position of the term. Here a=%d, b=%d. Next term (n=%d): %d*%d^2 + %d = %d + %d = %d.",
			p.A, p.B, n, p.A, n, p.B, p.A*n*n, p.B, next)
	}

	shown := make([]string, len(terms))
	for i, t := range terms {
		shown[i] = strconv.Itoa(t)
	}
	prob.prompt = fmt.Sprintf("Find the next term of the sequence: %s, ...", strings.Join(shown, ", "))
	prob.solution = strconv.Itoa(next)
	return prob, nil
}
