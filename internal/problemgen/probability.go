package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mathdrill/internal/topic"
)

// DieSides is the number of faces of the die in two-roll problems.
const DieSides = 6

// ProbabilityParams are the sampled parameters of a probability problem.
//
//	d1: draw one ball, Favorable red out of Total
//	d2: roll a die twice, Face both times
//	d3: draw two balls without replacement, Favorable red out of Total
type ProbabilityParams struct {
	Total     int
	Favorable int
	Face      int
}

// precisionFor returns the rounding precision stated in the prompt.
func precisionFor(d topic.Difficulty) int {
	if d == topic.Easy {
		return 2
	}
	return 3
}

func sampleProbability(d topic.Difficulty, s *Sampler) ProbabilityParams {
	switch d {
	case topic.Easy:
		total := s.Between(10, 20)
		return ProbabilityParams{Total: total, Favorable: s.Between(2, total-2)}
	case topic.Medium:
		return ProbabilityParams{Face: s.Between(1, DieSides)}
	default:
		total := s.Between(10, 15)
		return ProbabilityParams{Total: total, Favorable: s.Between(5, total-2)}
	}
}

func generateProbability(d topic.Difficulty, s *Sampler) (*Problem, error) {
	return NewProbability(d, sampleProbability(d, s))
}

// NewProbability builds a probability problem from explicit parameters.
// The solution is rounded to the precision stated in the prompt.
func NewProbability(d topic.Difficulty, p ProbabilityParams) (*Problem, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	prec := precisionFor(d)
	prob := &Problem{
		topic:      topic.Probability,
		difficulty: d,
		answerType: AnswerTypeDecimal,
		precision:  prec,
	}

	var value float64
	switch d {
	case topic.Easy:
		if p.Total <= 0 || p.Favorable < 0 || p.Favorable > p.Total {
			return nil, invalidParams("need 0 <= favorable <= total, got %d of %d", p.Favorable, p.Total)
		}
		value = float64(p.Favorable) / float64(p.Total)
		rounded := formatDecimal(value, prec)
		prob.prompt = fmt.Sprintf(
			"A basket holds %d balls, %d of them red. What is the probability of drawing a red ball? %s",
			p.Total, p.Favorable, roundingNote(prec))
		prob.hint = "Probability = (number of favorable outcomes) / (total number of outcomes)."
		prob.explanation = fmt.Sprintf(
			"Probability = %d / %d = %s. It is the ratio of red balls to all balls in the basket.",
			p.Favorable, p.Total, rounded)

	case topic.Medium:
		if p.Face < 1 || p.Face > DieSides {
			return nil, invalidParams("die face must be between 1 and %d, got %d", DieSides, p.Face)
		}
		single := 1 / float64(DieSides)
		value = single * single
		prob.prompt = fmt.Sprintf(
			"A fair die (%d faces) is rolled twice. What is the probability of rolling a %d both times? %s",
			DieSides, p.Face, roundingNote(prec))
		prob.hint = "The probability of two independent events is the product of their probabilities."
		prob.explanation = fmt.Sprintf(
			"For independent events P(A and B) = P(A) * P(B). P = (1/%d) * (1/%d) = %s.",
			DieSides, DieSides, formatDecimal(value, prec))

	case topic.Hard:
		if p.Total < 2 || p.Favorable < 1 || p.Favorable > p.Total {
			return nil, invalidParams("need 1 <= red <= total and total >= 2, got %d of %d", p.Favorable, p.Total)
		}
		first := float64(p.Favorable) / float64(p.Total)
		second := float64(p.Favorable-1) / float64(p.Total-1)
		value = first * second
		prob.prompt = fmt.Sprintf(
			"An urn holds %d red and %d blue balls. Two balls are drawn one after another without replacement. What is the probability that both are red? %s",
			p.Favorable, p.Total-p.Favorable, roundingNote(prec))
		prob.hint = "These are dependent events: P(A and B) = P(A) * P(B|A)."
		prob.explanation = fmt.Sprintf(
			"These are dependent events. P(A and B) = P(A) * P(B|A), where P(B|A) is the probability of the second draw after the first. P = (%d/%d) * (%d/%d) = %s.",
			p.Favorable, p.Total, p.Favorable-1, p.Total-1, formatDecimal(value, prec))
	}

	prob.solution = formatDecimal(value, prec)
	return prob, nil
}

func roundingNote(prec int) string {
	return fmt.Sprintf("(round to %d decimal places)", prec)
}

// formatDecimal renders v with exactly prec decimals.
func formatDecimal(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
