package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mathdrill/internal/topic"
)

// DerivativeParams are the sampled parameters of a derivative problem.
//
//	d1: f(x) = A*x + B
//	d2: f(x) = A*x^B
//	d3: f(x) = A*Func(B*x + C), Func is "sin" or "cos"
type DerivativeParams struct {
	A, B, C int
	Func    string
}

func sampleDerivative(d topic.Difficulty, s *Sampler) DerivativeParams {
	switch d {
	case topic.Easy:
		return DerivativeParams{A: s.Between(2, 10), B: s.Between(1, 10)}
	case topic.Medium:
		return DerivativeParams{A: s.Between(2, 5), B: s.Between(2, 5)}
	default:
		return DerivativeParams{
			A:    s.Between(2, 5) * s.Sign(),
			B:    s.Between(2, 5),
			C:    s.Between(1, 5),
			Func: pick(s, "sin", "cos"),
		}
	}
}

func generateDerivative(d topic.Difficulty, s *Sampler) (*Problem, error) {
	return NewDerivative(d, sampleDerivative(d, s))
}

// NewDerivative builds a derivative problem from explicit parameters.
func NewDerivative(d topic.Difficulty, p DerivativeParams) (*Problem, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	prob := &Problem{
		topic:      topic.Derivative,
		difficulty: d,
		answerType: AnswerTypeExpression,
	}

	switch d {
	case topic.Easy:
		if p.A == 0 {
			return nil, invalidParams("linear coefficient must be non-zero")
		}
		prob.prompt = fmt.Sprintf("Find the derivative of f(x) = %d*x + %d", p.A, p.B)
		prob.solution = strconv.Itoa(p.A)
		prob.hint = "Remember: the derivative of a*x + b is a."
		prob.explanation = fmt.Sprintf(
			"The derivative of a linear function f(x) = a*x + b is the constant a. Here a = %d, so f'(x) = %d.",
			p.A, p.A)

	case topic.Medium:
		if p.A == 0 || p.B < 2 {
			return nil, invalidParams("power term needs a non-zero coefficient and exponent >= 2, got %d*x^%d", p.A, p.B)
		}
		coeff := p.A * p.B
		prob.prompt = fmt.Sprintf("Find the derivative of f(x) = %d*x^%d", p.A, p.B)
		prob.solution = fmt.Sprintf("%d*x^%d", coeff, p.B-1)
		prob.hint = "Use the power rule: (C*x^n)' = C*n*x^(n-1)."
		prob.explanation = fmt.Sprintf(
			"Apply the power rule (C*x^n)' = C*n*x^(n-1): multiply the coefficient by the exponent and lower the exponent by 1. %d*%d*x^(%d-1) = %d*x^%d.",
			p.A, p.B, p.B, coeff, p.B-1)

	case topic.Hard:
		if p.A == 0 || p.B == 0 {
			return nil, invalidParams("trigonometric term needs non-zero a and b")
		}
		inner := fmt.Sprintf("%d*x+%d", p.B, p.C)
		switch p.Func {
		case "sin":
			prob.prompt = fmt.Sprintf(
				"Find the derivative of f(x) = %d*sin(%d*x + %d)\n(write the answer like 10*cos(2*x+3))",
				p.A, p.B, p.C)
			prob.solution = fmt.Sprintf("%d*cos(%s)", p.A*p.B, inner)
			prob.hint = "Use the chain rule and remember that the derivative of sin(u) is cos(u)*u'."
			prob.explanation = fmt.Sprintf(
				"Apply the chain rule (f(g(x)))' = f'(g(x))*g'(x). The derivative of sin(u) is cos(u)*u'. Here u = %s, so u' = %d and f'(x) = %d*%d*cos(%s).",
				inner, p.B, p.A, p.B, inner)
		case "cos":
			prob.prompt = fmt.Sprintf(
				"Find the derivative of f(x) = %d*cos(%d*x + %d)\n(write the answer like -10*sin(2*x+3))",
				p.A, p.B, p.C)
			prob.solution = fmt.Sprintf("%d*sin(%s)", -p.A*p.B, inner)
			prob.hint = "Use the chain rule and remember that the derivative of cos(u) is -sin(u)*u'."
			prob.explanation = fmt.Sprintf(
				"Apply the chain rule (f(g(x)))' = f'(g(x))*g'(x). The derivative of cos(u) is -sin(u)*u'. Here u = %s, so u' = %d and f'(x) = -(%d)*%d*sin(%s).",
				inner, p.B, p.A, p.B, inner)
		default:
			return nil, invalidParams("unknown function %q", p.Func)
		}
	}
	return prob, nil
}
