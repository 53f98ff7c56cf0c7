package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mathdrill/internal/topic"
)

// LinearParams are the sampled parameters of a linear problem.
//
//	d1:   A*x + B = c
//	d2/3: A1*x + B1*y = c1, A2*x + B2*y = c2 with solution (X, Y)
//
// The right-hand sides are derived from the solution, so every problem has
// an integer answer.
type LinearParams struct {
	A, B           int
	X, Y           int
	A1, B1, A2, B2 int
}

// Determinant returns a1*b2 - a2*b1 of the system's coefficient matrix.
func (p LinearParams) Determinant() int {
	return p.A1*p.B2 - p.A2*p.B1
}

type coefficients struct{ a1, b1, a2, b2 int }

func sampleLinear(d topic.Difficulty, s *Sampler) (LinearParams, error) {
	if d == topic.Easy {
		return LinearParams{
			A: s.Between(2, 10),
			X: s.Between(-10, 10),
			B: s.Between(-20, 20),
		}, nil
	}

	x, y := s.Between(-5, 5), s.Between(-5, 5)
	lo, hi := 1, 5
	if d == topic.Hard {
		lo, hi = 2, 10
	}
	c, err := resample(MaxRejections,
		func() coefficients {
			return coefficients{
				a1: s.Between(lo, hi),
				b1: s.Between(lo, hi),
				a2: s.Between(lo, hi),
				b2: s.Between(lo, hi),
			}
		},
		func(c coefficients) bool { return c.a1*c.b2-c.a2*c.b1 != 0 },
	)
	if err != nil {
		return LinearParams{}, fmt.Errorf("sample non-degenerate system: %w", err)
	}
	return LinearParams{X: x, Y: y, A1: c.a1, B1: c.b1, A2: c.a2, B2: c.b2}, nil
}

func generateLinear(d topic.Difficulty, s *Sampler) (*Problem, error) {
	p, err := sampleLinear(d, s)
	if err != nil {
		return nil, err
	}
	return NewLinearSystem(d, p)
}

// NewLinearSystem builds a linear equation (d1) or 2x2 system (d2, d3)
// problem from explicit parameters.
func NewLinearSystem(d topic.Difficulty, p LinearParams) (*Problem, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	prob := &Problem{
		topic:      topic.LinearSystem,
		difficulty: d,
	}

	if d == topic.Easy {
		if p.A == 0 {
			return nil, invalidParams("coefficient of x must be non-zero")
		}
		c := p.A*p.X + p.B
		prob.answerType = AnswerTypeInteger
		prob.prompt = fmt.Sprintf("Solve the equation: %dx %s = %d", p.A, signedTerm(p.B, ""), c)
		prob.solution = strconv.Itoa(p.X)
		prob.hint = fmt.Sprintf("Move %d to the right-hand side and divide by %d.", p.B, p.A)
		prob.explanation = fmt.Sprintf(
			"To find x, move %d to the right-hand side: %d - (%d) = %d. Then divide by %d: x = %d / %d = %d.",
			p.B, c, p.B, c-p.B, p.A, c-p.B, p.A, p.X)
		return prob, nil
	}

	if p.Determinant() == 0 {
		return nil, fmt.Errorf("%w: %dx%+dy, %dx%+dy", ErrDegenerateSystem, p.A1, p.B1, p.A2, p.B2)
	}
	c1 := p.A1*p.X + p.B1*p.Y
	c2 := p.A2*p.X + p.B2*p.Y
	prob.answerType = AnswerTypePair
	prob.pair = &[2]int{p.X, p.Y}
	prob.prompt = fmt.Sprintf(
		"Solve the system and enter x and y separated by a comma (for example: 5,-3):\n  %dx %s = %d\n  %dx %s = %d",
		p.A1, signedTerm(p.B1, "y"), c1,
		p.A2, signedTerm(p.B2, "y"), c2)
	prob.solution = fmt.Sprintf("%d,%d", p.X, p.Y)
	prob.hint = "Use substitution or add the equations to eliminate one variable."
	prob.explanation = "Solve by substitution or elimination: express one variable through the other from the first equation and substitute it into the second."
	return prob, nil
}

// signedTerm renders v as "+ 5y" or "- 5y".
func signedTerm(v int, variable string) string {
	if v < 0 {
		return fmt.Sprintf("- %d%s", -v, variable)
	}
	return fmt.Sprintf("+ %d%s", v, variable)
}
