package problemgen

import "github.com/abhisek/mathdrill/internal/topic"

// Problem is a generated exercise. It is immutable once built: every field
// is derived from the sampled parameters by the topic's builder and only
// exposed through accessors.
type Problem struct {
	topic      topic.Topic
	difficulty topic.Difficulty

	// prompt is the exercise statement including any format instructions
	// (rounding precision, "x,y" pair format, expected expression form).
	prompt string

	// solution is the canonical answer. Its shape depends on the topic:
	// "12", "6*x^2", "3,-2", "0.30".
	solution string

	// hint is a conceptual nudge that never reveals the solution.
	hint string

	// explanation is the full worked method.
	explanation string

	// answerType tells the normalizer how to read learner input.
	answerType AnswerType

	// precision is the number of decimals in solution for decimal answers.
	precision int

	// pair holds the integer solution of a 2x2 system.
	pair *[2]int

	// selection holds n and k of an unordered selection (combinations),
	// kept for permutation/combination confusion checks.
	selection *[2]int
}

// AnswerType describes how a learner answer is parsed and compared.
type AnswerType string

const (
	AnswerTypeInteger    AnswerType = "integer"    // e.g. "720", "-4"
	AnswerTypeDecimal    AnswerType = "decimal"    // e.g. "0.30", "0,3"
	AnswerTypePair       AnswerType = "pair"       // e.g. "3,-2"
	AnswerTypeExpression AnswerType = "expression" // e.g. "6*x^2", "-10*sin(2*x+3)"
)

func (p *Problem) Topic() topic.Topic           { return p.topic }
func (p *Problem) Difficulty() topic.Difficulty { return p.difficulty }
func (p *Problem) Prompt() string               { return p.prompt }
func (p *Problem) Solution() string             { return p.solution }
func (p *Problem) Hint() string                 { return p.hint }
func (p *Problem) Explanation() string          { return p.explanation }
func (p *Problem) AnswerType() AnswerType       { return p.answerType }

// Precision returns the number of decimals of a decimal solution, or 0.
func (p *Problem) Precision() int { return p.precision }

// SolutionPair returns the (x, y) solution of a 2x2 system.
// ok is false for every other problem.
func (p *Problem) SolutionPair() (x, y int, ok bool) {
	if p.pair == nil {
		return 0, 0, false
	}
	return p.pair[0], p.pair[1], true
}

// Selection returns n and k of a combinations problem.
// ok is false for every other problem.
func (p *Problem) Selection() (n, k int, ok bool) {
	if p.selection == nil {
		return 0, 0, false
	}
	return p.selection[0], p.selection[1], true
}
