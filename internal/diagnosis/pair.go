package diagnosis

import "github.com/abhisek/mathdrill/internal/problemgen"

// PairClassifier compares the components of a 2x2 system answer.
type PairClassifier struct{}

func (c *PairClassifier) Name() string { return "pair" }

func (c *PairClassifier) Classify(input *ClassifyInput) *Mistake {
	sx, sy, ok := input.Problem.SolutionPair()
	if !ok {
		return nil
	}
	ux, uy, err := problemgen.ParsePair(input.LearnerAnswer)
	if err != nil {
		return nil
	}
	switch {
	case ux == sy && uy == sx:
		return GetMistake("linear-swapped")
	case ux == sx:
		return GetMistake("linear-x-correct")
	case uy == sy:
		return GetMistake("linear-y-correct")
	}
	return nil
}
