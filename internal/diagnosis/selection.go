package diagnosis

import "github.com/abhisek/mathdrill/internal/problemgen"

// SelectionClassifier flags an ordered count A(n,k) given where the
// unordered count C(n,k) was asked for.
type SelectionClassifier struct{}

func (c *SelectionClassifier) Name() string { return "selection" }

func (c *SelectionClassifier) Classify(input *ClassifyInput) *Mistake {
	n, k, ok := input.Problem.Selection()
	if !ok {
		return nil
	}
	v, err := problemgen.ParseInteger(input.LearnerAnswer)
	if err != nil {
		return nil
	}
	if int64(v) == problemgen.Permutations(n, k) {
		return GetMistake("combinatorics-ordered")
	}
	return nil
}
