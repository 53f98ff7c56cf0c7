package diagnosis

import "github.com/abhisek/mathdrill/internal/problemgen"

// RangeClassifier flags probabilities outside [0, 1].
type RangeClassifier struct{}

func (c *RangeClassifier) Name() string { return "range" }

func (c *RangeClassifier) Classify(input *ClassifyInput) *Mistake {
	v, err := problemgen.ParseDecimal(input.LearnerAnswer)
	if err != nil {
		return nil
	}
	if v < 0 || v > 1 {
		return GetMistake("probability-out-of-range")
	}
	return nil
}

// ComplementClassifier flags answers equal to 1 - p, the probability of the
// opposite event. It uses the same relative tolerance as answer checking.
type ComplementClassifier struct{}

func (c *ComplementClassifier) Name() string { return "complement" }

func (c *ComplementClassifier) Classify(input *ClassifyInput) *Mistake {
	v, err := problemgen.ParseDecimal(input.LearnerAnswer)
	if err != nil {
		return nil
	}
	want, err := problemgen.ParseDecimal(input.Problem.Solution())
	if err != nil {
		return nil
	}
	if problemgen.IsClose(v, 1-want, problemgen.RelTolerance) {
		return GetMistake("probability-complement")
	}
	return nil
}
