package diagnosis

import "strings"

// SignClassifier flags answers where exactly one of the answer and the
// solution is negative. Directional wording tells the learner whether the
// minus is extra or missing.
type SignClassifier struct {
	Directional bool
}

func (c *SignClassifier) Name() string { return "sign" }

func (c *SignClassifier) Classify(input *ClassifyInput) *Mistake {
	answerNeg := strings.HasPrefix(input.cleaned(), "-")
	solutionNeg := strings.HasPrefix(input.Problem.Solution(), "-")
	if answerNeg == solutionNeg {
		return nil
	}
	if !c.Directional {
		return GetMistake("sign-flip")
	}
	if answerNeg {
		return GetMistake("derivative-extra-minus")
	}
	return GetMistake("derivative-missing-minus")
}
