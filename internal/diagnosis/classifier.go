package diagnosis

import (
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/topic"
)

// Classifier is a rule-based error classifier. It runs only on a confirmed,
// parseable mismatch and returns the recognized mistake, or nil if the rule
// doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) *Mistake
}

// ClassifiersFor returns the classifiers for a topic in priority order.
// Topic-specific patterns come first so the generic sign check cannot mask
// a more precise diagnosis (a swapped pair also has mismatched signs).
func ClassifiersFor(t topic.Topic, d topic.Difficulty) []Classifier {
	switch t {
	case topic.Derivative:
		return []Classifier{&SignClassifier{Directional: true}}
	case topic.LinearSystem:
		if d == topic.Easy {
			return []Classifier{&SignClassifier{}}
		}
		return []Classifier{&PairClassifier{}, &SignClassifier{}}
	case topic.Probability:
		return []Classifier{&RangeClassifier{}, &ComplementClassifier{}, &SignClassifier{}}
	case topic.Combinatorics:
		if d == topic.Hard {
			return []Classifier{&SelectionClassifier{}, &SignClassifier{}}
		}
		return []Classifier{&SignClassifier{}}
	default:
		return []Classifier{&SignClassifier{}}
	}
}

// RunClassifiers executes rule-based classifiers in order.
// Returns the first match, or (nil, "") if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (*Mistake, string) {
	for _, c := range classifiers {
		if m := c.Classify(input); m != nil {
			return m, c.Name()
		}
	}
	return nil, ""
}

// Diagnose classifies a wrong answer. Unreadable input short-circuits to a
// format-guidance hint. A mismatch that matches no known pattern falls back
// to the problem's worked explanation.
func Diagnose(input *ClassifyInput) *DiagnosisResult {
	p := input.Problem
	if input.ParseErr != nil {
		m := FormatHint(p.AnswerType())
		return &DiagnosisResult{
			Category:       m.Category,
			MistakeID:      m.ID,
			Hint:           m.Hint,
			ClassifierName: "format",
		}
	}

	if m, name := RunClassifiers(ClassifiersFor(p.Topic(), p.Difficulty()), input); m != nil {
		return &DiagnosisResult{
			Category:       m.Category,
			MistakeID:      m.ID,
			Hint:           m.Hint,
			ClassifierName: name,
		}
	}

	return &DiagnosisResult{
		Category:       CategoryUnclassified,
		Hint:           p.Explanation(),
		ClassifierName: "explanation",
	}
}

// cleaned returns the learner answer without whitespace.
func (in *ClassifyInput) cleaned() string {
	return problemgen.CleanAnswer(in.LearnerAnswer)
}
