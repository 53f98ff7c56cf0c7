package diagnosis

import "github.com/abhisek/mathdrill/internal/problemgen"

// ErrorCategory classifies a wrong answer.
type ErrorCategory string

const (
	CategorySign                 ErrorCategory = "sign"
	CategorySwappedVariables     ErrorCategory = "swapped-variables"
	CategoryXCorrect             ErrorCategory = "x-correct"
	CategoryYCorrect             ErrorCategory = "y-correct"
	CategoryOutOfRange           ErrorCategory = "out-of-range"
	CategoryComplement           ErrorCategory = "complement"
	CategoryPermutationConfusion ErrorCategory = "permutation-confusion"
	CategoryUnparseable          ErrorCategory = "unparseable"
	CategoryUnclassified         ErrorCategory = "unclassified"
)

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	Problem       *problemgen.Problem
	LearnerAnswer string
	ParseErr      error // Non-nil when the answer could not be read in the expected shape
}

// DiagnosisResult is the output of classifying a wrong answer.
type DiagnosisResult struct {
	Category       ErrorCategory
	MistakeID      string // Empty for the explanation fallback
	Hint           string // Targeted hint, or the worked explanation as fallback
	ClassifierName string // Which rule produced this result
}
