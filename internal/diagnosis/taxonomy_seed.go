package diagnosis

import "github.com/abhisek/mathdrill/internal/topic"

// seedMistakes is the catalog of recognized mistakes.
var seedMistakes = []Mistake{
	// Any topic
	{
		ID:       "sign-flip",
		Category: CategorySign,
		Label:    "Sign flip",
		Hint:     "Check the signs!",
	},

	// Derivative
	{
		ID:       "derivative-extra-minus",
		Category: CategorySign,
		Topic:    topic.Derivative,
		Label:    "Extra minus",
		Hint:     "You added an extra minus. Check the signs.",
	},
	{
		ID:       "derivative-missing-minus",
		Category: CategorySign,
		Topic:    topic.Derivative,
		Label:    "Missing minus",
		Hint:     "Looks like you dropped a minus. Check the signs.",
	},

	// Linear system
	{
		ID:       "linear-swapped",
		Category: CategorySwappedVariables,
		Topic:    topic.LinearSystem,
		Label:    "Swapped variables",
		Hint:     "Looks like you swapped x and y. The answer is expected as 'x,y'.",
	},
	{
		ID:       "linear-x-correct",
		Category: CategoryXCorrect,
		Topic:    topic.LinearSystem,
		Label:    "Only x correct",
		Hint:     "'x' is correct! Recheck your calculation for 'y'.",
	},
	{
		ID:       "linear-y-correct",
		Category: CategoryYCorrect,
		Topic:    topic.LinearSystem,
		Label:    "Only y correct",
		Hint:     "'y' is correct! Recheck your calculation for 'x'.",
	},

	// Probability
	{
		ID:       "probability-out-of-range",
		Category: CategoryOutOfRange,
		Topic:    topic.Probability,
		Label:    "Out of range",
		Hint:     "A probability cannot be less than 0 or greater than 1.",
	},
	{
		ID:       "probability-complement",
		Category: CategoryComplement,
		Topic:    topic.Probability,
		Label:    "Complement event",
		Hint:     "Looks like you found the probability of the opposite event.",
	},

	// Combinatorics
	{
		ID:       "combinatorics-ordered",
		Category: CategoryPermutationConfusion,
		Topic:    topic.Combinatorics,
		Label:    "Arrangements instead of combinations",
		Hint:     "You counted arrangements A(n,k), but the task needs combinations C(n,k). Order in a team does not matter, so divide by k!.",
	},

	// Unreadable input
	{
		ID:       "format-decimal",
		Category: CategoryUnparseable,
		Label:    "Not a decimal",
		Hint:     "Enter a decimal number, for example 0.25 or 0,25.",
	},
	{
		ID:       "format-integer",
		Category: CategoryUnparseable,
		Label:    "Not a whole number",
		Hint:     "Enter a whole number, for example 42.",
	},
	{
		ID:       "format-pair",
		Category: CategoryUnparseable,
		Label:    "Not an x,y pair",
		Hint:     "Enter x and y as whole numbers separated by a comma, for example 5,-3.",
	},
	{
		ID:       "format-expression",
		Category: CategoryUnparseable,
		Label:    "Not an expression",
		Hint:     "Write the derivative like 6*x^2 or -10*sin(2*x+3).",
	},
}
