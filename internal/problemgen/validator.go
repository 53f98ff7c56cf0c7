package problemgen

import "fmt"

// Validator checks a generated problem for internal consistency.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "math-check", "answer-format".
	Name() string

	// Validate returns nil if the problem passes, or a ValidationError
	// describing the first inconsistency found.
	Validate(p *Problem) *ValidationError
}

// ValidationError describes why a problem failed validation. Generation is
// deterministic, so a failure points at a generator bug rather than bad luck.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
