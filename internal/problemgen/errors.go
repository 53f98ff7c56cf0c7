package problemgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams is returned by a builder when the parameters cannot
	// produce a well-formed problem.
	ErrInvalidParams = errors.New("invalid problem parameters")

	// ErrDegenerateSystem is returned for a 2x2 system whose coefficient
	// matrix has a zero determinant.
	ErrDegenerateSystem = errors.New("coefficient matrix has zero determinant")
)

// UnparseableError reports an answer that cannot be read in the shape the
// problem expects. It is not a mismatch: the answer was never compared.
type UnparseableError struct {
	AnswerType AnswerType
	Input      string
	Err        error
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("cannot read %q as %s answer: %v", e.Input, e.AnswerType, e.Err)
}

func (e *UnparseableError) Unwrap() error { return e.Err }

func invalidParams(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}
