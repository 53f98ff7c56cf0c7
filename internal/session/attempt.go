package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathdrill/internal/exercise"
)

// MaxAttempts is the number of submissions allowed per exercise.
const MaxAttempts = 2

// FirstTryMessage is shown when an exercise is solved on the first attempt.
const FirstTryMessage = "Great! You solved it on the first try!"

// ErrAttemptClosed is returned when submitting to a finished attempt.
var ErrAttemptClosed = errors.New("attempt is closed")

// Outcome describes the result of one submission.
type Outcome struct {
	Correct bool
	Number  int  // 1-based submission number
	Final   bool // No further submissions are accepted
	Result  exercise.Result

	// Message is what the learner sees. A non-final miss carries only the
	// exercise hint; the solution is revealed on the final miss.
	Message string
}

// Attempt tracks the submissions for one exercise.
type Attempt struct {
	ex     *exercise.Exercise
	max    int
	tries  int
	solved bool
	closed bool
}

// NewAttempt starts an attempt allowing MaxAttempts submissions.
func NewAttempt(ex *exercise.Exercise) *Attempt {
	return &Attempt{ex: ex, max: MaxAttempts}
}

func (a *Attempt) Exercise() *exercise.Exercise { return a.ex }
func (a *Attempt) Tries() int                   { return a.tries }
func (a *Attempt) Remaining() int               { return a.max - a.tries }
func (a *Attempt) Closed() bool                 { return a.closed }
func (a *Attempt) Solved() bool                 { return a.solved }

// Submit checks raw and advances the attempt.
func (a *Attempt) Submit(raw string) (Outcome, error) {
	if a.closed {
		return Outcome{}, ErrAttemptClosed
	}
	a.tries++
	r := a.ex.Evaluate(raw)
	out := Outcome{Correct: r.Correct, Number: a.tries, Result: r}

	switch {
	case r.Correct:
		a.solved = true
		a.closed = true
		out.Final = true
		out.Message = r.Message
		if a.tries == 1 {
			out.Message = FirstTryMessage
		}
	case a.tries >= a.max:
		a.closed = true
		out.Final = true
		out.Message = r.Message
	default:
		out.Message = fmt.Sprintf("Incorrect.\nHint: %s", a.ex.Hint())
	}
	return out, nil
}
