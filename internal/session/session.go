package session

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrNoExercise is returned when an answer arrives before any exercise
// was served.
var ErrNoExercise = errors.New("no exercise is being served")

// HandleAnswer submits the learner's answer to the current attempt and
// updates the tally once the attempt closes.
func HandleAnswer(state *SessionState, learnerAnswer string) (*Outcome, error) {
	a := state.Current
	if a == nil {
		return nil, ErrNoExercise
	}

	out, err := a.Submit(learnerAnswer)
	if err != nil {
		return nil, err
	}
	state.LastOutcome = &out
	state.Phase = PhaseFeedback

	logrus.WithFields(logrus.Fields{
		"session":  state.SessionID,
		"exercise": a.Exercise().ID(),
		"attempt":  out.Number,
		"correct":  out.Correct,
		"final":    out.Final,
	}).Debug("answer handled")

	if !out.Final {
		return &out, nil
	}

	state.topicResult(a.Exercise().Topic()).Record(a)
	if a.Solved() {
		state.TotalSolved++
		if a.Tries() == 1 {
			state.SolvedFirstTry++
		}
	} else {
		state.TotalFailed++
	}
	return &out, nil
}

// Retry returns the session to the answer phase after a non-final miss.
func Retry(state *SessionState) {
	if state.Current != nil && !state.Current.Closed() {
		state.Phase = PhaseActive
	}
}
