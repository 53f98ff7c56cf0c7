package session

import (
	"time"

	"github.com/abhisek/mathdrill/internal/exercise"
	"github.com/abhisek/mathdrill/internal/topic"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseActive   SessionPhase = iota // Waiting for an answer
	PhaseFeedback                     // Showing answer feedback
	PhaseSummary                      // Showing summary screen
)

// SessionState tracks the runtime state of one practice session. Nothing
// in it outlives the process.
type SessionState struct {
	// SessionID is the UUID for this session.
	SessionID string

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed tracks total elapsed time.
	Elapsed time.Duration

	// Phase is the current session phase.
	Phase SessionPhase

	// Current is the attempt being worked on (nil between exercises).
	Current *Attempt

	// LastOutcome is the most recent submission result.
	LastOutcome *Outcome

	// TotalServed is the count of exercises served so far.
	TotalServed int

	// TotalSolved counts exercises solved within MaxAttempts.
	TotalSolved int

	// SolvedFirstTry counts exercises solved on the first submission.
	SolvedFirstTry int

	// TotalFailed counts exercises whose attempts ran out.
	TotalFailed int

	// PerTopicResults tracks per-topic stats for the summary screen.
	PerTopicResults map[topic.Topic]*TopicResult

	// order remembers the first-served order of topics for the summary.
	order []topic.Topic
}

// NewSessionState creates a new session state with initialized maps.
func NewSessionState(sessionID string) *SessionState {
	return &SessionState{
		SessionID:       sessionID,
		StartTime:       time.Now(),
		Phase:           PhaseActive,
		PerTopicResults: make(map[topic.Topic]*TopicResult),
	}
}

// Serve makes ex the current exercise.
func (s *SessionState) Serve(ex *exercise.Exercise) *Attempt {
	s.Current = NewAttempt(ex)
	s.LastOutcome = nil
	s.Phase = PhaseActive
	s.TotalServed++
	s.topicResult(ex.Topic()).Served++
	return s.Current
}

func (s *SessionState) topicResult(t topic.Topic) *TopicResult {
	tr, ok := s.PerTopicResults[t]
	if !ok {
		tr = &TopicResult{Topic: t}
		s.PerTopicResults[t] = tr
		s.order = append(s.order, t)
	}
	return tr
}
