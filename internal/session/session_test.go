package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathdrill/internal/exercise"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/topic"
)

func combinationsExercise(t *testing.T) *exercise.Exercise {
	t.Helper()
	p, err := problemgen.NewCombinatorics(topic.Hard, problemgen.CombinatoricsParams{N: 10, K: 3})
	if err != nil {
		t.Fatalf("build problem: %v", err)
	}
	return exercise.FromProblem(p)
}

func sequenceExercise(t *testing.T) *exercise.Exercise {
	t.Helper()
	p, err := problemgen.NewSequence(topic.Easy, problemgen.SequenceParams{Start: 3, Step: 4})
	if err != nil {
		t.Fatalf("build problem: %v", err)
	}
	return exercise.FromProblem(p)
}

func TestAttempt_FirstTry(t *testing.T) {
	a := NewAttempt(combinationsExercise(t))
	out, err := a.Submit("120")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Correct || !out.Final {
		t.Errorf("got correct=%v final=%v, want both true", out.Correct, out.Final)
	}
	if out.Message != FirstTryMessage {
		t.Errorf("message = %q, want %q", out.Message, FirstTryMessage)
	}
	if !a.Solved() || a.Tries() != 1 {
		t.Errorf("solved=%v tries=%d", a.Solved(), a.Tries())
	}
}

func TestAttempt_FirstMissWithholdsSolution(t *testing.T) {
	ex := combinationsExercise(t)
	a := NewAttempt(ex)
	out, err := a.Submit("720")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.Correct || out.Final {
		t.Errorf("got correct=%v final=%v, want both false", out.Correct, out.Final)
	}
	if !strings.Contains(out.Message, ex.Hint()) {
		t.Errorf("message %q does not contain the exercise hint", out.Message)
	}
	if strings.Contains(out.Message, "Correct answer") {
		t.Errorf("first miss revealed the solution: %q", out.Message)
	}
	if a.Remaining() != 1 {
		t.Errorf("Remaining = %d, want 1", a.Remaining())
	}
}

func TestAttempt_FinalMissRevealsSolution(t *testing.T) {
	ex := combinationsExercise(t)
	a := NewAttempt(ex)
	if _, err := a.Submit("720"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	out, err := a.Submit("720")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Final || out.Correct {
		t.Errorf("got correct=%v final=%v", out.Correct, out.Final)
	}
	if !strings.Contains(out.Message, "Correct answer: 120") {
		t.Errorf("final message %q does not reveal the solution", out.Message)
	}
	if !strings.Contains(out.Message, "divide by k!") {
		t.Errorf("final message %q lacks the diagnostic hint", out.Message)
	}
}

func TestAttempt_SecondTryCorrect(t *testing.T) {
	a := NewAttempt(sequenceExercise(t))
	if _, err := a.Submit("18"); err != nil {
		t.Fatal(err)
	}
	out, err := a.Submit("19")
	if err != nil {
		t.Fatal(err)
	}
	if !out.Correct || out.Message != exercise.CorrectMessage {
		t.Errorf("got correct=%v message=%q", out.Correct, out.Message)
	}
	if out.Number != 2 {
		t.Errorf("Number = %d, want 2", out.Number)
	}
}

func TestAttempt_ClosedRejectsSubmissions(t *testing.T) {
	a := NewAttempt(sequenceExercise(t))
	if _, err := a.Submit("19"); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Submit("19"); !errors.Is(err, ErrAttemptClosed) {
		t.Errorf("got %v, want ErrAttemptClosed", err)
	}
}

func TestHandleAnswer_NoExercise(t *testing.T) {
	state := NewSessionState("test-session-id")
	if _, err := HandleAnswer(state, "1"); !errors.Is(err, ErrNoExercise) {
		t.Errorf("got %v, want ErrNoExercise", err)
	}
}

func TestHandleAnswer_Tally(t *testing.T) {
	state := NewSessionState("test-session-id")

	// Solved first try.
	state.Serve(sequenceExercise(t))
	if _, err := HandleAnswer(state, "19"); err != nil {
		t.Fatal(err)
	}

	// Solved on the second try.
	state.Serve(combinationsExercise(t))
	out, err := HandleAnswer(state, "720")
	if err != nil {
		t.Fatal(err)
	}
	if state.Phase != PhaseFeedback || out.Final {
		t.Errorf("phase=%v final=%v after first miss", state.Phase, out.Final)
	}
	Retry(state)
	if state.Phase != PhaseActive {
		t.Errorf("phase = %v after Retry, want active", state.Phase)
	}
	if _, err := HandleAnswer(state, "120"); err != nil {
		t.Fatal(err)
	}

	// Failed.
	state.Serve(sequenceExercise(t))
	_, _ = HandleAnswer(state, "1")
	_, _ = HandleAnswer(state, "2")

	if state.TotalServed != 3 {
		t.Errorf("TotalServed = %d, want 3", state.TotalServed)
	}
	if state.TotalSolved != 2 {
		t.Errorf("TotalSolved = %d, want 2", state.TotalSolved)
	}
	if state.SolvedFirstTry != 1 {
		t.Errorf("SolvedFirstTry = %d, want 1", state.SolvedFirstTry)
	}
	if state.TotalFailed != 1 {
		t.Errorf("TotalFailed = %d, want 1", state.TotalFailed)
	}

	seq := state.PerTopicResults[topic.Sequence]
	if seq == nil || seq.Served != 2 || seq.Solved != 1 || seq.Failed != 1 {
		t.Errorf("sequence result = %+v", seq)
	}
}

func TestBuildSummary(t *testing.T) {
	state := NewSessionState("test-session-id")
	state.Serve(combinationsExercise(t))
	_, _ = HandleAnswer(state, "120")
	state.Serve(sequenceExercise(t))
	_, _ = HandleAnswer(state, "0")
	_, _ = HandleAnswer(state, "0")

	sum := BuildSummary(state)
	if sum.TotalServed != 2 || sum.TotalSolved != 1 || sum.TotalFailed != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Accuracy != 0.5 {
		t.Errorf("Accuracy = %f, want 0.5", sum.Accuracy)
	}
	if len(sum.TopicResults) != 2 {
		t.Fatalf("TopicResults = %d, want 2", len(sum.TopicResults))
	}
	if sum.TopicResults[0].Topic != topic.Combinatorics {
		t.Errorf("first topic = %q, want combinatorics", sum.TopicResults[0].Topic)
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	sum := BuildSummary(NewSessionState("empty"))
	if sum.TotalServed != 0 || sum.Accuracy != 0 || len(sum.TopicResults) != 0 {
		t.Errorf("summary = %+v", sum)
	}
}
