package exercise

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/topic"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// readyScreen returns a screen that has already received its first exercise.
func readyScreen(t *testing.T, tp topic.Topic, d topic.Difficulty) (*ExerciseScreen, *session.SessionState) {
	t.Helper()
	state := session.NewSessionState("test-session")
	s := New(tp, d, state, problemgen.NewSampler(42))
	s.Update(s.generate()())
	if s.errMsg != "" {
		t.Fatalf("unexpected generation error: %s", s.errMsg)
	}
	if !s.serving() {
		t.Fatal("expected screen to be serving an exercise")
	}
	return s, state
}

func answer(s *ExerciseScreen, v string) tea.Cmd {
	s.input.Model.SetValue(v)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	return cmd
}

func TestExerciseReady_ServesExercise(t *testing.T) {
	s, state := readyScreen(t, topic.Sequence, topic.Easy)

	if state.TotalServed != 1 {
		t.Errorf("expected 1 served, got %d", state.TotalServed)
	}
	if state.Phase != session.PhaseActive {
		t.Errorf("expected active phase, got %d", state.Phase)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

func TestCorrectAnswer_FirstTry(t *testing.T) {
	s, state := readyScreen(t, topic.Combinatorics, topic.Medium)

	answer(s, s.attempt.Exercise().Solution())

	if state.Phase != session.PhaseFeedback {
		t.Fatalf("expected feedback phase, got %d", state.Phase)
	}
	out := state.LastOutcome
	if out == nil || !out.Correct || !out.Final {
		t.Fatalf("expected final correct outcome, got %+v", out)
	}
	if out.Message != session.FirstTryMessage {
		t.Errorf("expected first-try message, got %q", out.Message)
	}
	if state.TotalSolved != 1 || state.SolvedFirstTry != 1 {
		t.Errorf("expected 1 solved on first try, got solved=%d first=%d", state.TotalSolved, state.SolvedFirstTry)
	}
}

func TestWrongAnswer_ThenRetry(t *testing.T) {
	s, state := readyScreen(t, topic.Probability, topic.Easy)

	answer(s, "zzz")

	out := state.LastOutcome
	if out == nil || out.Correct || out.Final {
		t.Fatalf("expected non-final miss, got %+v", out)
	}
	if state.Phase != session.PhaseFeedback {
		t.Fatalf("expected feedback phase, got %d", state.Phase)
	}

	// Any key returns to the answer phase with a cleared input.
	s.Update(keyPress('x'))
	if state.Phase != session.PhaseActive {
		t.Errorf("expected active phase after retry, got %d", state.Phase)
	}
	if s.input.Value() != "" {
		t.Errorf("expected input reset, got %q", s.input.Value())
	}

	answer(s, s.attempt.Exercise().Solution())
	if !state.LastOutcome.Correct {
		t.Error("expected second attempt to be correct")
	}
	if state.SolvedFirstTry != 0 || state.TotalSolved != 1 {
		t.Errorf("expected solved on second try, got solved=%d first=%d", state.TotalSolved, state.SolvedFirstTry)
	}
}

func TestTwoMisses_RevealSolution(t *testing.T) {
	s, state := readyScreen(t, topic.LinearSystem, topic.Medium)

	answer(s, "0,0,0")
	s.Update(keyPress('x'))
	answer(s, "0,0,0")

	out := state.LastOutcome
	if out == nil || !out.Final || out.Correct {
		t.Fatalf("expected final miss, got %+v", out)
	}
	if state.TotalFailed != 1 {
		t.Errorf("expected 1 failed, got %d", state.TotalFailed)
	}
	if got := s.View(100, 30); got == "" {
		t.Error("expected feedback view")
	}
}

func TestNextExercise(t *testing.T) {
	s, state := readyScreen(t, topic.Derivative, topic.Hard)
	first := s.attempt

	answer(s, s.attempt.Exercise().Solution())

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command for next exercise")
	}
	msg := cmd()
	if _, ok := msg.(nextExerciseMsg); !ok {
		t.Fatalf("expected nextExerciseMsg, got %T", msg)
	}

	_, cmd = s.Update(msg)
	s.Update(cmd())

	if s.attempt == first {
		t.Error("expected a new attempt")
	}
	if state.TotalServed != 2 {
		t.Errorf("expected 2 served, got %d", state.TotalServed)
	}
	if state.Phase != session.PhaseActive {
		t.Errorf("expected active phase, got %d", state.Phase)
	}
	if s.attempt.Exercise().Topic() != topic.Derivative || s.attempt.Exercise().Difficulty() != topic.Hard {
		t.Error("expected next exercise to keep topic and difficulty")
	}
}

func TestMenuKey_PopsToRoot(t *testing.T) {
	s, _ := readyScreen(t, topic.Sequence, topic.Medium)
	answer(s, s.attempt.Exercise().Solution())

	_, cmd := s.Update(keyPress('m'))
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestGenerationError_AnyKeyPops(t *testing.T) {
	state := session.NewSessionState("test-session")
	s := New(topic.Sequence, topic.Difficulty(9), state, problemgen.NewSampler(1))
	s.Update(s.generate()())

	if s.errMsg == "" {
		t.Fatal("expected error message for invalid difficulty")
	}
	if state.TotalServed != 0 {
		t.Errorf("expected nothing served, got %d", state.TotalServed)
	}

	_, cmd := s.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestStaleScreen_IgnoresKeys(t *testing.T) {
	s, state := readyScreen(t, topic.Sequence, topic.Easy)

	// A newer screen takes over the session.
	other := New(topic.Probability, topic.Easy, state, problemgen.NewSampler(7))
	other.Update(other.generate()())

	s.input.Model.SetValue("1")
	s.Update(specialKey(tea.KeyEnter))
	if state.LastOutcome != nil {
		t.Error("expected stale screen not to submit")
	}
}
