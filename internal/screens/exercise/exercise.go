package exercise

import (
	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathdrill/internal/exercise"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/topic"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// ExerciseScreen serves exercises of one topic and difficulty until the
// learner goes back.
type ExerciseScreen struct {
	topic      topic.Topic
	difficulty topic.Difficulty
	sampler    *problemgen.Sampler
	state      *session.SessionState
	input      components.TextInput
	attempt    *session.Attempt
	errMsg     string
}

var _ screen.Screen = (*ExerciseScreen)(nil)
var _ screen.KeyHintProvider = (*ExerciseScreen)(nil)

// New creates an exercise screen. A nil sampler draws from the
// process-wide source.
func New(t topic.Topic, d topic.Difficulty, state *session.SessionState, sampler *problemgen.Sampler) *ExerciseScreen {
	return &ExerciseScreen{
		topic:      t,
		difficulty: d,
		sampler:    sampler,
		state:      state,
		input:      components.NewTextInput("Type your answer...", 40),
	}
}

func (s *ExerciseScreen) Init() tea.Cmd {
	return tea.Batch(
		s.generate(),
		s.input.Init(),
	)
}

func (s *ExerciseScreen) Title() string {
	return topic.DisplayName(s.topic) + " · " + s.difficulty.Label()
}

func (s *ExerciseScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.showingFeedback() {
		if out := s.state.LastOutcome; out != nil && out.Final {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Next exercise"},
				{Key: "m", Description: "Topics"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{{Key: "any key", Description: "Try again"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExerciseScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if !s.serving() {
		return renderLoading(width)
	}
	if s.showingFeedback() {
		return s.renderFeedback(width)
	}
	return s.renderExerciseView(width)
}

// serving reports whether this screen's exercise is the session's current
// one. A screen left behind on the stack loses it to newer screens.
func (s *ExerciseScreen) serving() bool {
	return s.attempt != nil && s.state.Current == s.attempt
}

func (s *ExerciseScreen) showingFeedback() bool {
	return s.serving() && s.state.Phase == session.PhaseFeedback
}

func (s *ExerciseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exerciseReadyMsg:
		return s.handleReady(msg)

	case nextExerciseMsg:
		return s, s.generate()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.serving() && s.state.Phase == session.PhaseActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExerciseScreen) handleReady(msg exerciseReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		logrus.WithError(msg.Err).Error("exercise generation failed")
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.attempt = s.state.Serve(msg.Exercise)
	s.input.Reset()
	return s, nil
}

func (s *ExerciseScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.serving() {
		return s, nil
	}

	if s.state.Phase == session.PhaseFeedback {
		out := s.state.LastOutcome
		if out != nil && out.Final {
			switch key {
			case "enter", "n":
				return s, func() tea.Msg { return nextExerciseMsg{} }
			case "m":
				return s, func() tea.Msg { return router.PopToRootMsg{} }
			}
			return s, nil
		}
		session.Retry(s.state)
		s.input.Reset()
		return s, nil
	}

	if key == "enter" {
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ExerciseScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	out, err := session.HandleAnswer(s.state, s.input.Value())
	if err != nil {
		logrus.WithError(err).Warn("answer rejected")
		return s, nil
	}
	s.input.Submit(out.Correct)
	return s, nil
}

// generate builds the next exercise off the update loop.
func (s *ExerciseScreen) generate() tea.Cmd {
	t, d, sampler := s.topic, s.difficulty, s.sampler
	return func() tea.Msg {
		ex, err := exercise.New(t, d, exercise.WithSampler(sampler))
		return exerciseReadyMsg{Exercise: ex, Err: err}
	}
}
