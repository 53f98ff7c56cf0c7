package exercise

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\nPreparing an exercise...")
}

func renderError(width int, msg string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Incorrect.Render("Could not create an exercise"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(msg))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Press any key to go back."))
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.String())
}

func (s *ExerciseScreen) renderExerciseView(width int) string {
	var b strings.Builder

	b.WriteString(s.renderInfoBar(width))
	b.WriteString("\n\n")

	b.WriteString(s.renderPrompt(width))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Your answer: " + s.input.View()))

	return b.String()
}

func (s *ExerciseScreen) renderInfoBar(width int) string {
	left := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  Exercise %d", s.state.TotalServed))

	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(
		fmt.Sprintf("Attempt %d of %d  ", s.attempt.Tries()+1, session.MaxAttempts))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *ExerciseScreen) renderPrompt(width int) string {
	cardWidth := width - 8
	if cardWidth > 72 {
		cardWidth = 72
	}
	card := theme.Card.Width(cardWidth).Render(theme.Prompt.Render(s.attempt.Exercise().Prompt()))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (s *ExerciseScreen) renderFeedback(width int) string {
	out := s.state.LastOutcome
	if out == nil {
		return s.renderExerciseView(width)
	}

	var b strings.Builder
	b.WriteString(s.renderPrompt(width))
	b.WriteString("\n\n")

	answer := lipgloss.NewStyle().Foreground(theme.TextDim).Render("You answered: ") +
		theme.Body.Render(s.input.Value()) + " " + s.markFor(out)
	b.WriteString(center(width, answer))
	b.WriteString("\n\n")

	lines := strings.Split(out.Message, "\n")
	for i, line := range lines {
		style := theme.Body
		switch {
		case i == 0 && out.Correct:
			style = theme.Correct
		case i == 0:
			style = theme.Incorrect
		case strings.Contains(line, "Hint:"):
			style = theme.Hint
		}
		b.WriteString(center(width, style.Render(strings.TrimSpace(line))))
		b.WriteString("\n")
	}

	if !out.Final {
		b.WriteString("\n")
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d attempt left. Press any key to try again.", s.attempt.Remaining()))))
	}

	return b.String()
}

func (s *ExerciseScreen) markFor(out *session.Outcome) string {
	if out.Correct {
		return theme.Correct.Render("✓")
	}
	return theme.Incorrect.Render("✗")
}

func center(width int, text string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
