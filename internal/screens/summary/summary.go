package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/topic"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.SessionSummary
	quit    bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. When quitOnExit is set, Enter ends the
// program instead of returning to the previous screen.
func New(summary *session.SessionSummary, quitOnExit bool) *SummaryScreen {
	return &SummaryScreen{summary: summary, quit: quitOnExit}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.quit {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Quit"},
			{Key: "Esc", Description: "Keep practicing"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			if s.quit {
				return s, tea.Quit
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(centered(width, theme.Title.Render("Thanks for practicing!")))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs))))
	b.WriteString("\n\n")

	if sum.TotalServed == 0 {
		b.WriteString(centered(width, theme.Body.Render("No exercises attempted this time.")))
		return b.String()
	}

	stats := fmt.Sprintf("Exercises: %d     Solved: %d     First try: %d     Missed: %d",
		sum.TotalServed, sum.TotalSolved, sum.SolvedFirstTry, sum.TotalFailed)
	b.WriteString(centered(width, theme.Body.Render(stats)))
	b.WriteString("\n\n")

	barWidth := min(width-8, 50)
	bar := components.NewProgressBar("Accuracy", sum.Accuracy, true, barWidth)
	b.WriteString(centered(width, bar.View()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render("Topics")))
	b.WriteString("\n")
	b.WriteString(centered(width, divider))
	b.WriteString("\n\n")

	for _, tr := range sum.TopicResults {
		if tr.Served == 0 {
			continue
		}
		line := fmt.Sprintf("%-22s %d/%d solved   %d first try",
			topic.DisplayName(tr.Topic), tr.Solved, tr.Served, tr.SolvedFirstTry)

		style := theme.Body
		if tr.Solved == tr.Served {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(centered(width, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
