package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/difficulty"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/topic"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const banner = `               _   _         _      _ _ _
 _ __ ___   __ _| |_| |__   __| |_ __(_) | |
| '_ ' _ \ / _' | __| '_ \ / _' | '__| | | |
| | | | | | (_| | |_| | | | (_| | |  | | | |
|_| |_| |_|\__,_|\__|_| |_|\__,_|_|  |_|_|_|`

// HomeScreen is the topic menu.
type HomeScreen struct {
	menu  components.Menu
	state *session.SessionState
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. Picking a topic opens the difficulty
// picker; Exit shows the session summary.
func New(state *session.SessionState, sampler *problemgen.Sampler) *HomeScreen {
	var items []components.MenuItem
	for _, t := range topic.All() {
		t := t
		items = append(items, components.MenuItem{
			Label: topic.DisplayName(t),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: difficulty.New(t, state, sampler)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: summary.New(session.BuildSummary(state), true)}
			}
		},
	})

	menu := components.NewMenu(items)
	menu.Numbered = true
	return &HomeScreen{menu: menu, state: state}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Choose a topic"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-6", Description: "Pick"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	if !layout.IsCompactHeight(height) {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(banner))
	}
	sections = append(sections, theme.Subtitle.Render("Pick a topic to practice"))
	sections = append(sections, theme.Card.Render(strings.TrimRight(h.menu.View(), "\n")))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
