package difficulty

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/exercise"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/topic"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// DifficultyScreen picks the difficulty tier for a topic.
type DifficultyScreen struct {
	topic topic.Topic
	menu  components.Menu
}

var _ screen.Screen = (*DifficultyScreen)(nil)
var _ screen.KeyHintProvider = (*DifficultyScreen)(nil)

// New creates the picker for t.
func New(t topic.Topic, state *session.SessionState, sampler *problemgen.Sampler) *DifficultyScreen {
	title := cases.Title(language.English)
	var items []components.MenuItem
	for _, d := range topic.Difficulties() {
		d := d
		items = append(items, components.MenuItem{
			Label: title.String(d.Label()),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: exercise.New(t, d, state, sampler)}
				}
			},
		})
	}
	menu := components.NewMenu(items)
	menu.Numbered = true
	return &DifficultyScreen{topic: t, menu: menu}
}

func (s *DifficultyScreen) Init() tea.Cmd {
	return nil
}

func (s *DifficultyScreen) Title() string {
	return topic.DisplayName(s.topic)
}

func (s *DifficultyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-3", Description: "Pick"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DifficultyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DifficultyScreen) View(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render("Choose a difficulty (1-3)"),
		theme.Card.Render(strings.TrimRight(s.menu.View(), "\n")),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
