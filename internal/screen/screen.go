// Package screen holds the contract between the app model and the screens
// it routes between (home, difficulty, exercise, summary).
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// Screen is one page of the drill. The app model owns the header, footer
// and session score; a screen only draws the area between them.
type Screen interface {
	Init() tea.Cmd

	// Update returns the screen that should stay active, which may be a
	// new value when the screen keeps its state immutably.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the content area of the given size.
	View(width, height int) string

	// Title is shown centered in the header bar.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints, for
// example the exercise screen's "Enter Submit   Esc Back" bar.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
