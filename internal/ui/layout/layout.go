// Package layout draws the frame shared by every screen: a header bar with
// the session score, the active screen's content and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Smallest terminal the frame is drawn in.
const (
	MinWidth  = 70
	MinHeight = 20
)

// bannerRows is the content height below which screens drop their banner.
const bannerRows = 20

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

var (
	bar = lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	solvedStyle = lipgloss.NewStyle().Foreground(theme.Success)
	dimStyle    = lipgloss.NewStyle().Foreground(theme.TextDim)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
)

// IsCompactHeight reports whether a content area this short should skip
// decorative rows.
func IsCompactHeight(height int) bool {
	return height < bannerRows
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage replaces the whole frame while the terminal is
// below MinWidth x MinHeight.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		titleStyle.Render(fmt.Sprintf(
			"Terminal too small for the drill.\nNeed at least %d x %d, have %d x %d",
			MinWidth, MinHeight, width, height,
		)))
}

// RenderHeader shows the app name, the screen title centered, and the
// score as solved / served exercises.
func RenderHeader(title string, solved, served int, width int) string {
	brand := brandStyle.Render("  mathdrill")
	score := solvedStyle.Render(fmt.Sprintf("✓ %d", solved)) + dimStyle.Render(fmt.Sprintf(" / %d", served))
	return bar.Width(width).Render(spread(width-4, brand, titleStyle.Render(title), score))
}

// RenderFooter lists the key hints of the active screen.
func RenderFooter(hints []KeyHint, width int) string {
	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key) + " " + dimStyle.Render(h.Description))
	}
	return bar.Width(width).Render(b.String())
}

// RenderFrame stacks header, content and footer; the content is padded to
// whatever height the bars leave over.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// spread lays out left, middle and right across width with the middle
// segment centered. Gaps never collapse below one space.
func spread(width int, left, middle, right string) string {
	lw, mw, rw := lipgloss.Width(left), lipgloss.Width(middle), lipgloss.Width(right)
	leftGap := max((width-mw)/2-lw, 1)
	rightGap := max(width-lw-leftGap-mw-rw, 1)
	return left + strings.Repeat(" ", leftGap) + middle + strings.Repeat(" ", rightGap) + right
}
