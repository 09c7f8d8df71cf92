package components

import (
	"strings"

	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the selected month indicator on the right.
func RenderStatusBar(width int, monthName string, month int) string {
	t := theme.Active

	base := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := base.Foreground(t.TextMuted)
	keyStyle := base.Foreground(t.Accent).Bold(true)

	left := base.Render(" ") +
		keyStyle.Render("←/→") + hintStyle.Render(" mes  ") +
		keyStyle.Render("?") + hintStyle.Render(" ayuda  ") +
		keyStyle.Render("q") + hintStyle.Render(" salir")

	right := ""
	if month > 0 {
		right = MonthBar(monthName, month, 32) + base.Render(" ")
	}

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + base.Render(strings.Repeat(" ", padding)) + right
}
