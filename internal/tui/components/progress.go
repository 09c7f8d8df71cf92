package components

import (
	"fmt"

	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForShare returns a brighter color for larger shares of the total.
func ColorForShare(share float64) lipgloss.Color {
	t := theme.Active
	switch {
	case share >= 0.3:
		return t.AccentBright
	case share >= 0.2:
		return t.Accent
	case share >= 0.1:
		return t.Cyan
	default:
		return t.TextMuted
	}
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}

// ShareBar renders "label ████░░░░  35%" for a category's share of the
// monthly total.
func ShareBar(label string, share float64, labelW, barWidth int) string {
	t := theme.Active
	share = clampUnit(share)
	color := ColorForShare(share)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(padCell(truncateCell(label, labelW), labelW)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(share) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", share*100))
}

// MonthBar renders a compact indicator of where month sits in the year,
// sized for the status bar.
func MonthBar(label string, month, width int) string {
	t := theme.Active
	pos := clampUnit(float64(month) / 12)

	barW := max(4, width-lipgloss.Width(label)-8)
	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	numStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pos) +
		spaceStyle.Render(" ") +
		numStyle.Render(fmt.Sprintf("%2d/12", month))
}

// truncateCell shortens s to w display columns, marking the cut with "…".
func truncateCell(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	rs := []rune(s)
	for len(rs) > 0 && lipgloss.Width(string(rs))+1 > w {
		rs = rs[:len(rs)-1]
	}
	return string(rs) + "…"
}

func padCell(s string, w int) string {
	for gap := w - lipgloss.Width(s); gap > 0; gap-- {
		s += " "
	}
	return s
}
