// Package components provides reusable TUI widgets for the salescast dashboard.
package components

import (
	"strings"

	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// DeltaColor picks green for increases, red for decreases and the dim text
// color for flat or undefined deltas.
func DeltaColor(delta string) lipgloss.Color {
	t := theme.Active
	switch {
	case delta == "" || delta == "n/a" || strings.HasPrefix(delta, "+0.0"):
		return t.TextDim
	case strings.HasPrefix(delta, "-"):
		return t.Red
	default:
		return t.Green
	}
}

// MetricCard renders a metric card with label, value, and delta.
// outerWidth is the total rendered width including border.
func MetricCard(m model.Metric, outerWidth int) string {
	return AccentMetricCard(m, theme.Active.Border, outerWidth)
}

// AccentMetricCard is MetricCard with a colored border.
func AccentMetricCard(m model.Metric, border lipgloss.Color, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	content := labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
	if m.Delta != "" {
		arrow := ""
		switch DeltaColor(m.Delta) {
		case t.Green:
			arrow = "↑ "
		case t.Red:
			arrow = "↓ "
		}
		deltaStyle := lipgloss.NewStyle().Foreground(DeltaColor(m.Delta)).Background(t.Surface)
		content += "\n" + deltaStyle.Render(arrow+m.Delta)
	}

	return cardStyle.Render(content)
}

// MetricCardRow renders a row of metric cards side by side.
// totalWidth is the full row width; cards sum to exactly that.
func MetricCardRow(metrics []model.Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))

	rendered := make([]string, 0, len(metrics))
	for i, m := range metrics {
		rendered = append(rendered, MetricCard(m, widths[i]))
	}

	return CardRow(rendered)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	return AccentCard(title, body, theme.Active.Border, outerWidth)
}

// AccentCard renders a content card whose border and title use accent.
func AccentCard(title, body string, accent lipgloss.Color, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	titleColor := t.TextMuted
	if accent != t.Border {
		titleColor = accent
	}
	titleStyle := lipgloss.NewStyle().
		Foreground(titleColor).
		Background(t.Surface).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered card strings horizontally, padding shorter
// cards with the surface color so the row has no unstyled gaps.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	t := theme.Active

	tallest := 0
	for _, c := range cards {
		tallest = max(tallest, lipgloss.Height(c))
	}

	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = lipgloss.PlaceVertical(tallest, lipgloss.Top, c,
			lipgloss.WithWhitespaceBackground(t.Background))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
