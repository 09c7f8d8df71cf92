package tui

import (
	"strings"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"
	"github.com/theirongolddev/salescast/internal/tui/components"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active
	cats := a.dash.Categories

	perRow := len(cats)
	if a.isCompactLayout() {
		perRow = 3
	}

	var b strings.Builder
	for start := 0; start < len(cats); start += perRow {
		end := min(start+perRow, len(cats))
		metrics := make([]model.Metric, 0, end-start)
		for _, c := range cats[start:end] {
			metrics = append(metrics, c.Metric)
		}
		b.WriteString(components.MetricCardRow(metrics, cw))
		b.WriteString("\n")
	}

	halves := components.LayoutRow(cw, 2)
	inner := components.CardInnerWidth(halves[0])

	// November share of the total, one bar per category
	shares := pipeline.CategoryShares(cats)
	labelW := min(22, inner/2)
	barW := max(6, inner-labelW-6)
	var shareBody strings.Builder
	for i, c := range cats {
		if i > 0 {
			shareBody.WriteString("\n")
		}
		shareBody.WriteString(components.ShareBar(c.Name, shares[i], labelW, barW))
	}

	// October to November change per category
	maxAbs := pipeline.MaxAbsChange(cats)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	deltaW := 7
	changeBarW := max(4, components.CardInnerWidth(halves[1])-labelW-deltaW-2)
	var changeBody strings.Builder
	for i, c := range cats {
		if i > 0 {
			changeBody.WriteString("\n")
		}
		deltaStyle := lipgloss.NewStyle().Foreground(components.DeltaColor(c.Metric.Delta)).Background(t.Surface)
		changeBody.WriteString(nameStyle.Render(fitLabel(c.Name, labelW)))
		changeBody.WriteString(deltaStyle.Render(padLeftTo(c.Metric.Delta, deltaW)))
		changeBody.WriteString(nameStyle.Render("  "))
		changeBody.WriteString(cli.RenderChangeBar(c.ChangePct, maxAbs, changeBarW))
	}

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Participación en Noviembre", shareBody.String(), halves[0]),
		components.ContentCard("Cambio Octubre → Noviembre", changeBody.String(), halves[1]),
	}))
	b.WriteString("\n")

	values := make([]float64, len(cats))
	labels := make([]string, len(cats))
	for i, c := range cats {
		values[i] = c.November
		labels[i] = shortLabel(c.Name)
	}
	bars := components.BarChart(values, labels, t.Accent, components.CardInnerWidth(cw), 6)
	b.WriteString(components.ContentCard("Ventas de Noviembre por Categoría", bars, cw))

	return b.String()
}

// shortLabel returns the first word of name, cut to six runes.
func shortLabel(name string) string {
	word, _, _ := strings.Cut(name, " ")
	if r := []rune(word); len(r) > 6 {
		return string(r[:6])
	}
	return word
}

// fitLabel truncates s with "…" or pads it to exactly w columns.
func fitLabel(s string, w int) string {
	if lipgloss.Width(s) > w {
		r := []rune(s)
		s = string(r[:max(0, w-1)]) + "…"
	}
	if gap := w - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

func padLeftTo(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
