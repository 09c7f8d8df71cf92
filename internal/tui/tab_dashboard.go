package tui

import (
	"strings"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/tui/components"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	d := a.dash

	var b strings.Builder

	// Headline forecast next to the observed months
	widths := components.LayoutRow(cw, 1+len(d.History))
	cards := []string{components.AccentMetricCard(d.Forecast, t.Green, widths[0])}
	for i, m := range d.History {
		cards = append(cards, components.MetricCard(m, widths[i+1]))
	}
	b.WriteString(components.CardRow(cards))
	b.WriteString("\n")

	// Month selector and the prediction it drives
	selW := components.LayoutRow(cw, 3)
	selectorW := selW[0] + selW[1]
	selector := components.ContentCard("Seleccionar Mes para Predicción",
		renderMonthStrip(a.month, components.CardInnerWidth(selectorW)), selectorW)
	b.WriteString(components.CardRow([]string{
		selector,
		components.AccentMetricCard(d.Selected, t.Accent, selW[2]),
	}))
	b.WriteString("\n")

	chartH := 8
	if a.isCompactLayout() {
		chartH = 6
	}
	chart := components.LineChart(chartSeries(d.Chart), cli.MonthAbbrev, components.CardInnerWidth(cw), chartH)
	b.WriteString(components.ContentCard("Tendencia de Ventas", chart, cw))
	b.WriteString("\n")

	b.WriteString(components.MetricCardRow(d.KPIs, cw))

	return b.String()
}

// chartSeries maps the trend chart onto colored plot series.
func chartSeries(c model.TrendChart) []components.LineSeries {
	t := theme.Active
	return []components.LineSeries{
		{Name: c.History.Name, Points: c.History.Points, Color: t.Blue},
		{Name: c.Forecast.Name, Points: c.Forecast.Points, Color: t.Green, Dotted: true},
	}
}

// renderMonthStrip shows all twelve months with the selected one
// highlighted, or a compact "◀ Mes ▶" control when space is short.
func renderMonthStrip(month, width int) string {
	t := theme.Active

	base := lipgloss.NewStyle().Background(t.Surface)
	dim := base.Foreground(t.TextDim)
	normal := base.Foreground(t.TextMuted)
	selected := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.AccentBright).Bold(true)

	hint := dim.Render("←/→ o 1-9 0 - = para cambiar")

	const cell = 4 // " Abr"
	if width < cell*(forecast.MaxPeriod-forecast.MinPeriod+1) {
		return dim.Render("◀ ") + selected.Render(" "+cli.MonthName(month)+" ") + dim.Render(" ▶") + "\n" + hint
	}

	var strip strings.Builder
	for m := forecast.MinPeriod; m <= forecast.MaxPeriod; m++ {
		label := " " + cli.MonthAbbrev(m)
		if m == month {
			strip.WriteString(selected.Render(label))
		} else {
			strip.WriteString(normal.Render(label))
		}
	}
	return strip.String() + "\n" + hint
}
