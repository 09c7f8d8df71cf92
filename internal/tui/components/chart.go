package components

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		buf.WriteRune(sparkBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// BarChart renders vertical bars with a y axis and per-bar labels.
// Falls back to a sparkline when the area is too small for axes.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	tickStep := fitTickStep(maxVal, max(2, height/2))
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(1, int(math.Round(ceiling/tickStep)))

	rowsPerTick := max(2, height/numIntervals)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(4, len(formatChartLabel(ceiling))+1)
	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	chartW := max(5, width-yLabelW-1)
	n := len(values)

	gap := 1
	barW := chartW
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	}
	barW = min(max(barW, 2), 8)
	axisLen := n*barW + max(0, n-1)*gap

	eighths := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		barColor := color
		if float64(row)/float64(chartH) > 0.8 {
			barColor = t.AccentBright
		}
		barStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(max(idx, 1), 8)
				b.WriteString(barStyle.Render(strings.Repeat(string(eighths[idx]), barW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		positions := make([]int, n)
		for i := range positions {
			positions[i] = i * (barW + gap)
		}
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(placeLabels(labels, positions, axisLen, barW)))
	}

	return b.String()
}

// LineSeries is one named series drawn by LineChart.
type LineSeries struct {
	Name   string
	Points []model.Point
	Color  lipgloss.Color
	Dotted bool
}

type plotCell struct {
	r     rune
	color lipgloss.Color
}

// LineChart plots one or more series on a shared period/value grid.
// Points are marked with ● and joined by interpolated dots. The output is
// height plot rows followed by the x axis, period labels and a legend.
func LineChart(series []LineSeries, xLabel func(period int) string, width, height int) string {
	minX, maxX := math.MaxInt, math.MinInt
	minY, maxY := math.Inf(1), math.Inf(-1)
	periods := map[int]bool{}
	for _, s := range series {
		for _, p := range s.Points {
			minX, maxX = min(minX, p.Period), max(maxX, p.Period)
			minY, maxY = min(minY, p.Value), max(maxY, p.Value)
			periods[p.Period] = true
		}
	}
	if len(periods) == 0 {
		return ""
	}
	height = max(height, 3)
	t := theme.Active

	step := fitTickStep(math.Max(maxY-minY, math.Abs(maxY)/10), max(2, height/2))
	lo := math.Floor(minY/step) * step
	hi := math.Ceil(maxY/step) * step
	if hi == lo {
		hi = lo + step
	}

	yLabelW := max(4, len(formatChartLabel(hi))+1, len(formatChartLabel(lo))+1)
	plotW := max(10, width-yLabelW-1)

	col := func(x int) int {
		if maxX == minX {
			return plotW / 2
		}
		return int(math.Round(float64(x-minX) / float64(maxX-minX) * float64(plotW-1)))
	}
	row := func(y float64) int {
		r := int(math.Round((hi - y) / (hi - lo) * float64(height-1)))
		return min(max(r, 0), height-1)
	}

	grid := make([][]plotCell, height)
	for i := range grid {
		grid[i] = make([]plotCell, plotW)
	}

	for _, s := range series {
		trail := '•'
		if s.Dotted {
			trail = '·'
		}
		for i := 1; i < len(s.Points); i++ {
			a, z := s.Points[i-1], s.Points[i]
			c0, c1 := col(a.Period), col(z.Period)
			for c := c0 + 1; c < c1; c++ {
				frac := float64(c-c0) / float64(c1-c0)
				grid[row(a.Value+frac*(z.Value-a.Value))][c] = plotCell{trail, s.Color}
			}
		}
		for _, p := range s.Points {
			grid[row(p.Value)][col(p.Period)] = plotCell{'●', s.Color}
		}
	}

	tickLabels := map[int]string{}
	for v := lo; v <= hi+step/2; v += step {
		r := row(v)
		if _, taken := tickLabels[r]; !taken {
			tickLabels[r] = formatChartLabel(v)
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for r, cells := range grid {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[r])))
		b.WriteString(axisStyle.Render("┤"))
		b.WriteString(renderCells(cells, blank))
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW) + "└" + strings.Repeat("─", plotW)))
	b.WriteString("\n")

	sorted := make([]int, 0, len(periods))
	for p := range periods {
		sorted = append(sorted, p)
	}
	sort.Ints(sorted)
	labels := make([]string, len(sorted))
	positions := make([]int, len(sorted))
	for i, p := range sorted {
		labels[i] = xLabel(p)
		positions[i] = col(p)
	}
	b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(placeLabels(labels, positions, plotW, 0)))
	b.WriteString("\n")

	b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
	for i, s := range series {
		if i > 0 {
			b.WriteString(blank.Render("   "))
		}
		b.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("●"))
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(" " + s.Name))
	}

	return b.String()
}

// renderCells styles a plot row, batching runs of the same color.
func renderCells(cells []plotCell, blank lipgloss.Style) string {
	var out, run strings.Builder
	var runColor lipgloss.Color
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runColor == "" {
			out.WriteString(blank.Render(run.String()))
		} else {
			out.WriteString(blank.Foreground(runColor).Render(run.String()))
		}
		run.Reset()
	}
	for _, c := range cells {
		if c.color != runColor {
			flush()
			runColor = c.color
		}
		if c.r == 0 {
			run.WriteByte(' ')
		} else {
			run.WriteRune(c.r)
		}
	}
	flush()
	return out.String()
}

// placeLabels writes labels into a line of the given width at the given
// column offsets, centering each on a slot of slotW columns and skipping any
// label that would collide with the previous one.
func placeLabels(labels []string, positions []int, width, slotW int) string {
	line := []rune(strings.Repeat(" ", width))
	lastEnd := -1
	for i, lbl := range labels {
		rs := []rune(lbl)
		pos := positions[i]
		if slotW > len(rs) {
			pos += (slotW - len(rs)) / 2
		} else if slotW == 0 {
			pos -= len(rs) / 2
		}
		pos = min(max(pos, 0), max(0, width-len(rs)))
		if pos <= lastEnd {
			continue
		}
		end := min(pos+len(rs), width)
		copy(line[pos:end], rs[:end-pos])
		lastEnd = end
	}
	return strings.TrimRight(string(line), " ")
}

// fitTickStep picks a nice tick interval for span and doubles it until at
// most maxIntervals ticks are needed.
func fitTickStep(span float64, maxIntervals int) float64 {
	step := chartTickStep(span)
	for math.Ceil(span/step) > float64(maxIntervals) {
		step *= 2
	}
	return step
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e4:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1 || v == 0:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
