package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/tui/theme"
)

func monthLabel(p int) string {
	return map[int]string{10: "Oct", 11: "Nov", 12: "Dic"}[p]
}

func TestLineChartLayout(t *testing.T) {
	theme.SetActive("flexoki-dark")

	series := []LineSeries{
		{Name: "Histórico", Points: []model.Point{{Period: 10, Value: 480}, {Period: 11, Value: 520}}, Color: theme.Active.Blue},
		{Name: "Predicción", Points: []model.Point{{Period: 11, Value: 520}, {Period: 12, Value: 560}}, Color: theme.Active.Green, Dotted: true},
	}
	out := LineChart(series, monthLabel, 60, 8)

	if got := len(strings.Split(out, "\n")); got != 8+3 {
		t.Fatalf("lines = %d, want 11", got)
	}
	for _, want := range []string{"Histórico", "Predicción", "Oct", "Nov", "Dic", "560", "480"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q", want)
		}
	}
	// three distinct data points plus two legend markers
	if n := strings.Count(out, "●"); n != 5 {
		t.Errorf("marker count = %d, want 5", n)
	}
	if !strings.Contains(out, "·") {
		t.Error("dotted series should draw · between points")
	}
}

func TestLineChartEmpty(t *testing.T) {
	if out := LineChart(nil, monthLabel, 60, 8); out != "" {
		t.Errorf("empty chart = %q, want empty", out)
	}
}

func TestBarChartFallsBackToSparkline(t *testing.T) {
	theme.SetActive("flexoki-dark")
	values := []float64{180, 130, 95}

	if got, want := BarChart(values, nil, theme.Active.Accent, 10, 2), Sparkline(values, theme.Active.Accent); got != want {
		t.Errorf("small BarChart should equal Sparkline")
	}
}

func TestBarChartAccentedLabels(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := BarChart([]float64{180, 65}, []string{"Elec", "Cám"}, theme.Active.Accent, 40, 6)
	for _, want := range []string{"Elec", "Cám", "└"} {
		if !strings.Contains(out, want) {
			t.Errorf("bar chart missing %q", want)
		}
	}
}

func TestPlaceLabels(t *testing.T) {
	if got := placeLabels([]string{"Oct", "Nov"}, []int{0, 10}, 20, 0); got != "Oct      Nov" {
		t.Errorf("placeLabels = %q", got)
	}
	if got := placeLabels([]string{"Octubre", "Noviembre"}, []int{0, 3}, 20, 0); got != "Octubre" {
		t.Errorf("colliding label should be skipped, got %q", got)
	}
}

func TestTickSteps(t *testing.T) {
	if got := chartTickStep(80); got != 20 {
		t.Errorf("chartTickStep(80) = %v, want 20", got)
	}
	if got := fitTickStep(80, 2); got != 40 {
		t.Errorf("fitTickStep(80, 2) = %v, want 40", got)
	}
	if got := formatChartLabel(25000); got != "25k" {
		t.Errorf("formatChartLabel(25000) = %q", got)
	}
}
