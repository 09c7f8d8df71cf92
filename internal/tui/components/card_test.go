package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	got := LayoutRow(10, 3)
	want := []int{4, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LayoutRow(10, 3) = %v, want %v", got, want)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Corta", "Contenido", 22)
	tallCard := ContentCard("Alta", "1\n2\n3\n4\n5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("padding line %d has no styling: %q", i, lines[i])
		}
	}
}

func TestMetricCardShowsDelta(t *testing.T) {
	theme.SetActive("flexoki-dark")

	card := MetricCard(model.Metric{Label: "Ventas Esperadas Diciembre", Value: "$560.00", Delta: "+7.7%"}, 34)
	for _, want := range []string{"Ventas Esperadas Diciembre", "$560.00", "↑ +7.7%"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}

	down := MetricCard(model.Metric{Label: "Cámaras y Fotografía", Value: "$65", Delta: "-7.1%"}, 34)
	if !strings.Contains(down, "↓ -7.1%") {
		t.Errorf("negative delta should render a down arrow:\n%s", down)
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	metrics := []model.Metric{
		{Label: "Octubre", Value: "$480"},
		{Label: "Noviembre", Value: "$520"},
		{Label: "Nueva Predicción", Value: "$560.00", Delta: "+7.7%"},
	}
	row := MetricCardRow(metrics, 90)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestDeltaColor(t *testing.T) {
	theme.SetActive("flexoki-dark")
	tc := theme.Active

	cases := map[string]lipgloss.Color{
		"+20.0%": tc.Green,
		"-7.1%":  tc.Red,
		"+0.0%":  tc.TextDim,
		"n/a":    tc.TextDim,
		"":       tc.TextDim,
	}
	for delta, want := range cases {
		if got := DeltaColor(delta); got != want {
			t.Errorf("DeltaColor(%q) = %s, want %s", delta, got, want)
		}
	}
}
