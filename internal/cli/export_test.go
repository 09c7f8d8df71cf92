package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/theirongolddev/salescast/internal/model"
)

func sampleDashboard() model.Dashboard {
	return model.Dashboard{
		Title:       "Ventas",
		TargetMonth: 12,
		Forecast:    model.Metric{Label: "Ventas Esperadas Diciembre", Value: "$560.00", Delta: "+7.7%"},
		History: []model.Metric{
			{Label: "Octubre", Value: "$480"},
			{Label: "Noviembre", Value: "$520"},
		},
		Selected: model.Metric{Label: "Nueva Predicción", Value: "$560.00", Delta: "+7.7%"},
		Categories: []model.CategoryMetric{
			{Name: "Electrónicos", Metric: model.Metric{Label: "Electrónicos", Value: "$180", Delta: "+20.0%"}},
		},
	}
}

func TestWriteDashboardMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDashboard(&buf, sampleDashboard(), FormatMarkdown); err != nil {
		t.Fatalf("WriteDashboard: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"| Section |", "Ventas Esperadas Diciembre", "$560.00", "Nueva Predicción (Diciembre)", "+20.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDashboardCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDashboard(&buf, sampleDashboard(), FormatCSV); err != nil {
		t.Fatalf("WriteDashboard: %v", err)
	}
	if !strings.Contains(buf.String(), "history,Octubre,$480,") {
		t.Fatalf("csv output missing history row:\n%s", buf.String())
	}
}

func TestWriteDashboardYAMLAndJSON(t *testing.T) {
	var y bytes.Buffer
	if err := WriteDashboard(&y, sampleDashboard(), FormatYAML); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(y.String(), "target_month: 12") {
		t.Fatalf("yaml output missing target_month:\n%s", y.String())
	}

	var j bytes.Buffer
	if err := WriteDashboard(&j, sampleDashboard(), FormatJSON); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(j.String(), `"target_month": 12`) {
		t.Fatalf("json output missing target_month:\n%s", j.String())
	}
}

func TestWriteDashboardUnknownFormat(t *testing.T) {
	if err := WriteDashboard(&bytes.Buffer{}, sampleDashboard(), "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestRenderTableAlignsAccentedLabels(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Categoría", "Valor"},
		Rows: [][]string{
			{"Electrónicos", "$180"},
			{"TV", "$130"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("table has %d lines, want 6:\n%s", len(lines), out)
	}
}

func TestWriteCategories(t *testing.T) {
	cats := []model.CategoryMetric{
		{Name: "Cámaras y Fotografía", Slug: "camaras-y-fotografia", October: 70, November: 65,
			Metric: model.Metric{Label: "Cámaras y Fotografía", Value: "$65", Delta: "-7.1%"}},
	}

	var md bytes.Buffer
	if err := WriteCategories(&md, cats, FormatMarkdown); err != nil {
		t.Fatalf("markdown: %v", err)
	}
	for _, want := range []string{"| Category", "Cámaras y Fotografía", "camaras-y-fotografia", "$70", "-7.1%"} {
		if !strings.Contains(md.String(), want) {
			t.Errorf("markdown missing %q:\n%s", want, md.String())
		}
	}

	var js bytes.Buffer
	if err := WriteCategories(&js, cats, FormatJSON); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(js.String(), `"slug": "camaras-y-fotografia"`) {
		t.Errorf("json missing slug:\n%s", js.String())
	}

	if err := WriteCategories(&js, cats, FormatTable); err == nil {
		t.Error("table format should be rejected by WriteCategories")
	}
}
