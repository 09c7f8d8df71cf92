package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/salescast/internal/model"
)

// Output formats accepted by WriteDashboard.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Formats lists every supported output format, table first.
var Formats = []string{FormatTable, FormatMarkdown, FormatCSV, FormatJSON, FormatYAML}

// WriteDashboard writes d to w in one of the machine-readable formats.
// FormatTable is handled by the caller since it needs terminal styling.
func WriteDashboard(w io.Writer, d model.Dashboard, format string) error {
	switch format {
	case FormatMarkdown:
		_, err := fmt.Fprintln(w, dashboardTable(d).RenderMarkdown())
		return err
	case FormatCSV:
		_, err := fmt.Fprintln(w, dashboardTable(d).RenderCSV())
		return err
	case FormatJSON, FormatYAML:
		return Encode(w, d, format)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteCategories writes the category breakdown in a machine-readable format.
func WriteCategories(w io.Writer, cats []model.CategoryMetric, format string) error {
	switch format {
	case FormatMarkdown:
		_, err := fmt.Fprintln(w, categoriesTable(cats).RenderMarkdown())
		return err
	case FormatCSV:
		_, err := fmt.Fprintln(w, categoriesTable(cats).RenderCSV())
		return err
	case FormatJSON, FormatYAML:
		return Encode(w, cats, format)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Encode writes v as indented JSON or YAML.
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func categoriesTable(cats []model.CategoryMetric) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Category", "Slug", "October", "November", "Change"})
	for _, c := range cats {
		t.AppendRow(table.Row{c.Name, c.Slug, FormatCurrency(c.October, 0), FormatCurrency(c.November, 0), c.Metric.Delta})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return t
}

// dashboardTable flattens the dashboard into section/label/value/delta rows.
func dashboardTable(d model.Dashboard) table.Writer {
	t := table.NewWriter()
	t.SetTitle(d.Title)
	t.AppendHeader(table.Row{"Section", "Metric", "Value", "Delta"})

	t.AppendRow(table.Row{"forecast", d.Forecast.Label, d.Forecast.Value, d.Forecast.Delta})
	for _, m := range d.History {
		t.AppendRow(table.Row{"history", m.Label, m.Value, m.Delta})
	}
	t.AppendRow(table.Row{"selected", fmt.Sprintf("%s (%s)", d.Selected.Label, MonthName(d.TargetMonth)), d.Selected.Value, d.Selected.Delta})
	for _, c := range d.Categories {
		t.AppendRow(table.Row{"category", c.Metric.Label, c.Metric.Value, c.Metric.Delta})
	}
	for _, k := range d.KPIs {
		t.AppendRow(table.Row{"kpi", k.Label, k.Value, k.Delta})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return t
}
