package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Full dashboard: forecast, history, categories and KPIs",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(cli.Formats...); err != nil {
		return err
	}
	cfg := loadSettings()
	month, err := resolveMonth(cfg)
	if err != nil {
		return err
	}

	engine := forecast.Default()
	d, err := pipeline.BuildDashboard(engine, month)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagFormat != cli.FormatTable {
		return cli.WriteDashboard(out, d, flagFormat)
	}
	renderSummary(out, engine, d)
	return nil
}

func renderSummary(out io.Writer, engine *forecast.Engine, d model.Dashboard) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(d.Title))
	fmt.Fprintln(out)

	rows := [][]string{{d.Forecast.Label, d.Forecast.Value, d.Forecast.Delta}, {"---"}}
	for _, m := range d.History {
		rows = append(rows, []string{m.Label, m.Value, ""})
	}
	rows = append(rows, []string{"---"},
		[]string{fmt.Sprintf("%s (%s)", d.Selected.Label, cli.MonthName(d.TargetMonth)), d.Selected.Value, d.Selected.Delta})

	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "Predicción",
		Headers: []string{"Métrica", "Valor", "Cambio"},
		Rows:    rows,
	}))
	fmt.Fprintln(out)

	fmt.Fprint(out, categoryTable(d.Categories))
	fmt.Fprintln(out)

	kpiRows := make([][]string, 0, len(d.KPIs))
	for _, k := range d.KPIs {
		kpiRows = append(kpiRows, []string{k.Label, k.Value, k.Delta})
	}
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "Indicadores",
		Headers: []string{"KPI", "Valor", "Cambio"},
		Rows:    kpiRows,
	}))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  "+seriesLine(d.Chart.History))
	fmt.Fprintln(out, "  "+seriesLine(d.Chart.Forecast))

	year := make([]float64, 0, forecast.MaxPeriod)
	for m := forecast.MinPeriod; m <= forecast.MaxPeriod; m++ {
		year = append(year, engine.Predict(m))
	}
	line := engine.Line()
	fmt.Fprintf(out, "  %-11s %s  ventas = %.2f × mes + %.2f\n", "Año", cli.RenderSparkline(year), line.Slope, line.Intercept)
	fmt.Fprintln(out)
}

func seriesLine(s model.Series) string {
	periods := make([]int, len(s.Points))
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		periods[i] = p.Period
		values[i] = p.Value
	}
	return cli.RenderSeriesLine(s.Name, periods, values)
}

func categoryTable(cats []model.CategoryMetric) string {
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{c.Name, cli.FormatCurrency(c.October, 0), c.Metric.Value, c.Metric.Delta})
	}
	return cli.RenderTable(cli.Table{
		Title:   "Categorías",
		Headers: []string{"Categoría", "Octubre", "Noviembre", "Cambio"},
		Rows:    rows,
	})
}
