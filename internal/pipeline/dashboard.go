// Package pipeline turns the forecast engine and the embedded dataset into
// the presentation contract every front end renders.
package pipeline

import (
	"fmt"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/dataset"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
)

// DashboardTitle is the heading shown above every dashboard rendering.
const DashboardTitle = "Dashboard de Predicción de Ventas"

// Chart series names.
const (
	SeriesHistory  = "Histórico"
	SeriesForecast = "Predicción"
)

// Forecast predicts month and compares it against the last observation.
func Forecast(e *forecast.Engine, month int) (model.Forecast, error) {
	if err := forecast.ValidatePeriod(month); err != nil {
		return model.Forecast{}, err
	}
	value := e.Predict(month)
	baseline := e.Last().Value
	pct, ok := forecast.PercentChange(value, baseline)
	return model.Forecast{
		Month:     month,
		MonthName: cli.MonthName(month),
		Value:     value,
		Baseline:  baseline,
		ChangePct: pct,
		HasChange: ok,
	}, nil
}

// SelectMonth recomputes the "Nueva Predicción" metric for a newly selected
// month. This is the only work triggered by the month control.
func SelectMonth(e *forecast.Engine, month int) (model.Metric, error) {
	f, err := Forecast(e, month)
	if err != nil {
		return model.Metric{}, err
	}
	return model.Metric{
		Label: "Nueva Predicción",
		Value: cli.FormatCurrency(f.Value, 2),
		Delta: cli.FormatDeltaPercent(f.ChangePct, f.HasChange),
	}, nil
}

// BuildDashboard assembles every dashboard region for the selected month.
// The headline forecast always targets dataset.DefaultMonth.
func BuildDashboard(e *forecast.Engine, month int) (model.Dashboard, error) {
	selected, err := SelectMonth(e, month)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("building dashboard: %w", err)
	}

	headline, err := Forecast(e, dataset.DefaultMonth)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("building dashboard: %w", err)
	}

	obs := e.Observations()
	history := make([]model.Metric, 0, len(obs))
	for _, o := range obs {
		history = append(history, model.Metric{
			Label: cli.MonthName(o.Period),
			Value: cli.FormatCurrency(o.Value, 0),
		})
	}

	line := e.Line()
	return model.Dashboard{
		Title:       DashboardTitle,
		TargetMonth: month,
		Slope:       line.Slope,
		Intercept:   line.Intercept,
		Forecast: model.Metric{
			Label: "Ventas Esperadas " + headline.MonthName,
			Value: cli.FormatCurrency(headline.Value, 2),
			Delta: cli.FormatDeltaPercent(headline.ChangePct, headline.HasChange),
		},
		History:    history,
		Selected:   selected,
		Chart:      TrendChart(e, month),
		Categories: CategoryMetrics(dataset.Categories()),
		KPIs:       KPIMetrics(dataset.KPIs()),
	}, nil
}

// TrendChart builds the history and forecast series. The forecast series
// starts at the last observation and ends at month when month lies after
// it, otherwise at dataset.DefaultMonth.
func TrendChart(e *forecast.Engine, month int) model.TrendChart {
	obs := e.Observations()
	hist := model.Series{Name: SeriesHistory, Points: make([]model.Point, 0, len(obs))}
	for _, o := range obs {
		hist.Points = append(hist.Points, model.Point{Period: o.Period, Value: o.Value})
	}

	last := e.Last()
	target := month
	if target <= last.Period {
		target = dataset.DefaultMonth
	}

	fc := model.Series{Name: SeriesForecast, Points: []model.Point{
		{Period: last.Period, Value: last.Value},
	}}
	if target > last.Period {
		fc.Points = append(fc.Points, model.Point{Period: target, Value: e.Predict(target)})
	}

	return model.TrendChart{History: hist, Forecast: fc}
}

// KPIMetrics converts the static KPIs into renderable metrics.
func KPIMetrics(kpis []model.KPI) []model.Metric {
	out := make([]model.Metric, len(kpis))
	for i, k := range kpis {
		out[i] = model.Metric{Label: k.Label, Value: k.Value, Delta: k.Delta}
	}
	return out
}
