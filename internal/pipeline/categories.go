package pipeline

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
)

// ErrUnknownCategory is returned when a category slug matches nothing.
var ErrUnknownCategory = errors.New("unknown category")

// CategoryMetrics computes the October to November change per category,
// preserving input order.
func CategoryMetrics(snaps []model.CategorySnapshot) []model.CategoryMetric {
	out := make([]model.CategoryMetric, 0, len(snaps))
	for _, s := range snaps {
		pct, ok := forecast.PercentChange(s.November, s.October)
		out = append(out, model.CategoryMetric{
			Name:      s.Name,
			Slug:      cli.Slug(s.Name),
			October:   s.October,
			November:  s.November,
			ChangePct: pct,
			HasChange: ok,
			Metric: model.Metric{
				Label: s.Name,
				Value: cli.FormatCurrency(s.November, 0),
				Delta: cli.FormatDeltaPercent(pct, ok),
			},
		})
	}
	return out
}

// FindCategory returns the metric whose slug matches.
func FindCategory(metrics []model.CategoryMetric, slug string) (model.CategoryMetric, error) {
	for _, m := range metrics {
		if m.Slug == slug {
			return m, nil
		}
	}
	return model.CategoryMetric{}, fmt.Errorf("%w: %q", ErrUnknownCategory, slug)
}

// CategoryShares returns each category's share of the November total, in
// input order. All zeros when the total is zero.
func CategoryShares(metrics []model.CategoryMetric) []float64 {
	var total float64
	for _, m := range metrics {
		total += m.November
	}
	shares := make([]float64, len(metrics))
	if total == 0 {
		return shares
	}
	for i, m := range metrics {
		shares[i] = m.November / total
	}
	return shares
}

// MaxAbsChange returns the largest absolute defined change, for bar scaling.
func MaxAbsChange(metrics []model.CategoryMetric) float64 {
	var peak float64
	for _, m := range metrics {
		if !m.HasChange {
			continue
		}
		v := m.ChangePct
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
