// Package model defines domain types for salescast forecasts and dashboards.
package model

// Observation is a known (period, value) data point used to fit the trend line.
// Period is a calendar month in 1..12.
type Observation struct {
	Period int     `json:"period" yaml:"period"`
	Value  float64 `json:"value" yaml:"value"`
}

// CategorySnapshot holds the fixed October and November totals for one
// product category. It is display-only and never feeds the regression.
type CategorySnapshot struct {
	Name     string
	October  float64
	November float64
}

// KPI is a static headline indicator shown below the category metrics.
type KPI struct {
	Label string
	Value string
	Delta string
}
