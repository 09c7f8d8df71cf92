package model

// Metric is a labeled, pre-formatted value with an optional delta.
// It is the unit every presentation surface renders.
type Metric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Delta string `json:"delta,omitempty" yaml:"delta,omitempty"`
}

// Point is one (period, value) pair of a chart series.
type Point struct {
	Period int     `json:"period" yaml:"period"`
	Value  float64 `json:"value" yaml:"value"`
}

// Series is a named sequence of chart points.
type Series struct {
	Name   string  `json:"name" yaml:"name"`
	Points []Point `json:"points" yaml:"points"`
}

// TrendChart holds the two series of the sales trend chart.
type TrendChart struct {
	History  Series `json:"history" yaml:"history"`
	Forecast Series `json:"forecast" yaml:"forecast"`
}

// CategoryMetric holds the computed month-over-month change for a category.
type CategoryMetric struct {
	Name     string  `json:"name" yaml:"name"`
	Slug     string  `json:"slug" yaml:"slug"`
	October  float64 `json:"october" yaml:"october"`
	November float64 `json:"november" yaml:"november"`
	// ChangePct is the October to November change in percent.
	// Meaningless when HasChange is false (zero October baseline).
	ChangePct float64 `json:"change_pct" yaml:"change_pct"`
	HasChange bool    `json:"has_change" yaml:"has_change"`
	Metric    Metric  `json:"metric" yaml:"metric"`
}

// Forecast is the raw (unformatted) prediction for one target month.
type Forecast struct {
	Month     int     `json:"month" yaml:"month"`
	MonthName string  `json:"month_name" yaml:"month_name"`
	Value     float64 `json:"value" yaml:"value"`
	Baseline  float64 `json:"baseline" yaml:"baseline"`
	ChangePct float64 `json:"change_pct" yaml:"change_pct"`
	HasChange bool    `json:"has_change" yaml:"has_change"`
}

// Dashboard is the complete presentation contract for one render.
type Dashboard struct {
	Title       string           `json:"title" yaml:"title"`
	TargetMonth int              `json:"target_month" yaml:"target_month"`
	Slope       float64          `json:"slope" yaml:"slope"`
	Intercept   float64          `json:"intercept" yaml:"intercept"`
	Forecast    Metric           `json:"forecast" yaml:"forecast"`
	History     []Metric         `json:"history" yaml:"history"`
	Selected    Metric           `json:"selected" yaml:"selected"`
	Chart       TrendChart       `json:"chart" yaml:"chart"`
	Categories  []CategoryMetric `json:"categories" yaml:"categories"`
	KPIs        []Metric         `json:"kpis" yaml:"kpis"`
}
