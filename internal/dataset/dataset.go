// Package dataset holds the embedded sales figures the dashboard is built from.
package dataset

import "github.com/theirongolddev/salescast/internal/model"

// DefaultMonth is the month predicted when the caller does not choose one.
const DefaultMonth = 12

// seedObservations are the monthly sales totals the trend line is fitted to.
var seedObservations = []model.Observation{
	{Period: 10, Value: 480},
	{Period: 11, Value: 520},
}

// seedCategories are listed in display order.
var seedCategories = []model.CategorySnapshot{
	{Name: "Electrónicos", October: 150, November: 180},
	{Name: "Televisores", October: 120, November: 130},
	{Name: "Computadoras y Laptops", October: 90, November: 95},
	{Name: "Cámaras y Fotografía", October: 70, November: 65},
	{Name: "Videojuegos y Consolas", October: 50, November: 50},
}

var seedKPIs = []model.KPI{
	{Label: "Retorno de Inversión", Value: "+25%", Delta: "1.2%"},
	{Label: "Conversión", Value: "3.4%", Delta: "0.8%"},
	{Label: "Satisfaction", Value: "94%", Delta: "2.3%"},
}

// Observations returns a copy of the seed observations, oldest first.
func Observations() []model.Observation {
	out := make([]model.Observation, len(seedObservations))
	copy(out, seedObservations)
	return out
}

// Categories returns a copy of the category snapshots in display order.
func Categories() []model.CategorySnapshot {
	out := make([]model.CategorySnapshot, len(seedCategories))
	copy(out, seedCategories)
	return out
}

// KPIs returns a copy of the static headline indicators.
func KPIs() []model.KPI {
	out := make([]model.KPI, len(seedKPIs))
	copy(out, seedKPIs)
	return out
}
