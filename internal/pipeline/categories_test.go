package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/salescast/internal/dataset"
	"github.com/theirongolddev/salescast/internal/model"
)

func TestCategoryMetricsSeedData(t *testing.T) {
	metrics := CategoryMetrics(dataset.Categories())

	elec := metrics[0]
	if elec.Name != "Electrónicos" {
		t.Fatalf("metrics[0] = %q, want Electrónicos", elec.Name)
	}
	if !elec.HasChange || math.Abs(elec.ChangePct-20) > 1e-9 {
		t.Fatalf("Electrónicos change = %v, want 20", elec.ChangePct)
	}
	if elec.Metric.Value != "$180" || elec.Metric.Delta != "+20.0%" {
		t.Fatalf("Electrónicos metric = %+v", elec.Metric)
	}

	cam, err := FindCategory(metrics, "camaras-y-fotografia")
	if err != nil {
		t.Fatalf("FindCategory: %v", err)
	}
	if cam.Metric.Delta != "-7.1%" {
		t.Fatalf("Cámaras delta = %q, want -7.1%%", cam.Metric.Delta)
	}

	games, err := FindCategory(metrics, "videojuegos-y-consolas")
	if err != nil {
		t.Fatalf("FindCategory: %v", err)
	}
	if games.Metric.Delta != "+0.0%" {
		t.Fatalf("Videojuegos delta = %q, want +0.0%%", games.Metric.Delta)
	}
}

func TestCategoryMetricsZeroBaseline(t *testing.T) {
	metrics := CategoryMetrics([]model.CategorySnapshot{{Name: "Nuevo", October: 0, November: 10}})
	if metrics[0].HasChange {
		t.Fatal("zero October baseline should yield undefined change")
	}
	if metrics[0].Metric.Delta != "n/a" {
		t.Fatalf("Delta = %q, want n/a", metrics[0].Metric.Delta)
	}
	if MaxAbsChange(metrics) != 0 {
		t.Fatalf("MaxAbsChange ignores undefined changes, got %v", MaxAbsChange(metrics))
	}
}

func TestFindCategoryUnknown(t *testing.T) {
	_, err := FindCategory(CategoryMetrics(dataset.Categories()), "drones")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestCategoryShares(t *testing.T) {
	shares := CategoryShares(CategoryMetrics(dataset.Categories()))
	var sum float64
	for _, s := range shares {
		sum += s
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("shares sum = %v, want 1", sum)
	}
	// 180 / 520
	if math.Abs(shares[0]-180.0/520.0) > 1e-9 {
		t.Fatalf("shares[0] = %v, want %v", shares[0], 180.0/520.0)
	}

	if got := CategoryShares(nil); len(got) != 0 {
		t.Fatalf("CategoryShares(nil) = %v", got)
	}
}

func TestMaxAbsChange(t *testing.T) {
	if got := MaxAbsChange(CategoryMetrics(dataset.Categories())); math.Abs(got-20) > 1e-9 {
		t.Fatalf("MaxAbsChange = %v, want 20", got)
	}
}
