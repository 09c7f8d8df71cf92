package forecast

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/salescast/internal/model"
)

func TestFitSeedLine(t *testing.T) {
	line, err := Fit([]model.Observation{{Period: 10, Value: 480}, {Period: 11, Value: 520}})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if line.Slope != 40 {
		t.Fatalf("Slope = %v, want 40", line.Slope)
	}
	if line.Intercept != 80 {
		t.Fatalf("Intercept = %v, want 80", line.Intercept)
	}
}

func TestPredictPassesThroughObservations(t *testing.T) {
	e := Default()
	if got := e.Predict(10); got != 480 {
		t.Fatalf("Predict(10) = %v, want 480", got)
	}
	if got := e.Predict(11); got != 520 {
		t.Fatalf("Predict(11) = %v, want 520", got)
	}
	if got := e.Predict(12); got != 560 {
		t.Fatalf("Predict(12) = %v, want 560", got)
	}
}

func TestPredictConstantSlope(t *testing.T) {
	e := Default()
	for m1 := MinPeriod; m1 <= MaxPeriod; m1++ {
		for m2 := m1 + 1; m2 <= MaxPeriod; m2++ {
			diff := e.Predict(m2) - e.Predict(m1)
			want := 40 * float64(m2-m1)
			if math.Abs(diff-want) > 1e-9 {
				t.Fatalf("Predict(%d)-Predict(%d) = %v, want %v", m2, m1, diff, want)
			}
		}
	}
}

func TestPredictIdempotent(t *testing.T) {
	e := Default()
	first := e.Predict(7)
	for i := 0; i < 5; i++ {
		if got := e.Predict(7); got != first {
			t.Fatalf("call %d: Predict(7) = %v, want %v", i, got, first)
		}
	}
}

func TestFitLeastSquaresThreePoints(t *testing.T) {
	// sxy = 4, sxx = 2, mean y = 31/6
	obs := []model.Observation{
		{Period: 1, Value: 3.5},
		{Period: 2, Value: 4.5},
		{Period: 3, Value: 7.5},
	}
	line, err := Fit(obs)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if math.Abs(line.Slope-2) > 1e-9 {
		t.Fatalf("Slope = %v, want 2", line.Slope)
	}
	if math.Abs(line.Intercept-1.1666666666666667) > 1e-9 {
		t.Fatalf("Intercept = %v, want 1.1667", line.Intercept)
	}
}

func TestFitErrors(t *testing.T) {
	if _, err := Fit([]model.Observation{{Period: 1, Value: 1}}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("Fit(one point) err = %v, want ErrInsufficientData", err)
	}
	same := []model.Observation{{Period: 4, Value: 1}, {Period: 4, Value: 9}}
	if _, err := Fit(same); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("Fit(same period) err = %v, want ErrDegenerate", err)
	}
	if _, err := New(nil); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("New(nil) err = %v, want wrapped ErrInsufficientData", err)
	}
}

func TestNewCopiesObservations(t *testing.T) {
	obs := []model.Observation{{Period: 10, Value: 480}, {Period: 11, Value: 520}}
	e, err := New(obs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	obs[1].Value = 0
	if e.Last().Value != 520 {
		t.Fatalf("Last().Value = %v after caller mutation, want 520", e.Last().Value)
	}
}

func TestPercentChange(t *testing.T) {
	pct, ok := PercentChange(560, 520)
	if !ok {
		t.Fatal("PercentChange(560, 520) reported undefined")
	}
	if math.Abs(pct-7.6923076923) > 1e-6 {
		t.Fatalf("PercentChange(560, 520) = %v, want ~7.69", pct)
	}

	pct, ok = PercentChange(65, 70)
	if !ok || math.Abs(pct-(-7.142857142857143)) > 1e-9 {
		t.Fatalf("PercentChange(65, 70) = %v, %v; want ~-7.14, true", pct, ok)
	}

	if _, ok := PercentChange(10, 0); ok {
		t.Fatal("PercentChange with zero baseline should be undefined")
	}
}

func TestValidatePeriod(t *testing.T) {
	for _, p := range []int{1, 6, 12} {
		if err := ValidatePeriod(p); err != nil {
			t.Errorf("ValidatePeriod(%d) = %v, want nil", p, err)
		}
	}
	for _, p := range []int{0, 13, -1} {
		if err := ValidatePeriod(p); !errors.Is(err, ErrPeriodOutOfRange) {
			t.Errorf("ValidatePeriod(%d) = %v, want ErrPeriodOutOfRange", p, err)
		}
	}
}
