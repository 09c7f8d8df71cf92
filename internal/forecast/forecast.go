// Package forecast fits a least-squares trend line to monthly sales
// observations and evaluates it at arbitrary periods.
package forecast

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/salescast/internal/dataset"
	"github.com/theirongolddev/salescast/internal/model"
)

// Valid month bounds for a prediction request.
const (
	MinPeriod = 1
	MaxPeriod = 12
)

var (
	// ErrInsufficientData is returned when fewer than two observations are given.
	ErrInsufficientData = errors.New("at least two observations are required")
	// ErrDegenerate is returned when every observation shares the same period.
	ErrDegenerate = errors.New("observations must span more than one period")
	// ErrPeriodOutOfRange is returned for months outside 1..12.
	ErrPeriodOutOfRange = errors.New("period out of range")
)

// Line is value = Slope*period + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Fit computes the ordinary least-squares line through obs.
// With exactly two observations this is the line through both points.
func Fit(obs []model.Observation) (Line, error) {
	if len(obs) < 2 {
		return Line{}, ErrInsufficientData
	}

	n := float64(len(obs))
	var sumX, sumY float64
	for _, o := range obs {
		sumX += float64(o.Period)
		sumY += o.Value
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for _, o := range obs {
		dx := float64(o.Period) - meanX
		sxx += dx * dx
		sxy += dx * (o.Value - meanY)
	}
	if sxx == 0 {
		return Line{}, ErrDegenerate
	}

	slope := sxy / sxx
	return Line{Slope: slope, Intercept: meanY - slope*meanX}, nil
}

// Engine predicts sales from a line fitted once at construction.
// It is immutable and safe for concurrent use.
type Engine struct {
	line Line
	obs  []model.Observation
}

// New fits obs and returns an engine. obs must be ordered oldest first.
func New(obs []model.Observation) (*Engine, error) {
	line, err := Fit(obs)
	if err != nil {
		return nil, fmt.Errorf("fitting trend line: %w", err)
	}
	cp := make([]model.Observation, len(obs))
	copy(cp, obs)
	return &Engine{line: line, obs: cp}, nil
}

// Default returns an engine fitted to the embedded seed observations.
func Default() *Engine {
	e, err := New(dataset.Observations())
	if err != nil {
		// seed data is constant; this only fires if it is edited badly
		panic(err)
	}
	return e
}

// Predict returns the fitted value at period. It has no side effects and is
// total over all integers; callers constrain the input range.
func (e *Engine) Predict(period int) float64 {
	return e.line.At(float64(period))
}

// Line returns the fitted line.
func (e *Engine) Line() Line {
	return e.line
}

// Observations returns a copy of the fitted observations.
func (e *Engine) Observations() []model.Observation {
	out := make([]model.Observation, len(e.obs))
	copy(out, e.obs)
	return out
}

// Last returns the most recent observation.
func (e *Engine) Last() model.Observation {
	return e.obs[len(e.obs)-1]
}

// PercentChange returns (current-baseline)/baseline*100.
// ok is false when baseline is zero and the change is undefined.
func PercentChange(current, baseline float64) (pct float64, ok bool) {
	if baseline == 0 {
		return 0, false
	}
	return (current - baseline) / baseline * 100, true
}

// ValidatePeriod reports whether p is a month the dashboard accepts.
func ValidatePeriod(p int) error {
	if p < MinPeriod || p > MaxPeriod {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrPeriodOutOfRange, p, MinPeriod, MaxPeriod)
	}
	return nil
}
