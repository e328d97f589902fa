// Package analytics turns per-minute physiological samples into sleep stages,
// scores and agreement figures. Everything here is a pure function of its
// inputs and safe for concurrent use.
package analytics

import (
	"math"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/montanaflynn/stats"
)

// ComputeBaseline returns mean, min, max and population standard deviation of
// values. An empty series yields the zero Baseline.
func ComputeBaseline(values []float64) domain.Baseline {
	if len(values) == 0 {
		return domain.Baseline{}
	}

	data := stats.Float64Data(values)
	mean, _ := stats.Mean(data)
	minVal, _ := stats.Min(data)
	maxVal, _ := stats.Max(data)
	std, _ := stats.StandardDeviationPopulation(data)

	return domain.Baseline{
		Count:  len(values),
		Mean:   mean,
		Min:    minVal,
		Max:    maxVal,
		StdDev: std,
	}
}

// SampleValues extracts the positive values from samples. Zero and negative
// readings come from an unworn ring and are dropped.
func SampleValues(samples []domain.Sample) []float64 {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Value > 0 && !math.IsNaN(s.Value) && !math.IsInf(s.Value, 0) {
			values = append(values, s.Value)
		}
	}
	return values
}

// Rounded returns b with every field rounded to two decimals for display.
func Rounded(b domain.Baseline) domain.Baseline {
	return domain.Baseline{
		Count:  b.Count,
		Mean:   round2(b.Mean),
		Min:    round2(b.Min),
		Max:    round2(b.Max),
		StdDev: round2(b.StdDev),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
