// Package stats holds the descriptive statistics used by the reports. The
// functions follow pandas semantics: NaN cells are skipped, variance is the
// sample variance (n-1), and a statistic that is undefined on what remains
// is NaN.
package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

// valid returns xs without its NaN cells.
func valid(xs []float64) mstats.Float64Data {
	out := make(mstats.Float64Data, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// nanOnError maps an empty-input error to NaN.
func nanOnError(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}

// Count returns the number of non-NaN cells.
func Count(xs []float64) int {
	return len(valid(xs))
}

// Mean returns the arithmetic mean, or NaN for an empty sample.
func Mean(xs []float64) float64 {
	return nanOnError(mstats.Mean(valid(xs)))
}

// Median returns the middle value, averaging the two central values of an
// even-sized sample.
func Median(xs []float64) float64 {
	return nanOnError(mstats.Median(valid(xs)))
}

// Variance returns the sample variance (n-1 denominator), NaN below two cells.
func Variance(xs []float64) float64 {
	data := valid(xs)
	if len(data) < 2 {
		return math.NaN()
	}
	return nanOnError(mstats.SampleVariance(data))
}

// StdDev returns the sample standard deviation, NaN below two cells.
func StdDev(xs []float64) float64 {
	data := valid(xs)
	if len(data) < 2 {
		return math.NaN()
	}
	return nanOnError(mstats.StandardDeviationSample(data))
}

// Min returns the smallest value, or NaN for an empty sample.
func Min(xs []float64) float64 {
	return nanOnError(mstats.Min(valid(xs)))
}

// Max returns the largest value, or NaN for an empty sample.
func Max(xs []float64) float64 {
	return nanOnError(mstats.Max(valid(xs)))
}

// Floats maps a slice into float64 samples.
func Floats[T any](items []T, f func(T) float64) []float64 {
	out := make([]float64, len(items))
	for i, it := range items {
		out[i] = f(it)
	}
	return out
}

// TopN returns the n items with the highest score, highest first. Ties keep
// their input order; items scoring NaN are left out.
func TopN[T any](items []T, n int, score func(T) float64) []T {
	if n <= 0 {
		return nil
	}
	ranked := make([]T, 0, len(items))
	for _, it := range items {
		if !math.IsNaN(score(it)) {
			ranked = append(ranked, it)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
