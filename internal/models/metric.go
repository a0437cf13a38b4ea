package models

import (
	"math"
	"strconv"
)

// Metric is a computed statistic. NaN marks a statistic that is undefined for
// the sample (an empty cohort, or a variance over a single observation).
type Metric float64

// NaN returns the undefined Metric.
func NaN() Metric { return Metric(math.NaN()) }

// IsNaN reports whether the metric is undefined.
func (m Metric) IsNaN() bool { return math.IsNaN(float64(m)) }

func (m Metric) String() string {
	if m.IsNaN() {
		return "NaN"
	}
	return strconv.FormatFloat(float64(m), 'f', -1, 64)
}

// MarshalJSON writes null for NaN, which JSON cannot represent.
func (m Metric) MarshalJSON() ([]byte, error) {
	if m.IsNaN() || math.IsInf(float64(m), 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(m), 'g', -1, 64)), nil
}

// MarshalYAML writes NaN as YAML's .nan.
func (m Metric) MarshalYAML() (interface{}, error) {
	return float64(m), nil
}
