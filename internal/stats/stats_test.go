package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptive(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.Equal(t, 5.0, Mean(xs))
	assert.Equal(t, 4.5, Median(xs))
	assert.InDelta(t, 32.0/7.0, Variance(xs), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), StdDev(xs), 1e-12)
	assert.Equal(t, 2.0, Min(xs))
	assert.Equal(t, 9.0, Max(xs))
}

func TestMedian_OddAndUnsorted(t *testing.T) {
	xs := []float64{9, 1, 5}
	assert.Equal(t, 5.0, Median(xs))
	assert.Equal(t, []float64{9, 1, 5}, xs, "input must not be reordered")
}

func TestEmptyAndSingleSamples(t *testing.T) {
	for name, f := range map[string]func([]float64) float64{
		"mean": Mean, "median": Median, "variance": Variance, "std": StdDev, "min": Min, "max": Max,
	} {
		assert.True(t, math.IsNaN(f(nil)), name)
	}
	assert.True(t, math.IsNaN(Variance([]float64{3})))
	assert.True(t, math.IsNaN(StdDev([]float64{3})))
	assert.Equal(t, 3.0, Mean([]float64{3}))
}

func TestNaNCellsAreSkipped(t *testing.T) {
	xs := []float64{10, math.NaN()}

	assert.Equal(t, 1, Count(xs))
	assert.Equal(t, 10.0, Mean(xs))
	assert.Equal(t, 10.0, Median(xs))
	assert.Equal(t, 10.0, Min(xs))
	assert.Equal(t, 10.0, Max(xs))
	assert.True(t, math.IsNaN(Variance(xs)), "one valid cell has no variance")

	assert.Equal(t, 4.0, Variance([]float64{math.NaN(), 2, 4, 6}))
	assert.True(t, math.IsNaN(Mean([]float64{math.NaN()})))
}

func TestTopN_SkipsNaN(t *testing.T) {
	xs := []float64{0.2, math.NaN(), 0.7}
	top := TopN(xs, 3, func(x float64) float64 { return x })
	assert.Equal(t, []float64{0.7, 0.2}, top)
}

func TestTopN_StableOnTies(t *testing.T) {
	type item struct {
		id    int
		score float64
	}
	items := []item{{1, 0.5}, {2, 0.9}, {3, 0.5}, {4, 0.1}, {5, 0.9}}

	top := TopN(items, 3, func(i item) float64 { return i.score })
	assert.Equal(t, []item{{2, 0.9}, {5, 0.9}, {1, 0.5}}, top)

	assert.Len(t, TopN(items, 10, func(i item) float64 { return i.score }), 5)
	assert.Nil(t, TopN(items, 0, func(i item) float64 { return i.score }))
}

func TestAverageDateDifference(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no dates", nil, 0},
		{"single date", []string{"01/01/2020"}, 0},
		{"unsorted input", []string{"11/01/2020", "01/01/2020", "21/01/2020"}, 10},
		{"crosses month", []string{"30/01/2020", "01/03/2020"}, 31},
		{"half rounds to even down", []string{"01/01/2020", "02/01/2020", "06/01/2020"}, 2},
		{"half rounds to even up", []string{"01/01/2020", "02/01/2020", "08/01/2020"}, 4},
		{"unpadded day and month", []string{"1/2/2020", "11/2/2020"}, 10},
		{"mixed padding", []string{"01/02/2020", "3/2/2020", "5/02/2020"}, 2},
		{"centuries apart", []string{"01/01/1700", "01/01/2100"}, 146097},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AverageDateDifference(tt.dates)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAverageDateDifference_InvalidDate(t *testing.T) {
	_, err := AverageDateDifference([]string{"2020-01-01", "02/01/2020"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestPhishingProbability(t *testing.T) {
	assert.Equal(t, 0.0, PhishingProbability(3, 0))
	assert.Equal(t, 0.25, PhishingProbability(1, 4))
	assert.Equal(t, 1.0, PhishingProbability(5, 5))
}
