package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarScalesToWidth(t *testing.T) {
	out := Bar("Intervals", []string{"admin", "normal"}, []float64{5, 10}, Blue, Options{Width: 10})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Intervals", lines[0])
	assert.Equal(t, "admin  │ "+strings.Repeat(barRune, 5)+" 5", lines[1])
	assert.Equal(t, "normal │ "+strings.Repeat(barRune, 10)+" 10", lines[2])
}

func TestBarEdgeValues(t *testing.T) {
	out := Bar("", []string{"a", "b", "c"}, []float64{0, math.NaN(), 0.25}, Red, Options{Width: 4})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a │  0", lines[0])
	assert.Equal(t, "b │ NaN", lines[1])
	assert.Equal(t, "c │ "+strings.Repeat(barRune, 4)+" 0.25", lines[2])
}

func TestGroupedHasLegendAndOneBarPerSeries(t *testing.T) {
	out := Grouped("Policies", []string{"site"}, []Series{
		{Name: "cookies", Color: Red, Values: []float64{1}},
		{Name: "aviso", Color: Green, Values: []float64{0}},
		{Name: "proteccion_de_datos", Color: Blue, Values: []float64{1}},
	}, Options{Width: 2})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "cookies")
	assert.Contains(t, lines[1], "proteccion_de_datos")
	assert.True(t, strings.HasPrefix(lines[2], "site │ cookies"))
	assert.True(t, strings.HasPrefix(lines[3], "     │ aviso"))
}

func TestColorEnabledFalseForBuffers(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))
}
