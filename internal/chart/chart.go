// Package chart draws horizontal bar charts for the terminal.
package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	Blue  = lipgloss.Color("4")
	Green = lipgloss.Color("2")
	Red   = lipgloss.Color("1")

	DefaultWidth = 40
	barRune      = "█"
)

// Series is one named set of values, one per chart label.
type Series struct {
	Name   string
	Color  lipgloss.Color
	Values []float64
}

// Options controls rendering. Width is the length of the longest bar.
type Options struct {
	Width int
	Color bool
}

// ColorEnabled reports whether w is a terminal that should receive colors.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Bar renders a single-series chart.
func Bar(title string, labels []string, values []float64, color lipgloss.Color, opts Options) string {
	return Grouped(title, labels, []Series{{Color: color, Values: values}}, opts)
}

// Grouped renders one block of bars per label, one bar per series. A legend
// is printed when more than one series is named.
func Grouped(title string, labels []string, series []Series, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	maxValue := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			if !math.IsNaN(v) && v > maxValue {
				maxValue = v
			}
		}
	}

	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	seriesWidth := 0
	if len(series) > 1 {
		for _, s := range series {
			seriesWidth = max(seriesWidth, lipgloss.Width(s.Name))
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(opts.Color).Render(title))
		b.WriteByte('\n')
	}
	if len(series) > 1 {
		b.WriteString(legend(series, opts.Color))
		b.WriteByte('\n')
	}

	for i, label := range labels {
		for j, s := range series {
			name := label
			if j > 0 {
				name = ""
			}
			b.WriteString(pad(name, labelWidth))
			b.WriteString(" │ ")
			if seriesWidth > 0 {
				b.WriteString(pad(s.Name, seriesWidth))
				b.WriteByte(' ')
			}
			v := math.NaN()
			if i < len(s.Values) {
				v = s.Values[i]
			}
			b.WriteString(bar(v, maxValue, width, s.Color, opts.Color))
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func legend(series []Series, color bool) string {
	parts := make([]string, len(series))
	for i, s := range series {
		parts[i] = paint(barRune, s.Color, color) + " " + s.Name
	}
	return strings.Join(parts, "  ")
}

func bar(v, maxValue float64, width int, c lipgloss.Color, color bool) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	n := 0
	if maxValue > 0 && v > 0 {
		n = int(math.Round(v / maxValue * float64(width)))
		if n == 0 {
			n = 1
		}
	}
	return paint(strings.Repeat(barRune, n), c, color) + " " + formatValue(v)
}

func paint(s string, c lipgloss.Color, color bool) string {
	if !color || s == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
