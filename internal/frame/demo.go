package frame

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Table is anything that renders as headers plus rows.
type Table interface {
	Headers() []string
	Rows() [][]string
}

// Example is one titled step of the walkthrough. Exactly one of Table or Text
// is set.
type Example struct {
	Title string `json:"title" yaml:"title"`
	Table Table  `json:"-" yaml:"-"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Examples walks through series construction followed by the concat, merge
// and join operations. Random columns are drawn from rng.
func Examples(rng *rand.Rand) ([]Example, error) {
	series, err := seriesExamples(rng)
	if err != nil {
		return nil, err
	}
	ops, err := frameExamples()
	if err != nil {
		return nil, err
	}
	return append(series, ops...), nil
}

func seriesExamples(rng *rand.Rand) ([]Example, error) {
	normal := make([]any, 5)
	for i := range normal {
		normal[i] = rng.NormFloat64()
	}
	s1, err := NewSeries(normal, []string{"a", "b", "c", "d", "e"})
	if err != nil {
		return nil, err
	}

	uniform := make([]any, 5)
	for i := range uniform {
		uniform[i] = rng.Float64()
	}
	s2, _ := NewSeries(uniform, nil)

	s3, err := NewSeries([]any{0.25, 0.5, 0.75, 1.0}, []string{"2", "5", "3", "7"})
	if err != nil {
		return nil, err
	}

	d := map[string]any{"a": 1.0, "b": 2.0, "c": 3.0, "d": 4.0}
	values := make([]string, s1.Len())
	for i, v := range s1.Values() {
		values[i] = FormatValue(v)
	}

	out := []Example{
		{Title: "Series", Table: s1},
		{Title: "Index", Text: strings.Join(s1.Index(), " ")},
		{Title: "Values", Text: strings.Join(values, " ")},
		{Title: "Series with default index", Table: s2},
		{Title: "Series with explicit index", Table: s3},
		{Title: "Series from map", Table: FromMap(d, nil)},
		{Title: "Series from map with explicit index", Table: FromMap(d, []string{"e", "d", "c", "f", "b", "a"})},
		{Title: "Series from scalar", Table: Scalar(3.5, []string{"a", "b", "c", "d"})},
	}

	s2.Name = "Serie 2"
	s2.IndexName = "Ordinal"
	out = append(out, Example{Title: "Named series", Table: s2})
	return out, nil
}

func frameExamples() ([]Example, error) {
	ser1, _ := NewSeries([]any{"A", "B", "C"}, []string{"1", "2", "3"})
	ser2, _ := NewSeries([]any{"D", "E", "F"}, []string{"4", "5", "6"})

	df1, err := New([]string{"A", "B"}, map[string][]any{
		"A": {"A0", "A1"},
		"B": {"B0", "B1"},
	}, nil)
	if err != nil {
		return nil, err
	}
	df2, err := New([]string{"C", "D"}, map[string][]any{
		"C": {"C0", "C1"},
		"D": {"D0", "D1"},
	}, nil)
	if err != nil {
		return nil, err
	}
	stacked, err := Concat(Rows, df1, df2)
	if err != nil {
		return nil, fmt.Errorf("concat rows: %w", err)
	}
	sideBySide, err := Concat(Columns, df1, df2)
	if err != nil {
		return nil, fmt.Errorf("concat columns: %w", err)
	}

	employees := []any{"Ana", "Juan", "María", "Carlos"}
	departments := []any{"Contabilidad", "RRHH", "Marketing", "RRHH"}
	extensions := []any{6895, 6745, 6855, 6746}

	byDept, err := New([]string{"empleado", "dpto."}, map[string][]any{
		"empleado": employees,
		"dpto.":    departments,
	}, nil)
	if err != nil {
		return nil, err
	}
	byExt, err := New([]string{"empleado", "ext."}, map[string][]any{
		"empleado": employees,
		"ext.":     extensions,
	}, nil)
	if err != nil {
		return nil, err
	}
	merged, err := Merge(byDept, byExt, MergeOptions{})
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	names := []string{"Ana", "Juan", "María", "Carlos"}
	deptIndexed, err := New([]string{"dpto."}, map[string][]any{"dpto.": departments}, names)
	if err != nil {
		return nil, err
	}
	extIndexed, err := New([]string{"ext."}, map[string][]any{"ext.": extensions}, names)
	if err != nil {
		return nil, err
	}
	joined, err := deptIndexed.Join(extIndexed)
	if err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}

	return []Example{
		{Title: "SER_1", Table: ser1},
		{Title: "SER_2", Table: ser2},
		{Title: "Concat SER_1 and SER_2", Table: ConcatSeries(ser1, ser2)},
		{Title: "DF_1", Table: df1},
		{Title: "DF_2", Table: df2},
		{Title: "Concat along rows (missing cells)", Table: stacked},
		{Title: "Concat along columns", Table: sideBySide},
		{Title: "Merge", Table: merged},
		{Title: "Join", Table: joined},
	}, nil
}
