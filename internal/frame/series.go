// Package frame is a small labeled-table library: a Series is a column of
// values addressed by index labels, a Frame is a set of Series sharing one
// index. A nil value is a missing cell.
package frame

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrLengthMismatch is returned when an index does not match the data length.
var ErrLengthMismatch = errors.New("length of values does not match length of index")

// Series is a one-dimensional labeled array.
type Series struct {
	Name      string
	IndexName string
	index     []string
	values    []any
}

// RangeIndex returns the default labels "0".."n-1".
func RangeIndex(n int) []string {
	idx := make([]string, n)
	for i := range idx {
		idx[i] = strconv.Itoa(i)
	}
	return idx
}

// NewSeries builds a series from values. A nil index means RangeIndex.
func NewSeries(values []any, index []string) (*Series, error) {
	if index == nil {
		index = RangeIndex(len(values))
	}
	if len(index) != len(values) {
		return nil, fmt.Errorf("%w: %d values, %d labels", ErrLengthMismatch, len(values), len(index))
	}
	return &Series{
		index:  append([]string(nil), index...),
		values: append([]any(nil), values...),
	}, nil
}

// FromMap builds a series from a mapping. Without an explicit index the labels
// are the sorted keys; with one, labels absent from m become missing values.
func FromMap(m map[string]any, index []string) *Series {
	if index == nil {
		index = make([]string, 0, len(m))
		for k := range m {
			index = append(index, k)
		}
		sort.Strings(index)
	}
	values := make([]any, len(index))
	for i, label := range index {
		values[i] = m[label]
	}
	return &Series{index: append([]string(nil), index...), values: values}
}

// Scalar repeats v under every label of index.
func Scalar(v any, index []string) *Series {
	values := make([]any, len(index))
	for i := range values {
		values[i] = v
	}
	return &Series{index: append([]string(nil), index...), values: values}
}

// Len returns the number of elements.
func (s *Series) Len() int { return len(s.values) }

// Index returns a copy of the labels.
func (s *Series) Index() []string { return append([]string(nil), s.index...) }

// Values returns a copy of the values.
func (s *Series) Values() []any { return append([]any(nil), s.values...) }

// Get returns the first value stored under label.
func (s *Series) Get(label string) (any, bool) {
	for i, l := range s.index {
		if l == label {
			return s.values[i], true
		}
	}
	return nil, false
}

// At returns the value at position i.
func (s *Series) At(i int) any { return s.values[i] }

// ConcatSeries appends series one after another, keeping every label,
// duplicates included.
func ConcatSeries(series ...*Series) *Series {
	out := &Series{}
	for _, s := range series {
		out.index = append(out.index, s.index...)
		out.values = append(out.values, s.values...)
	}
	if len(series) > 0 {
		out.Name = series[0].Name
		out.IndexName = series[0].IndexName
	}
	return out
}

// Headers implements the table rendering contract.
func (s *Series) Headers() []string {
	name := s.Name
	if name == "" {
		name = "value"
	}
	return []string{s.IndexName, name}
}

// Rows implements the table rendering contract.
func (s *Series) Rows() [][]string {
	rows := make([][]string, len(s.values))
	for i, v := range s.values {
		rows[i] = []string{s.index[i], FormatValue(v)}
	}
	return rows
}

// FormatValue renders a cell the way the tables print it; missing is NaN.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NaN"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
