package frame

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownColumn   = errors.New("unknown column")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrNoCommonColumns = errors.New("no common columns to merge on")
)

// Frame is a two-dimensional table with ordered columns and a row index.
type Frame struct {
	columns []string
	index   []string
	data    map[string][]any
}

// New builds a frame. Every column in data must appear in columns and have one
// value per row; a nil index means RangeIndex.
func New(columns []string, data map[string][]any, index []string) (*Frame, error) {
	rows := -1
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if seen[c] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateColumn, c)
		}
		seen[c] = true
		vals, ok := data[c]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownColumn, c)
		}
		if rows >= 0 && len(vals) != rows {
			return nil, fmt.Errorf("%w: column %q has %d values, expected %d", ErrLengthMismatch, c, len(vals), rows)
		}
		rows = len(vals)
	}
	if rows < 0 {
		rows = len(index)
	}
	if index == nil {
		index = RangeIndex(rows)
	}
	if len(index) != rows {
		return nil, fmt.Errorf("%w: %d rows, %d labels", ErrLengthMismatch, rows, len(index))
	}

	f := &Frame{
		columns: append([]string(nil), columns...),
		index:   append([]string(nil), index...),
		data:    make(map[string][]any, len(columns)),
	}
	for _, c := range columns {
		f.data[c] = append([]any(nil), data[c]...)
	}
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.index) }

// Columns returns the column names in order.
func (f *Frame) Columns() []string { return append([]string(nil), f.columns...) }

// Index returns the row labels.
func (f *Frame) Index() []string { return append([]string(nil), f.index...) }

// Column returns the named column as a series sharing the frame's index.
func (f *Frame) Column(name string) (*Series, error) {
	vals, ok := f.data[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownColumn, name)
	}
	s, _ := NewSeries(vals, f.index)
	s.Name = name
	return s, nil
}

// Value returns the cell at row i of column name.
func (f *Frame) Value(i int, name string) any {
	return f.data[name][i]
}

// Select returns a frame with only the given columns, in the given order.
func (f *Frame) Select(columns ...string) (*Frame, error) {
	data := make(map[string][]any, len(columns))
	for _, c := range columns {
		vals, ok := f.data[c]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownColumn, c)
		}
		data[c] = vals
	}
	return New(columns, data, f.index)
}

// Headers implements the table rendering contract; the first column is the index.
func (f *Frame) Headers() []string {
	return append([]string{""}, f.columns...)
}

// Rows implements the table rendering contract.
func (f *Frame) Rows() [][]string {
	rows := make([][]string, len(f.index))
	for i, label := range f.index {
		row := make([]string, 0, len(f.columns)+1)
		row = append(row, label)
		for _, c := range f.columns {
			row = append(row, FormatValue(f.data[c][i]))
		}
		rows[i] = row
	}
	return rows
}

// Records returns each row as a column→value map.
func (f *Frame) Records() []map[string]any {
	out := make([]map[string]any, len(f.index))
	for i := range f.index {
		rec := make(map[string]any, len(f.columns))
		for _, c := range f.columns {
			rec[c] = f.data[c][i]
		}
		out[i] = rec
	}
	return out
}

func (f *Frame) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(f.Headers(), "\t"))
	for _, row := range f.Rows() {
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, "\t"))
	}
	return b.String()
}
