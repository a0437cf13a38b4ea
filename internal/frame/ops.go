package frame

import (
	"fmt"
	"strings"
)

// Axis selects the direction of a concatenation.
type Axis int

const (
	// Rows stacks frames vertically; columns are the union of all columns.
	Rows Axis = 0
	// Columns places frames side by side; rows are aligned on index labels.
	Columns Axis = 1
)

// Concat joins frames along axis. Cells with no source value are missing.
func Concat(axis Axis, frames ...*Frame) (*Frame, error) {
	switch axis {
	case Rows:
		return concatRows(frames)
	case Columns:
		return concatColumns(frames)
	default:
		return nil, fmt.Errorf("invalid axis %d", axis)
	}
}

func concatRows(frames []*Frame) (*Frame, error) {
	var columns, index []string
	seen := make(map[string]bool)
	for _, f := range frames {
		for _, c := range f.columns {
			if !seen[c] {
				seen[c] = true
				columns = append(columns, c)
			}
		}
		index = append(index, f.index...)
	}

	data := make(map[string][]any, len(columns))
	for _, c := range columns {
		col := make([]any, 0, len(index))
		for _, f := range frames {
			if vals, ok := f.data[c]; ok {
				col = append(col, vals...)
			} else {
				col = append(col, make([]any, f.Len())...)
			}
		}
		data[c] = col
	}
	return New(columns, data, index)
}

func concatColumns(frames []*Frame) (*Frame, error) {
	var columns, index []string
	seenLabel := make(map[string]bool)
	seenColumn := make(map[string]bool)
	for _, f := range frames {
		for _, c := range f.columns {
			if seenColumn[c] {
				return nil, fmt.Errorf("%w %q", ErrDuplicateColumn, c)
			}
			seenColumn[c] = true
			columns = append(columns, c)
		}
		for _, label := range f.index {
			if !seenLabel[label] {
				seenLabel[label] = true
				index = append(index, label)
			}
		}
	}

	data := make(map[string][]any, len(columns))
	for _, f := range frames {
		pos := positions(f.index)
		for _, c := range f.columns {
			col := make([]any, len(index))
			for i, label := range index {
				if rows := pos[label]; len(rows) > 0 {
					col[i] = f.data[c][rows[0]]
				}
			}
			data[c] = col
		}
	}
	return New(columns, data, index)
}

// How selects which rows survive a merge.
type How string

const (
	Inner How = "inner"
	Left  How = "left"
)

// MergeOptions configures Merge. An empty On merges on the columns the two
// frames share; an empty How means Inner.
type MergeOptions struct {
	On  []string
	How How
}

// Merge joins two frames on key columns. Every left row is paired with every
// matching right row in right order; with Left, unmatched left rows are kept
// with missing right values. Non-key columns present on both sides get _x and
// _y suffixes. The result has a fresh range index.
func Merge(left, right *Frame, opts MergeOptions) (*Frame, error) {
	how := opts.How
	if how == "" {
		how = Inner
	}
	if how != Inner && how != Left {
		return nil, fmt.Errorf("unsupported merge type %q", how)
	}

	on := opts.On
	if len(on) == 0 {
		for _, c := range left.columns {
			if _, ok := right.data[c]; ok {
				on = append(on, c)
			}
		}
		if len(on) == 0 {
			return nil, ErrNoCommonColumns
		}
	}
	isKey := make(map[string]bool, len(on))
	for _, c := range on {
		if _, ok := left.data[c]; !ok {
			return nil, fmt.Errorf("%w %q in left frame", ErrUnknownColumn, c)
		}
		if _, ok := right.data[c]; !ok {
			return nil, fmt.Errorf("%w %q in right frame", ErrUnknownColumn, c)
		}
		isKey[c] = true
	}

	leftNames := make(map[string]string, len(left.columns))
	rightNames := make(map[string]string, len(right.columns))
	var columns []string
	for _, c := range left.columns {
		name := c
		if _, clash := right.data[c]; clash && !isKey[c] {
			name = c + "_x"
		}
		leftNames[c] = name
		columns = append(columns, name)
	}
	for _, c := range right.columns {
		if isKey[c] {
			continue
		}
		name := c
		if _, clash := left.data[c]; clash {
			name = c + "_y"
		}
		rightNames[c] = name
		columns = append(columns, name)
	}

	rightRows := make(map[string][]int)
	for i := 0; i < right.Len(); i++ {
		k := rowKey(right, on, i)
		rightRows[k] = append(rightRows[k], i)
	}

	data := make(map[string][]any, len(columns))
	emit := func(li, ri int) {
		for _, c := range left.columns {
			data[leftNames[c]] = append(data[leftNames[c]], left.data[c][li])
		}
		for c, name := range rightNames {
			var v any
			if ri >= 0 {
				v = right.data[c][ri]
			}
			data[name] = append(data[name], v)
		}
	}
	for li := 0; li < left.Len(); li++ {
		matches := rightRows[rowKey(left, on, li)]
		if len(matches) == 0 && how == Left {
			emit(li, -1)
			continue
		}
		for _, ri := range matches {
			emit(li, ri)
		}
	}
	for _, c := range columns {
		if data[c] == nil {
			data[c] = []any{}
		}
	}
	return New(columns, data, nil)
}

// Join left-joins other onto f by index label. Overlapping column names are an
// error, as there is no way to tell the two sides apart.
func (f *Frame) Join(other *Frame) (*Frame, error) {
	for _, c := range other.columns {
		if _, ok := f.data[c]; ok {
			return nil, fmt.Errorf("%w %q: columns overlap", ErrDuplicateColumn, c)
		}
	}
	columns := append(f.Columns(), other.columns...)
	pos := positions(other.index)

	var index []string
	data := make(map[string][]any, len(columns))
	for i, label := range f.index {
		matches := pos[label]
		if len(matches) == 0 {
			matches = []int{-1}
		}
		for _, ri := range matches {
			index = append(index, label)
			for _, c := range f.columns {
				data[c] = append(data[c], f.data[c][i])
			}
			for _, c := range other.columns {
				var v any
				if ri >= 0 {
					v = other.data[c][ri]
				}
				data[c] = append(data[c], v)
			}
		}
	}
	for _, c := range columns {
		if data[c] == nil {
			data[c] = []any{}
		}
	}
	if index == nil {
		index = []string{}
	}
	return New(columns, data, index)
}

func positions(index []string) map[string][]int {
	pos := make(map[string][]int, len(index))
	for i, label := range index {
		pos[label] = append(pos[label], i)
	}
	return pos
}

func rowKey(f *Frame, on []string, i int) string {
	parts := make([]string, len(on))
	for j, c := range on {
		parts[j] = fmt.Sprintf("%T:%v", f.data[c][i], f.data[c][i])
	}
	return strings.Join(parts, "\x00")
}
