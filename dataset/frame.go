package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrRowCountMismatch indicates a column or frame whose row count
	// disagrees with the receiver's.
	ErrRowCountMismatch = errors.New("dataset: row count mismatch")

	// ErrDuplicateColumn indicates an attempt to add a column under a name
	// that already exists.
	ErrDuplicateColumn = errors.New("dataset: duplicate column name")

	// ErrColumnNotFound indicates a lookup of a column name that does not exist.
	ErrColumnNotFound = errors.New("dataset: column not found")

	// ErrColumnMismatch indicates two frames with differing column sets
	// where identical sets are required (row concatenation).
	ErrColumnMismatch = errors.New("dataset: column set mismatch")
)

// Frame is a named-column, ordered-row table of float64 values.
// The zero number of columns is valid; the first AddColumn fixes the row count.
type Frame struct {
	names []string
	cols  [][]float64
	index map[string]int
}

// New returns an empty Frame.
func New() *Frame {
	return &Frame{index: make(map[string]int)}
}

// NumRows reports the row count (0 for an empty Frame).
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}

	return len(f.cols[0])
}

// NumCols reports the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns the column names in insertion order (a copy).
func (f *Frame) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)

	return out
}

// AddColumn appends a named column. The values slice is copied.
// Returns ErrDuplicateColumn if name exists, ErrRowCountMismatch if the
// Frame is non-empty and len(values) differs from NumRows.
//
// Complexity: O(len(values)).
func (f *Frame) AddColumn(name string, values []float64) error {
	if _, ok := f.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	if len(f.cols) > 0 && len(values) != f.NumRows() {
		return fmt.Errorf("%w: column %q has %d rows, frame has %d",
			ErrRowCountMismatch, name, len(values), f.NumRows())
	}

	col := make([]float64, len(values))
	copy(col, values)
	f.index[name] = len(f.cols)
	f.names = append(f.names, name)
	f.cols = append(f.cols, col)

	return nil
}

// Column returns the values of the named column. The returned slice is the
// backing storage; callers must not mutate it.
func (f *Frame) Column(name string) ([]float64, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	return f.cols[i], nil
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]

	return ok
}

// Bind column-binds every column of other onto f, preserving other's
// column order. Rows align purely by position: Bind validates equal row
// counts and duplicate names but performs no key join.
//
// Complexity: O(rows · cols of other).
func (f *Frame) Bind(other *Frame) error {
	if other == nil || other.NumCols() == 0 {
		return nil
	}
	if f.NumCols() > 0 && f.NumRows() != other.NumRows() {
		return fmt.Errorf("%w: binding %d rows onto %d",
			ErrRowCountMismatch, other.NumRows(), f.NumRows())
	}

	var err error
	for i, name := range other.names {
		if err = f.AddColumn(name, other.cols[i]); err != nil {
			return err
		}
	}

	return nil
}

// Append row-concatenates other onto f. Both frames must carry identical
// column names in identical order.
//
// Complexity: O(rows · cols of other).
func (f *Frame) Append(other *Frame) error {
	if other == nil || other.NumCols() == 0 {
		return nil
	}
	if len(f.names) != len(other.names) {
		return fmt.Errorf("%w: %d columns vs %d", ErrColumnMismatch, len(f.names), len(other.names))
	}
	for i, name := range f.names {
		if other.names[i] != name {
			return fmt.Errorf("%w: %q vs %q at position %d", ErrColumnMismatch, name, other.names[i], i)
		}
	}
	for i := range f.cols {
		f.cols[i] = append(f.cols[i], other.cols[i]...)
	}

	return nil
}

// FromMatrix builds a Frame from the columns of m, named in order.
// Returns ErrColumnMismatch when len(names) differs from m's column count.
//
// Complexity: O(rows · cols).
func FromMatrix(m mat.Matrix, names []string) (*Frame, error) {
	r, c := m.Dims()
	if len(names) != c {
		return nil, fmt.Errorf("%w: %d names for %d matrix columns", ErrColumnMismatch, len(names), c)
	}

	var (
		out = New()
		col = make([]float64, r)
		err error
	)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			col[i] = m.At(i, j)
		}
		if err = out.AddColumn(names[j], col); err != nil {
			return nil, err
		}
	}

	return out, nil
}
