// SPDX-License-Identifier: MIT

// Package linop: Batch is the canonical "array of column vectors" every
// ApplyFunc operates on. Storing columns contiguously (column-major) makes
// the per-column work of Vectorized and the block router a plain slice walk.
package linop

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Batch holds cols column vectors of length rows, column-major: column j
// occupies data[j*rows : (j+1)*rows]. A batch with zero columns is a legal
// value (it is what an operator applied to an empty batch returns).
type Batch struct {
	rows, cols int       // rows > 0; cols >= 0
	data       []float64 // flat column-major storage, length rows*cols
}

// batchErrorf wraps an underlying error with Batch method context.
func batchErrorf(method string, err error) error {
	return fmt.Errorf("Batch.%s: %w", method, err)
}

// NewBatch creates a zero-filled batch of cols column vectors of length rows.
// rows must be positive; cols may be zero (empty batch).
// Returns ErrBadShape otherwise.
// Complexity: O(rows*cols).
func NewBatch(rows, cols int) (*Batch, error) {
	if rows <= 0 || cols < 0 {
		return nil, batchErrorf("New", ErrBadShape)
	}
	return &Batch{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromVec canonicalizes a single vector into a one-column batch, copying x.
// This is the single entry point that lets every downstream code path treat
// vectors and batches uniformly.
// Returns ErrBadShape for an empty vector.
// Complexity: O(len(x)).
func FromVec(x []float64) (*Batch, error) {
	if len(x) == 0 {
		return nil, batchErrorf("FromVec", ErrBadShape)
	}
	data := make([]float64, len(x))
	copy(data, x)
	return &Batch{rows: len(x), cols: 1, data: data}, nil
}

// FromCols builds a batch from explicit columns, all of equal positive
// length. Columns are copied.
// Returns ErrBadShape for no columns or an empty first column, and
// ErrShapeMismatch when column lengths disagree.
// Complexity: O(rows*cols).
func FromCols(cols ...[]float64) (*Batch, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, batchErrorf("FromCols", ErrBadShape)
	}
	rows := len(cols[0])
	b, err := NewBatch(rows, len(cols))
	if err != nil {
		return nil, err
	}
	for j, c := range cols {
		if len(c) != rows {
			return nil, fmt.Errorf("Batch.FromCols: column %d has length %d, want %d: %w",
				j, len(c), rows, ErrShapeMismatch)
		}
		copy(b.colView(j), c)
	}
	return b, nil
}

// Identity returns the n×n identity batch — the basis-vector probe used by
// ToMatrix to materialize an operator in one batched application.
// Returns ErrBadShape for n <= 0.
// Complexity: O(n²).
func Identity(n int) (*Batch, error) {
	b, err := NewBatch(n, n)
	if err != nil {
		return nil, batchErrorf("Identity", ErrBadShape)
	}
	for j := 0; j < n; j++ {
		b.data[j*n+j] = 1
	}
	return b, nil
}

// Rows returns the vector length.
// Complexity: O(1).
func (b *Batch) Rows() int { return b.rows }

// Cols returns the number of column vectors.
// Complexity: O(1).
func (b *Batch) Cols() int { return b.cols }

// colView returns column j's backing slice without copying. Internal only;
// callers outside the package get copies via Col.
func (b *Batch) colView(j int) []float64 {
	return b.data[j*b.rows : (j+1)*b.rows]
}

// At returns element (i, j).
// Returns ErrShapeMismatch for out-of-range indices.
// Complexity: O(1).
func (b *Batch) At(i, j int) (float64, error) {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return 0, fmt.Errorf("Batch.At(%d,%d): %w", i, j, ErrShapeMismatch)
	}
	return b.data[j*b.rows+i], nil
}

// Col returns a copy of column j.
// Returns ErrShapeMismatch for an out-of-range column.
// Complexity: O(rows).
func (b *Batch) Col(j int) ([]float64, error) {
	if j < 0 || j >= b.cols {
		return nil, fmt.Errorf("Batch.Col(%d): %w", j, ErrShapeMismatch)
	}
	out := make([]float64, b.rows)
	copy(out, b.colView(j))
	return out, nil
}

// SetCol overwrites column j with a copy of v.
// Returns ErrShapeMismatch for an out-of-range column or wrong length.
// Complexity: O(rows).
func (b *Batch) SetCol(j int, v []float64) error {
	if j < 0 || j >= b.cols {
		return fmt.Errorf("Batch.SetCol(%d): %w", j, ErrShapeMismatch)
	}
	if len(v) != b.rows {
		return fmt.Errorf("Batch.SetCol(%d): len %d, want %d: %w",
			j, len(v), b.rows, ErrShapeMismatch)
	}
	copy(b.colView(j), v)
	return nil
}

// Vec returns a copy of the single column of a one-column batch — the
// inverse of FromVec.
// Returns ErrShapeMismatch when the batch does not have exactly one column.
// Complexity: O(rows).
func (b *Batch) Vec() ([]float64, error) {
	if b.cols != 1 {
		return nil, fmt.Errorf("Batch.Vec: %d columns, want 1: %w", b.cols, ErrShapeMismatch)
	}
	return b.Col(0)
}

// Clone returns a deep copy of b.
// Complexity: O(rows*cols).
func (b *Batch) Clone() *Batch {
	data := make([]float64, len(b.data))
	copy(data, b.data)
	return &Batch{rows: b.rows, cols: b.cols, data: data}
}

// EqualApprox reports whether b and other share a shape and all elements
// differ by at most eps in absolute value.
// Complexity: O(rows*cols).
func (b *Batch) EqualApprox(other *Batch, eps float64) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.data {
		if math.Abs(b.data[i]-other.data[i]) > eps {
			return false
		}
	}
	return true
}

// addScaled accumulates b += alpha*other in place. Both batches must share a
// shape; internal callers guarantee it. The identical column-major layouts
// let the whole accumulation run as one flat floats kernel.
func (b *Batch) addScaled(alpha float64, other *Batch) {
	if len(b.data) > 0 {
		floats.AddScaled(b.data, alpha, other.data)
	}
}

// scale multiplies every element of b by alpha in place.
func (b *Batch) scale(alpha float64) {
	if len(b.data) > 0 {
		floats.Scale(alpha, b.data)
	}
}

// rowSlice copies rows [from, to) of every column into a fresh batch.
// Internal: the block router uses it to split inputs by block extents.
func (b *Batch) rowSlice(from, to int) *Batch {
	out := &Batch{rows: to - from, cols: b.cols, data: make([]float64, (to-from)*b.cols)}
	for j := 0; j < b.cols; j++ {
		copy(out.colView(j), b.colView(j)[from:to])
	}
	return out
}

// vcatBatches stacks parts vertically into one batch. All parts must share a
// column count; internal callers guarantee it.
func vcatBatches(parts []*Batch) *Batch {
	rows := 0
	for _, p := range parts {
		rows += p.rows
	}
	out := &Batch{rows: rows, cols: parts[0].cols, data: make([]float64, rows*parts[0].cols)}
	off := 0
	for _, p := range parts {
		for j := 0; j < p.cols; j++ {
			copy(out.colView(j)[off:off+p.rows], p.colView(j))
		}
		off += p.rows
	}
	return out
}
