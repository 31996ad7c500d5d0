// SPDX-License-Identifier: MIT

// Package linop: the vectorized-apply adapter. Operator closures work on
// flat column batches, but numeric kernels (convolution, stencils) are most
// naturally written against one N-D block; Vectorized bridges the two.
package linop

import (
	"fmt"

	"github.com/katalvlaran/matfree/ndarray"
)

// Vectorized lifts a BlockFunc into an ApplyFunc: for each column of the
// input batch independently, the flat column is reshaped into dims honoring
// order, f is applied to the block, and the result is flattened back in the
// same order; output columns are reassembled in the input order. Writing a
// kernel once against N-D blocks this way serves single vectors, batches,
// and — with a different inner f — the adjoint direction alike.
//
// Inputs:
//   - dims: the block shape; non-empty, all sizes positive. The returned
//     ApplyFunc accepts batches with product(dims) rows.
//   - order: ndarray.RowMajor, ndarray.ColMajor or ndarray.AutoOrder; the
//     reshape element order (AutoOrder behaves as RowMajor for the flat
//     vectors handled here).
//   - f: non-nil block transform. Its output shape fixes the row count of
//     the ApplyFunc's result and must be consistent across columns.
//
// Returns:
//   - ApplyFunc: the column-wise adapter.
//   - error: ErrBadShape (bad dims), ErrBadOrder, or ErrNilFunc, wrapped
//     with the Vectorized tag.
//
// Edge cases:
//   - A zero-column input yields a zero-column output with product(dims)
//     rows (f is never invoked, so its output extent is unknowable; a
//     shape-preserving f — the only kind square operators are built from —
//     makes that row count exact).
//
// Determinism:
//   - Columns are processed left to right; no shared state between columns.
//
// Complexity:
//   - O(cols · (reshape + cost(f))) per application.
func Vectorized(dims []int, order ndarray.Order, f BlockFunc) (ApplyFunc, error) {
	if err := ndarray.ValidateDims(dims); err != nil {
		return nil, linopErrorf(opVectorized, ErrBadShape)
	}
	if !ndarray.ValidOrder(order) {
		return nil, linopErrorf(opVectorized, ErrBadOrder)
	}
	if f == nil {
		return nil, linopErrorf(opVectorized, ErrNilFunc)
	}

	shape := make([]int, len(dims))
	copy(shape, dims)
	inRows := ndarray.Prod(shape)

	return func(x *Batch) (*Batch, error) {
		if err := ValidateBatchRows(x, inRows); err != nil {
			return nil, linopErrorf(opVectorized, err)
		}
		if x.cols == 0 {
			return NewBatch(inRows, 0)
		}

		var out *Batch
		for j := 0; j < x.cols; j++ {
			block, err := ndarray.FromFlat(x.colView(j), shape, order)
			if err != nil {
				return nil, linopErrorf(opVectorized, err)
			}
			res, err := f(block)
			if err != nil {
				return nil, linopErrorf(opVectorized, err)
			}
			if res == nil {
				return nil, linopErrorf(opVectorized, ErrNilBatch)
			}
			flat, err := res.Flatten(order)
			if err != nil {
				return nil, linopErrorf(opVectorized, err)
			}
			if out == nil {
				// The first column fixes the output extent.
				if out, err = NewBatch(len(flat), x.cols); err != nil {
					return nil, linopErrorf(opVectorized, err)
				}
			}
			if len(flat) != out.rows {
				return nil, fmt.Errorf("%s: column %d produced %d rows, column 0 produced %d: %w",
					opVectorized, j, len(flat), out.rows, ErrShapeMismatch)
			}
			copy(out.colView(j), flat)
		}
		return out, nil
	}, nil
}
