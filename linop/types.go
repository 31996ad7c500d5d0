// SPDX-License-Identifier: MIT

// Package linop: domain types shared across the operator algebra.
// This file intentionally contains ONLY domain-facing types (Shape, the
// closure signatures, operation tags). Errors and validators live in
// dedicated files (errors.go, validators.go) per the package conventions.
package linop

import (
	"fmt"

	"github.com/katalvlaran/matfree/ndarray"
)

// Shape is an operator's (rows, cols) extent. An operator with shape (r, c)
// maps length-c vectors to length-r vectors. Shapes are plain values and
// never change after an operator is built.
type Shape struct {
	Rows int // output vector length
	Cols int // input vector length
}

// Valid reports whether both extents are positive.
// Complexity: O(1).
func (s Shape) Valid() bool { return s.Rows > 0 && s.Cols > 0 }

// T returns the transposed shape (adjoint operators carry this shape).
// Complexity: O(1).
func (s Shape) T() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// String renders the shape as "rxc" for error messages and logs.
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// ApplyFunc is the closure signature of both operator directions: it maps a
// batch of column vectors to a batch with the same number of columns. An
// ApplyFunc must be a pure function of its input and its closed-over data,
// and must not retain or mutate the input batch.
type ApplyFunc func(x *Batch) (*Batch, error)

// BlockFunc transforms one N-dimensional block; Vectorized lifts it to an
// ApplyFunc operating column-wise on flattened blocks. A BlockFunc must not
// retain its argument.
type BlockFunc func(a *ndarray.Array) (*ndarray.Array, error)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew           = "New"
	opApply         = "Apply"
	opApplyAdjoint  = "ApplyAdjoint"
	opAdd           = "Add"
	opSub           = "Sub"
	opNeg           = "Neg"
	opScale         = "Scale"
	opCompose       = "Compose"
	opBMat          = "BMat"
	opHorzCat       = "HorzCat"
	opVertCat       = "VertCat"
	opVectorized    = "Vectorized"
	opToMatrix      = "ToMatrix"
	opToMatOperator = "ToMatOperator"
	opToLinOp       = "ToLinearOperator"
	opCheckAdjoint  = "CheckAdjoint"
)

// linopErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Call only with a non-nil err.
func linopErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
