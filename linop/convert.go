// SPDX-License-Identifier: MIT

// Package linop: the conversion boundary to the host numeric library
// (gonum/mat). Operators cross it in three ways: ToMatrix materializes the
// dense coefficients, ToMatOperator exports a matrix-free mat.Matrix view,
// and ToLinearOperator imports any mat.Matrix into the algebra.
package linop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToMatrix materializes op as a dense gonum matrix by applying it to the
// identity batch — every standard basis vector in one batched call — and
// assembling the output columns.
//
// This exists for testing, debugging and export. Materializing defeats the
// matrix-free design: cost is O(cols) full applications and O(rows·cols)
// memory, so never call it on large operators in production paths.
//
// Returns ErrNilOperator, or any apply-time failure wrapped with the
// ToMatrix tag.
func ToMatrix(op *Operator) (*mat.Dense, error) {
	if err := ValidateNotNil(op); err != nil {
		return nil, linopErrorf(opToMatrix, err)
	}
	eye, err := Identity(op.shape.Cols)
	if err != nil {
		return nil, linopErrorf(opToMatrix, err)
	}
	y, err := op.Apply(eye)
	if err != nil {
		return nil, linopErrorf(opToMatrix, err)
	}

	m := mat.NewDense(op.shape.Rows, op.shape.Cols, nil)
	for j := 0; j < op.shape.Cols; j++ {
		m.SetCol(j, y.colView(j))
	}
	return m, nil
}

// MatOperator is the export side of the boundary: a matrix-free view of an
// Operator satisfying gonum's mat.Matrix, so host solvers and routines can
// consume the operator without materialization.
//
// At probes the operator with a basis vector and therefore costs one full
// application per element; callers needing many coefficients should use
// ToMatrix once instead. Per the mat.Matrix contract, At and T panic on
// failures (out-of-range indices, closure errors) rather than returning
// errors.
type MatOperator struct {
	op *Operator
}

// ToMatOperator wraps op in its host-native view.
// Returns ErrNilOperator for a nil operand.
// Complexity: O(1).
func ToMatOperator(op *Operator) (*MatOperator, error) {
	if err := ValidateNotNil(op); err != nil {
		return nil, linopErrorf(opToMatOperator, err)
	}
	return &MatOperator{op: op}, nil
}

// Dims returns the operator extents, satisfying mat.Matrix.
func (m *MatOperator) Dims() (r, c int) { return m.op.shape.Rows, m.op.shape.Cols }

// At returns the (i, j) coefficient by applying the operator to the j-th
// basis vector. Panics on out-of-range indices or closure failure, per the
// mat.Matrix contract.
// Complexity: one full application.
func (m *MatOperator) At(i, j int) float64 {
	if i < 0 || i >= m.op.shape.Rows || j < 0 || j >= m.op.shape.Cols {
		panic(fmt.Sprintf("linop: MatOperator.At(%d,%d) out of range for %s", i, j, m.op.shape))
	}
	e := make([]float64, m.op.shape.Cols)
	e[j] = 1
	col, err := m.op.ApplyVec(e)
	if err != nil {
		panic(fmt.Sprintf("linop: MatOperator.At(%d,%d): %v", i, j, err))
	}
	return col[i]
}

// T returns the transposed view, backed by the adjoint operator (for the
// real-valued backend the adjoint is the transpose).
// Complexity: O(1).
func (m *MatOperator) T() mat.Matrix { return &MatOperator{op: m.op.Adjoint()} }

// MulVecTo computes dst = A·x (or dst = Aᵀ·x when trans is set) matrix-free,
// the access pattern iterative solvers rely on.
//
// Returns ErrShapeMismatch when len(x) or len(dst) disagree with the
// operator extents, or the underlying apply failure.
// Complexity: one application plus O(len) copies.
func (m *MatOperator) MulVecTo(dst []float64, trans bool, x []float64) error {
	apply, inLen, outLen := m.op.ApplyVec, m.op.shape.Cols, m.op.shape.Rows
	if trans {
		apply, inLen, outLen = m.op.ApplyAdjointVec, m.op.shape.Rows, m.op.shape.Cols
	}
	if len(x) != inLen || len(dst) != outLen {
		return fmt.Errorf("MulVecTo: len(x)=%d len(dst)=%d, operator %s: %w",
			len(x), len(dst), m.op.shape, ErrShapeMismatch)
	}
	y, err := apply(x)
	if err != nil {
		return err
	}
	copy(dst, y)
	return nil
}

// ToLinearOperator imports a host matrix into the algebra: the result's
// forward direction multiplies by m and its adjoint by m.T(), both through
// gonum's generic multiplication, so any mat.Matrix implementation —
// including a MatOperator, giving an exact round trip — becomes a composable
// Operator.
//
// Returns ErrNilMatrix for a nil argument and ErrBadShape for degenerate
// extents.
// Complexity: construction O(1); each apply is one gonum multiplication.
func ToLinearOperator(m mat.Matrix) (*Operator, error) {
	if m == nil {
		return nil, linopErrorf(opToLinOp, ErrNilMatrix)
	}
	rows, cols := m.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, linopErrorf(opToLinOp, ErrBadShape)
	}

	mulBy := func(a mat.Matrix, outRows int) ApplyFunc {
		return func(x *Batch) (*Batch, error) {
			if x.cols == 0 {
				return NewBatch(outRows, 0)
			}
			var prod mat.Dense
			prod.Mul(a, batchToDense(x))
			return denseToBatch(&prod), nil
		}
	}

	return &Operator{
		shape:   Shape{Rows: rows, Cols: cols},
		forward: mulBy(m, rows),
		adjoint: mulBy(m.T(), cols),
	}, nil
}

// batchToDense copies a batch into a gonum dense matrix (rows×cols).
func batchToDense(b *Batch) *mat.Dense {
	d := mat.NewDense(b.rows, b.cols, nil)
	for j := 0; j < b.cols; j++ {
		d.SetCol(j, b.colView(j))
	}
	return d
}

// denseToBatch copies a gonum dense matrix into a batch.
func denseToBatch(d *mat.Dense) *Batch {
	rows, cols := d.Dims()
	b := &Batch{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	for j := 0; j < cols; j++ {
		col := b.colView(j)
		for i := 0; i < rows; i++ {
			col[i] = d.At(i, j)
		}
	}
	return b
}
