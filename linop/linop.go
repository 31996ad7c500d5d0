// SPDX-License-Identifier: MIT

// Package linop: the Operator type — construction, application and the O(1)
// adjoint. The algebraic combinators live in algebra.go, block assembly in
// block.go, conversions in convert.go.
package linop

import "fmt"

// Operator is a matrix-free linear operator: a Shape plus forward and
// adjoint closures. It is an immutable value — combinators build new
// Operators and never touch existing ones — so sharing an Operator between
// goroutines requires no synchronization beyond reentrant closures.
//
// Invariant (caller obligation, checkable via CheckAdjoint): the two
// closures are mathematically adjoint, ⟨forward(x), y⟩ = ⟨x, adjoint(y)⟩
// for all conforming x, y. The algebra preserves this invariant under every
// combinator but cannot verify it for leaf operators.
type Operator struct {
	shape   Shape     // immutable (rows, cols)
	forward ApplyFunc // maps Cols-row batches to Rows-row batches
	adjoint ApplyFunc // maps Rows-row batches to Cols-row batches
}

// New builds an operator from a shape and its two closures.
//
// Inputs:
//   - rows, cols: positive extents; the operator maps length-cols vectors to
//     length-rows vectors.
//   - forward, adjoint: the two directions; both non-nil. They must accept a
//     batch with the matching row count and return one with the other row
//     count and the same column count — Apply/ApplyAdjoint enforce this at
//     every call, so a misbehaving closure fails loudly instead of silently
//     corrupting downstream compositions.
//
// Returns:
//   - *Operator: a fresh immutable operator.
//   - error: ErrBadShape or ErrNilFunc, wrapped with the New tag.
//
// Determinism:
//   - Pure construction; no closure is invoked.
//
// Complexity:
//   - Time O(1), Space O(1).
func New(rows, cols int, forward, adjoint ApplyFunc) (*Operator, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := ValidateShape(shape); err != nil {
		return nil, linopErrorf(opNew, err)
	}
	if forward == nil || adjoint == nil {
		return nil, linopErrorf(opNew, ErrNilFunc)
	}
	return &Operator{shape: shape, forward: forward, adjoint: adjoint}, nil
}

// Shape returns the operator's (rows, cols) extent.
// Complexity: O(1).
func (op *Operator) Shape() Shape { return op.shape }

// Rows returns the output vector length.
// Complexity: O(1).
func (op *Operator) Rows() int { return op.shape.Rows }

// Cols returns the input vector length.
// Complexity: O(1).
func (op *Operator) Cols() int { return op.shape.Cols }

// Adjoint returns the adjoint operator: shape transposed, forward and
// adjoint closures swapped. No recomputation happens — the swap is O(1) —
// and applying Adjoint twice yields an operator behaviorally identical to
// the original.
//
// Complexity: O(1).
func (op *Operator) Adjoint() *Operator {
	return &Operator{shape: op.shape.T(), forward: op.adjoint, adjoint: op.forward}
}

// run invokes one direction, enforcing the shape contract on both sides:
// the input batch must have inRows rows and the closure's output must have
// outRows rows and the input's column count.
func (op *Operator) run(tag string, f ApplyFunc, x *Batch, inRows, outRows int) (*Batch, error) {
	if err := ValidateBatchRows(x, inRows); err != nil {
		if x != nil {
			return nil, fmt.Errorf("%s: input has %d rows, operator %s wants %d: %w",
				tag, x.rows, op.shape, inRows, err)
		}
		return nil, linopErrorf(tag, err)
	}
	y, err := f(x)
	if err != nil {
		return nil, linopErrorf(tag, err)
	}
	if y == nil {
		return nil, linopErrorf(tag, ErrNilBatch)
	}
	if y.rows != outRows || y.cols != x.cols {
		return nil, fmt.Errorf("%s: closure returned %dx%d, operator %s wants %dx%d: %w",
			tag, y.rows, y.cols, op.shape, outRows, x.cols, ErrShapeMismatch)
	}
	return y, nil
}

// Apply maps a batch of length-Cols column vectors through the operator.
//
// Inputs:
//   - x: non-nil batch with Rows() == op.Cols(); zero columns are legal and
//     produce a zero-column result.
//
// Returns:
//   - *Batch: op.Rows()-row batch with x.Cols() columns.
//   - error: ErrNilBatch / ErrShapeMismatch (input or closure contract), or
//     the closure's own error, all wrapped with the Apply tag.
//
// Complexity:
//   - One closure invocation plus O(1) checks.
func (op *Operator) Apply(x *Batch) (*Batch, error) {
	return op.run(opApply, op.forward, x, op.shape.Cols, op.shape.Rows)
}

// ApplyAdjoint maps a batch of length-Rows column vectors through the
// adjoint direction. Same contract as Apply with the extents swapped.
func (op *Operator) ApplyAdjoint(y *Batch) (*Batch, error) {
	return op.run(opApplyAdjoint, op.adjoint, y, op.shape.Rows, op.shape.Cols)
}

// ApplyVec is the single-vector convenience: it canonicalizes x into a
// one-column batch, applies the operator, and unwraps the result. Batched
// and single application are equivalent by construction — there is exactly
// one code path.
//
// Complexity: O(len) copies around one closure invocation.
func (op *Operator) ApplyVec(x []float64) ([]float64, error) {
	b, err := FromVec(x)
	if err != nil {
		return nil, linopErrorf(opApply, err)
	}
	y, err := op.Apply(b)
	if err != nil {
		return nil, err
	}
	return y.Vec()
}

// ApplyAdjointVec is the single-vector convenience for the adjoint direction.
func (op *Operator) ApplyAdjointVec(y []float64) ([]float64, error) {
	b, err := FromVec(y)
	if err != nil {
		return nil, linopErrorf(opApplyAdjoint, err)
	}
	x, err := op.ApplyAdjoint(b)
	if err != nil {
		return nil, err
	}
	return x.Vec()
}

// String renders the operator as "Operator(rxc)" for debugging.
func (op *Operator) String() string {
	return fmt.Sprintf("Operator(%s)", op.shape)
}
