// SPDX-License-Identifier: MIT

// Package linop: the algebraic combinators. Every function here is a pure
// constructor: it validates shapes eagerly (fail fast, never at first
// apply), closes over its operands and returns a new immutable Operator
// whose closures route through them. Composite operators therefore hold no
// state besides a derived shape and two closures.
package linop

import "fmt"

// addSub builds the pointwise combination a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub to keep validation and closure construction in one
// place, mirroring how both directions must combine identically.
func addSub(a, b *Operator, sign float64, tag string) (*Operator, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linopErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, linopErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("%s: %s vs %s: %w", tag, a.shape, b.shape, err)
	}

	// combine evaluates both closures on the same input and accumulates
	// ya + sign*yb into a fresh batch, never trusting either closure to
	// hand back private storage.
	combine := func(fa, fb func(*Batch) (*Batch, error)) ApplyFunc {
		return func(x *Batch) (*Batch, error) {
			ya, err := fa(x)
			if err != nil {
				return nil, err
			}
			yb, err := fb(x)
			if err != nil {
				return nil, err
			}
			out := ya.Clone()
			out.addScaled(sign, yb)
			return out, nil
		}
	}

	return &Operator{
		shape:   a.shape,
		forward: combine(a.Apply, b.Apply),
		adjoint: combine(a.ApplyAdjoint, b.ApplyAdjoint),
	}, nil
}

// Add returns the operator (a + b): both directions are the pointwise sums
// of the operands' corresponding directions evaluated on the same input.
//
// Inputs:
//   - a, b: non-nil operators of identical shape.
//
// Returns:
//   - *Operator: shape a.Shape(); adjoint-consistent whenever a and b are.
//   - error: ErrNilOperator or ErrShapeMismatch naming both shapes.
//
// Complexity:
//   - Construction O(1); each apply costs one apply of a plus one of b plus
//     an O(rows·cols) accumulation.
func Add(a, b *Operator) (*Operator, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the operator (a - b). Same contract as Add.
func Sub(a, b *Operator) (*Operator, error) { return addSub(a, b, -1, opSub) }

// Neg returns the operator (-a): both directions negate their output.
//
// Returns ErrNilOperator for a nil operand.
// Complexity: construction O(1); each apply adds an O(rows·cols) scale.
func Neg(a *Operator) (*Operator, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linopErrorf(opNeg, err)
	}
	return Scale(-1, a)
}

// Scale returns the operator (alpha*a). The backend is real-valued, so the
// adjoint direction scales by the same alpha (a real scalar is its own
// conjugate).
//
// Returns ErrNilOperator for a nil operand.
// Complexity: construction O(1); each apply adds an O(rows·cols) scale.
func Scale(alpha float64, a *Operator) (*Operator, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linopErrorf(opScale, err)
	}

	scaled := func(f func(*Batch) (*Batch, error)) ApplyFunc {
		return func(x *Batch) (*Batch, error) {
			y, err := f(x)
			if err != nil {
				return nil, err
			}
			out := y.Clone()
			out.scale(alpha)
			return out, nil
		}
	}

	return &Operator{
		shape:   a.shape,
		forward: scaled(a.Apply),
		adjoint: scaled(a.ApplyAdjoint),
	}, nil
}

// Compose returns the operator (a∘b), the matrix product A·B: forward
// applies b first then a; the adjoint composes in the reverse order,
// (A·B)* = B*·A*.
//
// Inputs:
//   - a, b: non-nil operators with a.Cols() == b.Rows().
//
// Returns:
//   - *Operator: shape (a.Rows(), b.Cols()).
//   - error: ErrNilOperator, or ErrShapeMismatch naming both shapes.
//
// Determinism:
//   - Inner shape checks run here, once; the composed closures re-validate
//     batch extents on every call through Apply.
//
// Complexity:
//   - Construction O(1); each apply costs one apply of each operand.
func Compose(a, b *Operator) (*Operator, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linopErrorf(opCompose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, linopErrorf(opCompose, err)
	}
	if err := ValidateComposable(a, b); err != nil {
		return nil, fmt.Errorf("%s: %s · %s: %w", opCompose, a.shape, b.shape, err)
	}

	return &Operator{
		shape: Shape{Rows: a.shape.Rows, Cols: b.shape.Cols},
		forward: func(x *Batch) (*Batch, error) {
			mid, err := b.Apply(x)
			if err != nil {
				return nil, err
			}
			return a.Apply(mid)
		},
		adjoint: func(y *Batch) (*Batch, error) {
			mid, err := a.ApplyAdjoint(y)
			if err != nil {
				return nil, err
			}
			return b.ApplyAdjoint(mid)
		},
	}, nil
}

// Mul is Compose under the conventional matrix-product name.
func Mul(a, b *Operator) (*Operator, error) { return Compose(a, b) }
