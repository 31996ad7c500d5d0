// SPDX-License-Identifier: MIT
// Package: linop
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep constructors/combinators minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package linop

// ValidateShape ensures both extents of a prospective operator are positive.
// Returns ErrBadShape otherwise.
// Complexity: O(1).
func ValidateShape(s Shape) error {
	if !s.Valid() {
		return ErrBadShape
	}
	return nil
}

// ValidateNotNil ensures the operator reference is non-nil.
// Returns ErrNilOperator otherwise.
// Complexity: O(1).
func ValidateNotNil(op *Operator) error {
	if op == nil {
		return ErrNilOperator
	}
	return nil
}

// ValidateSameShape ensures operators a and b have identical shapes.
// Assumes both are non-nil (callers validate first).
// Returns ErrShapeMismatch otherwise.
// Complexity: O(1).
func ValidateSameShape(a, b *Operator) error {
	if a.shape != b.shape {
		return ErrShapeMismatch
	}
	return nil
}

// ValidateComposable ensures a∘b is defined, i.e. a.Cols == b.Rows.
// Assumes both are non-nil.
// Returns ErrShapeMismatch otherwise.
// Complexity: O(1).
func ValidateComposable(a, b *Operator) error {
	if a.shape.Cols != b.shape.Rows {
		return ErrShapeMismatch
	}
	return nil
}

// ValidateBatch ensures the batch reference is non-nil.
// Returns ErrNilBatch otherwise.
// Complexity: O(1).
func ValidateBatch(x *Batch) error {
	if x == nil {
		return ErrNilBatch
	}
	return nil
}

// ValidateBatchRows ensures a non-nil batch has exactly n rows.
// Returns ErrNilBatch or ErrShapeMismatch.
// Complexity: O(1).
func ValidateBatchRows(x *Batch, n int) error {
	if err := ValidateBatch(x); err != nil {
		return err
	}
	if x.rows != n {
		return ErrShapeMismatch
	}
	return nil
}
