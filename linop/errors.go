// SPDX-License-Identifier: MIT
// Package linop: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the linop
// package. All constructors and combinators MUST return these sentinels and
// tests MUST check them via errors.Is. No function panics on user-triggered
// error conditions; panics are reserved for the gonum interop boundary where
// the host interface contract demands them (MatOperator.At).

package linop

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linop: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested operator or batch shape is
	// invalid (rows <= 0, cols <= 0 for operators, cols < 0 for batches).
	ErrBadShape = errors.New("linop: invalid shape")

	// ErrShapeMismatch indicates incompatible dimensions anywhere in the
	// algebra: Add/Sub operands of different shape, Compose inner mismatch,
	// block grids with inconsistent block sizes, or an input batch whose
	// leading dimension does not match the operator.
	ErrShapeMismatch = errors.New("linop: shape mismatch")

	// ErrNilOperator indicates a nil *Operator receiver or argument.
	ErrNilOperator = errors.New("linop: nil operator")

	// ErrNilFunc indicates a missing forward or adjoint closure at
	// construction time.
	ErrNilFunc = errors.New("linop: nil apply function")

	// ErrNilBatch indicates a nil *Batch argument.
	ErrNilBatch = errors.New("linop: nil batch")

	// ErrBadOrder indicates an unknown reshape order token passed to
	// Vectorized (the valid tokens live in package ndarray).
	ErrBadOrder = errors.New("linop: invalid reshape order")

	// ErrEmptyGrid indicates BMat/HorzCat/VertCat received no blocks at all.
	ErrEmptyGrid = errors.New("linop: empty block grid")

	// ErrRaggedGrid indicates block-grid rows of differing lengths.
	ErrRaggedGrid = errors.New("linop: block grid rows must have equal length")

	// ErrAmbiguousBlock indicates a block-grid row or column consisting only
	// of nil (zero) blocks, leaving its dimension undeterminable. Supplying
	// at least one concrete block per row and column is a caller obligation,
	// not something the algebra may guess.
	ErrAmbiguousBlock = errors.New("linop: block row/column has no operator to infer its size")

	// ErrNilMatrix indicates a nil host matrix passed to the conversion
	// boundary.
	ErrNilMatrix = errors.New("linop: nil matrix")

	// ErrBadTrials indicates a non-positive trial count for CheckAdjoint.
	ErrBadTrials = errors.New("linop: trials must be positive")

	// ErrAdjointMismatch indicates that a randomized ⟨Ax,y⟩ vs ⟨x,A*y⟩ probe
	// exceeded tolerance: the forward and adjoint closures are not adjoint.
	ErrAdjointMismatch = errors.New("linop: forward and adjoint closures are not adjoint")
)
