// SPDX-License-Identifier: MIT

// Package linop implements a matrix-free linear-operator algebra: operators
// that behave like matrices — they have a shape and support application,
// addition, scaling, composition, adjoints and block assembly — but are
// defined by forward and adjoint closures instead of stored coefficients.
//
// What:
//
//   - Operator: an immutable value holding a Shape and two closures
//     (forward apply and adjoint apply). Every combinator returns a new
//     Operator; nothing is ever mutated after construction.
//   - Batch: the canonical "columns of vectors" container every closure
//     operates on, so single-vector and batched application share one path.
//   - Algebra: Add, Sub, Neg, Scale, Compose (and its matrix-product alias
//     Mul), plus O(1) Adjoint.
//   - Block assembly: BMat, HorzCat, VertCat combine a grid of operators
//     into one operator with block-matrix routing.
//   - Vectorized: lifts a function on one N-D block into a column-wise
//     ApplyFunc, bridging array kernels to the flat-vector algebra.
//   - Conversion: ToMatrix materializes an operator densely (testing only),
//     ToMatOperator exports to a gonum mat.Matrix, ToLinearOperator imports
//     any gonum mat.Matrix.
//   - CheckAdjoint: randomized ⟨Ax,y⟩ = ⟨x,A*y⟩ consistency probe.
//
// Why:
//
//   - Convolutions, finite-difference stencils and stacked systems imply
//     matrices far too large to store; expressing them as closures keeps
//     memory at O(kernel) while the algebra keeps shapes and adjoints
//     consistent under arbitrary composition.
//
// Errors:
//
//   - Every dimension defect is detected eagerly at construction or assembly
//     time and reported via sentinel errors (ErrShapeMismatch and friends)
//     matched with errors.Is; only input-length mismatches can surface at
//     apply time, since closures carry no inspectable structure.
//
// Concurrency:
//
//   - Operators are stateless values; applying the same Operator from many
//     goroutines is safe as long as the user-supplied closures are reentrant.
//
// See the operators package for ready-made convolution and gradient
// producers, and docs or example_test.go for worked usage.
package linop
