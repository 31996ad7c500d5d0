// Package matfree is your toolkit for matrix-free linear algebra: operators
// that act like matrices — shapes, products, adjoints, block assembly —
// while never materializing a single coefficient.
//
// 🚀 What is matfree?
//
//	A small, composable library for expressing large structured linear
//	transformations as forward/adjoint function pairs:
//		• Core algebra: add, subtract, scale, compose, adjoint — all O(1)
//		  constructors returning immutable operator values
//		• Block assembly: build big operators from grids of small ones
//		• Vectorized adapter: write a kernel once against N-D blocks,
//		  apply it to flat vectors and batches alike
//		• Producers: N-D convolution and central-difference gradients
//		• Interop: export to / import from gonum's mat.Matrix
//		• Self-test: randomized ⟨Ax,y⟩ = ⟨x,A*y⟩ adjoint checking
//
// ✨ Why choose matfree?
//
//   - Memory-frugal – a blur over a 4096² image is a 16M×16M matrix; here
//     it is a small kernel and two closures
//   - Fail-fast – every shape defect is caught at construction time with
//     sentinel errors, never deep inside a solve
//   - Pure values – operators are immutable and safely shared between
//     goroutines
//
// Everything is organized under three subpackages:
//
//	linop/     — the operator algebra: Operator, Batch, combinators,
//	             block assembly, conversions, adjoint checking
//	ndarray/   — the N-D float64 array backend: reshape, flip, slice,
//	             full convolution
//	operators/ — ready-made producers: Convolve, Gradient,
//	             CentralDiffWeights
//
// Quick sketch — a forward-difference operator on a 3×3 image:
//
//	kernel, _ := ndarray.FromFlat([]float64{-1, 1}, []int{1, 2}, ndarray.RowMajor)
//	C, _ := operators.Convolve(kernel, []int{3, 3})
//	y, _ := C.ApplyVec(imageRowMajor) // no 9×9 matrix anywhere
//
// Dive into the per-package docs and example_test.go files for full usage.
//
//	go get github.com/katalvlaran/matfree
package matfree
