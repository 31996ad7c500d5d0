// Package operators provides ready-made matrix-free operator producers on
// top of the linop algebra.
//
// What:
//
//   - Convolve: same-mode N-dimensional convolution as a linop.Operator,
//     with the adjoint implemented by convolving with the flipped kernel.
//   - Gradient: central-difference derivative approximation of any order,
//     built as a stencil kernel and delegated to Convolve.
//   - CentralDiffWeights: the finite-difference weight generator both of
//     the above rely on.
//
// Why:
//
//   - Image deblurring, tomography and PDE-flavored inverse problems are
//     posed as linear systems whose matrices are convolutions or derivative
//     stencils — far too large to store, trivial to apply.
//
// Errors:
//
//   - ErrNilKernel: Convolve received a nil kernel.
//   - ErrKernelDims: kernel dimensionality does not match the target shape.
//   - ErrBadPoints: central-difference points even, or not exceeding the
//     requested derivative order.
//   - ErrShapeTooSmall: a target dimension is smaller than the stencil.
//   - ErrStepLength: step list length does not match the dimensionality.
//
// Options:
//
//   - WithOrder: reshape order for vectorized inputs (default row-major).
//   - WithStep: per-axis grid spacing for Gradient (default 1.0 each).
package operators
