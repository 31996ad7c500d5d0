// Package ndarray provides the small N-dimensional float64 array backend
// used by the matfree operator packages.
//
// What:
//
//   - Array: an immutable-shape, row-major N-D container with flat storage.
//   - FromFlat / Flatten: reshape a flat vector into N-D form (and back)
//     honoring row-major (C) or column-major (F) element order.
//   - Flip: reverse every axis (builds adjoint convolution kernels).
//   - ConvolveFull: full-mode direct N-D convolution.
//   - Slice: rectangular sub-array extraction ("same"-mode windows).
//
// Why:
//
//   - Matrix-free operators are written once against N-D blocks (images,
//     volumes) and lifted to flat-vector form by linop.Vectorized; this
//     package supplies exactly the block-level primitives those closures
//     need, nothing more.
//
// Complexity:
//
//   - FromFlat / Flatten / Flip / Slice: O(len), Memory O(len).
//   - ConvolveFull: O(len(a)·len(k)), Memory O(len(out)).
//
// Errors:
//
//   - ErrBadDims: a dimension list is empty or contains a non-positive size.
//   - ErrDimensionMismatch: operand dimensionality or lengths disagree.
//   - ErrOutOfRange: an index lies outside the array bounds.
//   - ErrBadOrder: an unknown reshape order token.
//   - ErrBadSlice: slice bounds are inverted or outside the array.
package ndarray
