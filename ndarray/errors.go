package ndarray

import "errors"

var (
	// ErrBadDims indicates an empty dimension list or a non-positive size.
	ErrBadDims = errors.New("ndarray: dimensions must be a non-empty list of positive sizes")

	// ErrDimensionMismatch indicates incompatible operand dimensionality or
	// a flat-vector length that does not equal the product of the dimensions.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrOutOfRange indicates an index outside the array bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrBadOrder indicates an unknown reshape order token.
	ErrBadOrder = errors.New("ndarray: order must be RowMajor, ColMajor or AutoOrder")

	// ErrBadSlice indicates inverted or out-of-bounds slice bounds.
	ErrBadSlice = errors.New("ndarray: invalid slice bounds")
)
