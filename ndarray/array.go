package ndarray

import (
	"fmt"
	"math"
)

// Order selects the element order used when reshaping a flat vector into an
// N-D array and when flattening it back. It mirrors the order parameter of
// array-reshape routines in host numeric libraries.
type Order int

const (
	// RowMajor lays elements out with the last axis varying fastest (C order).
	RowMajor Order = iota
	// ColMajor lays elements out with the first axis varying fastest (F order).
	ColMajor
	// AutoOrder defers to the natural order of a flat vector, which is
	// row-major; it exists so callers can express "don't care" explicitly.
	AutoOrder
)

// ValidOrder reports whether o is one of the declared order tokens.
// Complexity: O(1).
func ValidOrder(o Order) bool {
	return o == RowMajor || o == ColMajor || o == AutoOrder
}

// Array is an N-dimensional float64 array with row-major flat storage.
// The shape is fixed at construction; only element values may change.
type Array struct {
	dims    []int     // per-axis sizes, all positive
	strides []int     // row-major strides derived from dims
	data    []float64 // flat backing storage, length == product(dims)
}

// Prod returns the product of dims without validating them.
// Complexity: O(len(dims)).
func Prod(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

// ValidateDims checks that dims is non-empty and strictly positive.
// Returns ErrBadDims otherwise.
// Complexity: O(len(dims)).
func ValidateDims(dims []int) error {
	if len(dims) == 0 {
		return ErrBadDims
	}
	for _, d := range dims {
		if d <= 0 {
			return ErrBadDims
		}
	}
	return nil
}

// rowMajorStrides computes the flat stride of each axis for row-major layout.
func rowMajorStrides(dims []int) []int {
	strides := make([]int, len(dims))
	acc := 1
	for d := len(dims) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= dims[d]
	}
	return strides
}

// New creates a zero-filled Array with the given dimensions.
// Returns ErrBadDims when dims is empty or contains a non-positive size.
// Complexity: O(product(dims)).
func New(dims ...int) (*Array, error) {
	if err := ValidateDims(dims); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	shape := make([]int, len(dims))
	copy(shape, dims)
	return &Array{
		dims:    shape,
		strides: rowMajorStrides(shape),
		data:    make([]float64, Prod(shape)),
	}, nil
}

// FromFlat builds an Array of the given dimensions from a flat vector,
// interpreting the vector in the requested element order. The input slice is
// copied; the Array never aliases caller memory.
//
// Returns ErrBadDims for invalid dims, ErrBadOrder for an unknown order, and
// ErrDimensionMismatch when len(data) != product(dims).
// Complexity: O(len(data)).
func FromFlat(data []float64, dims []int, order Order) (*Array, error) {
	if err := ValidateDims(dims); err != nil {
		return nil, fmt.Errorf("FromFlat: %w", err)
	}
	if !ValidOrder(order) {
		return nil, fmt.Errorf("FromFlat: %w", ErrBadOrder)
	}
	if len(data) != Prod(dims) {
		return nil, fmt.Errorf("FromFlat: len(data)=%d, want %d: %w",
			len(data), Prod(dims), ErrDimensionMismatch)
	}

	a, err := New(dims...)
	if err != nil {
		return nil, fmt.Errorf("FromFlat: %w", err)
	}
	if order == ColMajor {
		// Walk every multi-index once and pull the element from its
		// column-major flat position.
		colStrides := colMajorStrides(a.dims)
		idx := make([]int, len(a.dims))
		for flat := 0; flat < len(a.data); flat++ {
			src := 0
			for d, i := range idx {
				src += i * colStrides[d]
			}
			a.data[flat] = data[src]
			incIndex(idx, a.dims)
		}
		return a, nil
	}
	// RowMajor and AutoOrder match the internal layout.
	copy(a.data, data)
	return a, nil
}

// colMajorStrides computes the flat stride of each axis for column-major layout.
func colMajorStrides(dims []int) []int {
	strides := make([]int, len(dims))
	acc := 1
	for d := 0; d < len(dims); d++ {
		strides[d] = acc
		acc *= dims[d]
	}
	return strides
}

// incIndex advances a multi-index one step in row-major order (last axis is
// fastest). It wraps to all zeros after the final index.
func incIndex(idx, dims []int) {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < dims[d] {
			return
		}
		idx[d] = 0
	}
}

// Flatten returns the elements of a as a flat vector in the requested order.
// The result is always a fresh slice.
// Returns ErrBadOrder for an unknown order.
// Complexity: O(Len).
func (a *Array) Flatten(order Order) ([]float64, error) {
	if !ValidOrder(order) {
		return nil, fmt.Errorf("Flatten: %w", ErrBadOrder)
	}
	out := make([]float64, len(a.data))
	if order == ColMajor {
		colStrides := colMajorStrides(a.dims)
		idx := make([]int, len(a.dims))
		for flat := 0; flat < len(a.data); flat++ {
			dst := 0
			for d, i := range idx {
				dst += i * colStrides[d]
			}
			out[dst] = a.data[flat]
			incIndex(idx, a.dims)
		}
		return out, nil
	}
	copy(out, a.data)
	return out, nil
}

// NDim returns the number of axes.
// Complexity: O(1).
func (a *Array) NDim() int { return len(a.dims) }

// Dims returns a copy of the per-axis sizes.
// Complexity: O(NDim).
func (a *Array) Dims() []int {
	out := make([]int, len(a.dims))
	copy(out, a.dims)
	return out
}

// Dim returns the size of axis d, or ErrOutOfRange for an invalid axis.
// Complexity: O(1).
func (a *Array) Dim(d int) (int, error) {
	if d < 0 || d >= len(a.dims) {
		return 0, fmt.Errorf("Dim(%d): %w", d, ErrOutOfRange)
	}
	return a.dims[d], nil
}

// Len returns the total number of elements.
// Complexity: O(1).
func (a *Array) Len() int { return len(a.data) }

// offset converts a full multi-index into a flat row-major offset.
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.dims) {
		return 0, ErrDimensionMismatch
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.dims[d] {
			return 0, ErrOutOfRange
		}
		off += i * a.strides[d]
	}
	return off, nil
}

// At returns the element at the given multi-index.
// Returns ErrDimensionMismatch for a wrong index arity and ErrOutOfRange for
// an out-of-bounds index.
// Complexity: O(NDim).
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, fmt.Errorf("At%v: %w", idx, err)
	}
	return a.data[off], nil
}

// Set assigns v at the given multi-index, with the same errors as At.
// Complexity: O(NDim).
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return fmt.Errorf("Set%v: %w", idx, err)
	}
	a.data[off] = v
	return nil
}

// Clone returns a deep copy of a.
// Complexity: O(Len).
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	dims := make([]int, len(a.dims))
	copy(dims, a.dims)
	return &Array{dims: dims, strides: rowMajorStrides(dims), data: data}
}

// EqualApprox reports whether a and b share dimensions and every pair of
// elements differs by at most eps in absolute value.
// Complexity: O(Len).
func (a *Array) EqualApprox(b *Array, eps float64) bool {
	if b == nil || len(a.dims) != len(b.dims) {
		return false
	}
	for d := range a.dims {
		if a.dims[d] != b.dims[d] {
			return false
		}
	}
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > eps {
			return false
		}
	}
	return true
}

// Flip returns a copy of a with every axis reversed, so that
// out[i0,...,iN] == a[d0-1-i0,...,dN-1-iN]. Convolution adjoints are built
// by convolving with the flipped kernel.
// Complexity: O(Len).
func Flip(a *Array) *Array {
	out := a.Clone()
	idx := make([]int, len(a.dims))
	for flat := 0; flat < len(a.data); flat++ {
		src := 0
		for d, i := range idx {
			src += (a.dims[d] - 1 - i) * a.strides[d]
		}
		out.data[flat] = a.data[src]
		incIndex(idx, a.dims)
	}
	return out
}

// Slice extracts the rectangular region [start[d], stop[d]) along every axis
// into a fresh Array. Bounds must satisfy 0 <= start[d] < stop[d] <= dim[d].
//
// Returns ErrDimensionMismatch when the bound lists have the wrong arity and
// ErrBadSlice for inverted or out-of-range bounds.
// Complexity: O(len(out)).
func Slice(a *Array, start, stop []int) (*Array, error) {
	if len(start) != len(a.dims) || len(stop) != len(a.dims) {
		return nil, fmt.Errorf("Slice: bound arity %d/%d, want %d: %w",
			len(start), len(stop), len(a.dims), ErrDimensionMismatch)
	}
	outDims := make([]int, len(a.dims))
	for d := range a.dims {
		if start[d] < 0 || stop[d] > a.dims[d] || start[d] >= stop[d] {
			return nil, fmt.Errorf("Slice: axis %d bounds [%d,%d) of %d: %w",
				d, start[d], stop[d], a.dims[d], ErrBadSlice)
		}
		outDims[d] = stop[d] - start[d]
	}

	out, err := New(outDims...)
	if err != nil {
		return nil, fmt.Errorf("Slice: %w", err)
	}
	idx := make([]int, len(outDims))
	for flat := 0; flat < len(out.data); flat++ {
		src := 0
		for d, i := range idx {
			src += (start[d] + i) * a.strides[d]
		}
		out.data[flat] = a.data[src]
		incIndex(idx, outDims)
	}
	return out, nil
}
