package operators

import (
	"fmt"

	"github.com/katalvlaran/matfree/linop"
	"github.com/katalvlaran/matfree/ndarray"
)

// Convolve builds the same-mode N-dimensional convolution with kernel as a
// matrix-free operator on vectorized inputs.
//
// Only the "same" mode is implemented: the output has the shape of the
// input, which is what linear systems want since applying the operator must
// not alter dimensions. The forward direction computes the full convolution
// and keeps the window starting at (len(kernel_d)-1)/2 per axis; the
// adjoint convolves with the kernel flipped along every axis and keeps the
// window starting at len(kernel_d)/2 — the shifted slice is exactly what
// makes the two directions adjoint for even kernel sizes.
//
// Inputs:
//   - kernel: non-nil N-D kernel; its dimensionality must equal len(dims).
//   - dims: the target shape in non-vector form; the operator acts on
//     vectors of length product(dims) and is square.
//   - opts: WithOrder to choose the reshape order (default row-major).
//
// Returns:
//   - *linop.Operator with shape (product(dims), product(dims)).
//   - error: ErrNilKernel, ErrKernelDims, ndarray.ErrBadDims for invalid
//     dims, or linop.ErrBadOrder for an unknown order token.
//
// Complexity:
//   - Each application is O(cols · len(input)·len(kernel)).
//
// Example:
//
//	A 3×3 image under kernel [[-1, 1]]:
//
//	kernel, _ := ndarray.FromFlat([]float64{-1, 1}, []int{1, 2}, ndarray.RowMajor)
//	C, _ := operators.Convolve(kernel, []int{3, 3})
//	out, _ := C.ApplyVec([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
//	// out == [-1 -1 -1 -4 -1 -1 -7 -1 -1]
func Convolve(kernel *ndarray.Array, dims []int, opts ...Option) (*linop.Operator, error) {
	if kernel == nil {
		return nil, fmt.Errorf("Convolve: %w", ErrNilKernel)
	}
	if err := ndarray.ValidateDims(dims); err != nil {
		return nil, fmt.Errorf("Convolve: %w", err)
	}
	if kernel.NDim() != len(dims) {
		return nil, fmt.Errorf("Convolve: kernel ndim %d, shape ndim %d: %w",
			kernel.NDim(), len(dims), ErrKernelDims)
	}
	o := gatherOptions(opts)

	n := ndarray.Prod(dims)
	fwdKernel := kernel.Clone()
	adjKernel := ndarray.Flip(kernel)
	kernelDims := kernel.Dims()

	// Window bounds into the full convolution, per direction. The forward
	// window drops (k-1)/2 leading entries per axis; the adjoint window
	// drops k/2, compensating for the flip.
	ndim := len(dims)
	fStart, fStop := make([]int, ndim), make([]int, ndim)
	aStart, aStop := make([]int, ndim), make([]int, ndim)
	for d := 0; d < ndim; d++ {
		fStart[d] = (kernelDims[d] - 1) / 2
		fStop[d] = fStart[d] + dims[d]
		aStart[d] = kernelDims[d] / 2
		aStop[d] = aStart[d] + dims[d]
	}

	convSame := func(k *ndarray.Array, start, stop []int) linop.BlockFunc {
		return func(img *ndarray.Array) (*ndarray.Array, error) {
			full, err := ndarray.ConvolveFull(img, k)
			if err != nil {
				return nil, err
			}
			return ndarray.Slice(full, start, stop)
		}
	}

	forward, err := linop.Vectorized(dims, o.order, convSame(fwdKernel, fStart, fStop))
	if err != nil {
		return nil, fmt.Errorf("Convolve: %w", err)
	}
	adjoint, err := linop.Vectorized(dims, o.order, convSame(adjKernel, aStart, aStop))
	if err != nil {
		return nil, fmt.Errorf("Convolve: %w", err)
	}

	op, err := linop.New(n, n, forward, adjoint)
	if err != nil {
		return nil, fmt.Errorf("Convolve: %w", err)
	}
	return op, nil
}
