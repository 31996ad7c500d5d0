package operators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matfree/linop"
	"github.com/katalvlaran/matfree/ndarray"
)

// Gradient builds the central-difference approximation of the derivative-th
// derivative as a matrix-free operator on vectorized inputs.
//
// The stencil is assembled as one N-D kernel — a points-wide cross centered
// in a points^ndim cube, one arm per axis scaled by that axis' step raised
// to the derivative order — and handed to Convolve, so the gradient
// inherits the convolution operator's adjoint for free. The weights are
// reversed before placement to compensate for convolution's flip.
//
// Inputs:
//   - derivative: derivative order; positive.
//   - points: stencil width; odd and strictly greater than derivative.
//   - dims: the target shape in non-vector form; every dimension must have
//     at least points entries.
//   - opts: WithStep for per-axis spacing (default 1.0), WithOrder for the
//     reshape order.
//
// Returns:
//   - *linop.Operator with shape (product(dims), product(dims)).
//   - error: ErrBadDerivative, ErrBadPoints, ErrShapeTooSmall,
//     ErrStepLength, or ndarray.ErrBadDims.
//
// Example:
//
//	First derivative over a 5×6 grid, Laplacian with anisotropic spacing:
//
//	grad, _ := operators.Gradient(1, 3, []int{5, 6})
//	laplace, _ := operators.Gradient(2, 3, []int{5, 6}, operators.WithStep(0.5, 2))
func Gradient(derivative, points int, dims []int, opts ...Option) (*linop.Operator, error) {
	if err := ndarray.ValidateDims(dims); err != nil {
		return nil, fmt.Errorf("Gradient: %w", err)
	}
	for d, size := range dims {
		if size < points {
			return nil, fmt.Errorf("Gradient: dimension %d has %d points, stencil needs %d: %w",
				d, size, points, ErrShapeTooSmall)
		}
	}
	o := gatherOptions(opts)
	ndim := len(dims)
	step := o.step
	if step == nil {
		step = make([]float64, ndim)
		for d := range step {
			step[d] = 1.0
		}
	}
	if len(step) != ndim {
		return nil, fmt.Errorf("Gradient: %d steps for %d dimensions: %w",
			len(step), ndim, ErrStepLength)
	}

	weights, err := CentralDiffWeights(points, derivative)
	if err != nil {
		return nil, fmt.Errorf("Gradient: %w", err)
	}
	// Reverse the weights: convolution shifts with the kernel flipped.
	for i, j := 0, len(weights)-1; i < j; i, j = i+1, j-1 {
		weights[i], weights[j] = weights[j], weights[i]
	}

	// One points^ndim kernel, an arm of weights through the center along
	// every axis, each arm scaled by its axis' step^derivative.
	kernelDims := make([]int, ndim)
	for d := range kernelDims {
		kernelDims[d] = points
	}
	kernel, err := ndarray.New(kernelDims...)
	if err != nil {
		return nil, fmt.Errorf("Gradient: %w", err)
	}
	center := points / 2
	idx := make([]int, ndim)
	for d := 0; d < ndim; d++ {
		h := math.Pow(step[d], float64(derivative))
		for axis := range idx {
			idx[axis] = center
		}
		for i := 0; i < points; i++ {
			idx[d] = i
			cur, err := kernel.At(idx...)
			if err != nil {
				return nil, fmt.Errorf("Gradient: %w", err)
			}
			if err = kernel.Set(cur+weights[i]/h, idx...); err != nil {
				return nil, fmt.Errorf("Gradient: %w", err)
			}
		}
	}

	op, err := Convolve(kernel, dims, WithOrder(o.order))
	if err != nil {
		return nil, fmt.Errorf("Gradient: %w", err)
	}
	return op, nil
}
