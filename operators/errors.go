package operators

import "errors"

var (
	// ErrNilKernel indicates a nil convolution kernel.
	ErrNilKernel = errors.New("operators: kernel must not be nil")

	// ErrKernelDims indicates the kernel dimensionality does not match the
	// target shape's dimensionality.
	ErrKernelDims = errors.New("operators: kernel and shape must have the same number of dimensions")

	// ErrBadPoints indicates an invalid central-difference point count:
	// points must be odd and strictly greater than the derivative order.
	ErrBadPoints = errors.New("operators: points must be odd and exceed the derivative order")

	// ErrShapeTooSmall indicates a target dimension with fewer points than
	// the central-difference stencil; the approximation stops being useful
	// below that.
	ErrShapeTooSmall = errors.New("operators: every shape dimension needs at least as many points as the stencil")

	// ErrStepLength indicates the step list does not have one entry per
	// shape dimension.
	ErrStepLength = errors.New("operators: step and shape must have the same number of dimensions")

	// ErrBadDerivative indicates a non-positive derivative order.
	ErrBadDerivative = errors.New("operators: derivative order must be positive")
)
