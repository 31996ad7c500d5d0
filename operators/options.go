// Package operators: functional configuration for the producers.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults spelled as constants.
//   - Options fields are unexported; public APIs consume ...Option.
//   - Invalid option values surface as sentinel errors from the producer
//     (never panics), because they are caller input, not programmer error.
package operators

import "github.com/katalvlaran/matfree/ndarray"

// DefaultOrder is the reshape order producers use unless WithOrder says
// otherwise: row-major, matching the natural layout of flat vectors.
const DefaultOrder = ndarray.RowMajor

// options carries the gathered producer configuration.
type options struct {
	order ndarray.Order
	step  []float64 // nil means 1.0 along every axis (Gradient only)
}

// Option mutates the gathered producer configuration.
type Option func(*options)

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{order: DefaultOrder}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithOrder selects the element order used when reshaping flat input
// vectors into N-D blocks. Unknown tokens are rejected by the producer with
// linop's ErrBadOrder.
func WithOrder(order ndarray.Order) Option {
	return func(o *options) { o.order = order }
}

// WithStep sets the per-axis grid spacing for Gradient. The list must have
// one entry per shape dimension; Gradient rejects mismatches with
// ErrStepLength. The default is 1.0 along every axis.
func WithStep(step ...float64) Option {
	return func(o *options) {
		o.step = make([]float64, len(step))
		copy(o.step, step)
	}
}
