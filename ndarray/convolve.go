package ndarray

import "fmt"

// ConvolveFull computes the full-mode N-dimensional convolution of a with
// kernel k. Both operands must have the same number of axes; the output size
// along axis d is a.dims[d] + k.dims[d] - 1.
//
// The direct definition is used: out[o] = Σ_m a[m]·k[o−m] over all valid m,
// which keeps the kernel exact for the small kernels matrix-free operators
// are built from (finite differences, blurs). Large-kernel FFT acceleration
// is deliberately out of scope.
//
// Returns ErrDimensionMismatch when the operand dimensionalities differ.
// Complexity: O(Len(a)·Len(k)), Memory O(Len(out)).
func ConvolveFull(a, k *Array) (*Array, error) {
	if a == nil || k == nil {
		return nil, fmt.Errorf("ConvolveFull: %w", ErrBadDims)
	}
	if len(a.dims) != len(k.dims) {
		return nil, fmt.Errorf("ConvolveFull: signal ndim %d, kernel ndim %d: %w",
			len(a.dims), len(k.dims), ErrDimensionMismatch)
	}

	outDims := make([]int, len(a.dims))
	for d := range a.dims {
		outDims[d] = a.dims[d] + k.dims[d] - 1
	}
	out, err := New(outDims...)
	if err != nil {
		return nil, fmt.Errorf("ConvolveFull: %w", err)
	}

	// Scatter every product a[m]*k[j] into out[m+j]. Walking both operands
	// with row-major odometers keeps the accumulation order deterministic.
	aIdx := make([]int, len(a.dims))
	kIdx := make([]int, len(k.dims))
	for aFlat := 0; aFlat < len(a.data); aFlat++ {
		av := a.data[aFlat]
		if av != 0 { // skip zero signal entries
			for d := range kIdx {
				kIdx[d] = 0
			}
			for kFlat := 0; kFlat < len(k.data); kFlat++ {
				kv := k.data[kFlat]
				if kv != 0 {
					dst := 0
					for d := range aIdx {
						dst += (aIdx[d] + kIdx[d]) * out.strides[d]
					}
					out.data[dst] += av * kv
				}
				incIndex(kIdx, k.dims)
			}
		}
		incIndex(aIdx, a.dims)
	}
	return out, nil
}
