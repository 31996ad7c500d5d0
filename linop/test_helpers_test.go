// Package linop_test: shared helpers for the linop test suite.
package linop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matfree/linop"
)

// denseOp builds a matrix-free operator from explicit row-major
// coefficients with hand-written forward/adjoint loops. It deliberately
// avoids the conversion boundary so the algebra tests do not depend on it.
func denseOp(t *testing.T, rows, cols int, entries []float64) *linop.Operator {
	t.Helper()
	require.Len(t, entries, rows*cols, "denseOp: wrong coefficient count")

	coeff := make([]float64, len(entries))
	copy(coeff, entries)

	matvec := func(r, c int, at func(i, j int) float64) linop.ApplyFunc {
		return func(x *linop.Batch) (*linop.Batch, error) {
			out, err := linop.NewBatch(r, x.Cols())
			if err != nil {
				return nil, err
			}
			for n := 0; n < x.Cols(); n++ {
				col := make([]float64, r)
				for i := 0; i < r; i++ {
					for j := 0; j < c; j++ {
						v, err := x.At(j, n)
						if err != nil {
							return nil, err
						}
						col[i] += at(i, j) * v
					}
				}
				if err := out.SetCol(n, col); err != nil {
					return nil, err
				}
			}
			return out, nil
		}
	}

	op, err := linop.New(rows, cols,
		matvec(rows, cols, func(i, j int) float64 { return coeff[i*cols+j] }),
		matvec(cols, rows, func(i, j int) float64 { return coeff[j*cols+i] }),
	)
	require.NoError(t, err)
	return op
}

// mustVec applies op to x and fails the test on error.
func mustVec(t *testing.T, op *linop.Operator, x []float64) []float64 {
	t.Helper()
	y, err := op.ApplyVec(x)
	require.NoError(t, err)
	return y
}
