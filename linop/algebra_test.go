// Package linop_test contains unit tests for the algebraic combinators.
package linop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matfree/linop"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := denseOp(t, 2, 2, []float64{1, 2, 3, 4})
	b := denseOp(t, 2, 2, []float64{10, 0, 0, 10})

	sum, err := linop.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, a.Shape(), sum.Shape())
	require.Equal(t, []float64{13, 7}, mustVec(t, sum, []float64{1, 1}))

	diff, err := linop.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{-7, -3}, mustVec(t, diff, []float64{1, 1}))

	// Adjoint directions combine pointwise as well.
	y, err := sum.ApplyAdjointVec([]float64{1, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{11, 2}, y)

	require.NoError(t, linop.CheckAdjoint(sum, 5, 7))
	require.NoError(t, linop.CheckAdjoint(diff, 5, 7))
}

func TestAddSubShapeMismatch(t *testing.T) {
	t.Parallel()

	a := denseOp(t, 2, 2, make([]float64, 4))
	b := denseOp(t, 2, 3, make([]float64, 6))

	_, err := linop.Add(a, b)
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
	require.Contains(t, err.Error(), "2x2")
	require.Contains(t, err.Error(), "2x3")

	_, err = linop.Sub(a, b)
	require.ErrorIs(t, err, linop.ErrShapeMismatch)

	_, err = linop.Add(nil, b)
	require.ErrorIs(t, err, linop.ErrNilOperator)
	_, err = linop.Sub(a, nil)
	require.ErrorIs(t, err, linop.ErrNilOperator)
}

func TestNegScale(t *testing.T) {
	t.Parallel()

	a := denseOp(t, 2, 2, []float64{1, -2, 0, 5})

	neg, err := linop.Neg(a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -5}, mustVec(t, neg, []float64{1, 1}))

	half, err := linop.Scale(0.5, a)
	require.NoError(t, err)
	require.Equal(t, []float64{-0.5, 2.5}, mustVec(t, half, []float64{1, 1}))

	// Real scalars scale the adjoint by the same value.
	y, err := half.ApplyAdjointVec([]float64{2, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2}, y)

	require.NoError(t, linop.CheckAdjoint(neg, 5, 3))
	require.NoError(t, linop.CheckAdjoint(half, 5, 3))

	_, err = linop.Neg(nil)
	require.ErrorIs(t, err, linop.ErrNilOperator)
	_, err = linop.Scale(2, nil)
	require.ErrorIs(t, err, linop.ErrNilOperator)
}

// TestComposeShapeClosure: (A∘B).Shape() == (A.Rows, B.Cols) whenever
// A.Cols == B.Rows, and ErrShapeMismatch otherwise.
func TestComposeShapeClosure(t *testing.T) {
	t.Parallel()

	a := denseOp(t, 2, 3, make([]float64, 6))
	b := denseOp(t, 3, 4, make([]float64, 12))

	ab, err := linop.Compose(a, b)
	require.NoError(t, err)
	require.Equal(t, linop.Shape{Rows: 2, Cols: 4}, ab.Shape())

	_, err = linop.Compose(b, a)
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
	require.Contains(t, err.Error(), "3x4")
	require.Contains(t, err.Error(), "2x3")

	_, err = linop.Compose(nil, a)
	require.ErrorIs(t, err, linop.ErrNilOperator)
}

func TestComposeSemantics(t *testing.T) {
	t.Parallel()

	// a = [[1, 1], [0, 2]], b = [[2, 0], [0, 3]]
	a := denseOp(t, 2, 2, []float64{1, 1, 0, 2})
	b := denseOp(t, 2, 2, []float64{2, 0, 0, 3})

	ab, err := linop.Compose(a, b)
	require.NoError(t, err)

	// a·b = [[2, 3], [0, 6]]
	require.Equal(t, []float64{5, 6}, mustVec(t, ab, []float64{1, 1}))

	// (a·b)* routes through a* first, then b*: (a·b)ᵀ = [[2, 0], [3, 6]].
	y, err := ab.ApplyAdjointVec([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 9}, y)

	require.NoError(t, linop.CheckAdjoint(ab, 8, 11))

	// Mul is the same combinator under the matrix-product name.
	ab2, err := linop.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, mustVec(t, ab, []float64{2, -1}), mustVec(t, ab2, []float64{2, -1}))
}

// TestCompositeOfComposites stresses the algebra closure: scaling, sums and
// compositions of compositions keep shapes and adjoints consistent.
func TestCompositeOfComposites(t *testing.T) {
	t.Parallel()

	a := denseOp(t, 3, 2, []float64{1, 0, 2, -1, 0, 3})
	b := denseOp(t, 2, 3, []float64{0, 1, 1, 2, 0, -2})

	ab, err := linop.Compose(a, b) // 3x3
	require.NoError(t, err)
	ba, err := linop.Compose(b, a) // 2x2
	require.NoError(t, err)

	s, err := linop.Scale(2, ba)
	require.NoError(t, err)
	tot, err := linop.Sub(s, ba) // 2*ba - ba == ba
	require.NoError(t, err)

	x := []float64{1, 2}
	require.InDeltaSlice(t, mustVec(t, ba, x), mustVec(t, tot, x), 1e-12)

	require.NoError(t, linop.CheckAdjoint(ab, 5, 21))
	require.NoError(t, linop.CheckAdjoint(tot, 5, 21))

	// Adjoint of a composite is the reversed composite of adjoints.
	abAdj := ab.Adjoint()
	y := []float64{1, -1, 2}
	w1 := mustVec(t, abAdj, y)
	w2, err := ab.ApplyAdjointVec(y)
	require.NoError(t, err)
	require.Equal(t, w2, w1)
}
