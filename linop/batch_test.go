// Package linop_test contains unit tests for the Batch container.
package linop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matfree/linop"
)

func TestNewBatchValidation(t *testing.T) {
	t.Parallel()

	_, err := linop.NewBatch(0, 1)
	require.ErrorIs(t, err, linop.ErrBadShape)
	_, err = linop.NewBatch(3, -1)
	require.ErrorIs(t, err, linop.ErrBadShape)

	// Zero columns are a legal batch value.
	b, err := linop.NewBatch(3, 0)
	require.NoError(t, err)
	require.Equal(t, 3, b.Rows())
	require.Equal(t, 0, b.Cols())
}

func TestFromVecCanonicalizes(t *testing.T) {
	t.Parallel()

	b, err := linop.FromVec([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, b.Rows())
	require.Equal(t, 1, b.Cols())

	back, err := b.Vec()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, back)

	_, err = linop.FromVec(nil)
	require.ErrorIs(t, err, linop.ErrBadShape)
}

func TestFromVecCopies(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2}
	b, err := linop.FromVec(src)
	require.NoError(t, err)

	src[0] = 99
	v, err := b.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "FromVec must copy caller memory")
}

func TestFromCols(t *testing.T) {
	t.Parallel()

	b, err := linop.FromCols([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 2, b.Cols())

	c1, err := b.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, c1)

	_, err = linop.FromCols()
	require.ErrorIs(t, err, linop.ErrBadShape)
	_, err = linop.FromCols([]float64{1, 2}, []float64{3})
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	b, err := linop.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := b.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Zero(t, v)
			}
		}
	}

	_, err = linop.Identity(0)
	require.ErrorIs(t, err, linop.ErrBadShape)
}

func TestSetColAndBounds(t *testing.T) {
	t.Parallel()

	b, err := linop.NewBatch(2, 2)
	require.NoError(t, err)

	require.NoError(t, b.SetCol(0, []float64{5, 6}))
	c0, err := b.Col(0)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6}, c0)

	require.ErrorIs(t, b.SetCol(2, []float64{1, 2}), linop.ErrShapeMismatch)
	require.ErrorIs(t, b.SetCol(0, []float64{1}), linop.ErrShapeMismatch)
	_, err = b.Col(-1)
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
	_, err = b.At(2, 0)
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
}

func TestVecRequiresSingleColumn(t *testing.T) {
	t.Parallel()

	b, err := linop.NewBatch(2, 2)
	require.NoError(t, err)
	_, err = b.Vec()
	require.ErrorIs(t, err, linop.ErrShapeMismatch)
}

func TestBatchCloneAndEqual(t *testing.T) {
	t.Parallel()

	b, err := linop.FromCols([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)

	c := b.Clone()
	require.True(t, b.EqualApprox(c, 0))

	require.NoError(t, c.SetCol(0, []float64{9, 9}))
	require.False(t, b.EqualApprox(c, 0), "clones must not share storage")

	other, err := linop.NewBatch(2, 1)
	require.NoError(t, err)
	require.False(t, b.EqualApprox(other, 1e9), "shape mismatch never compares equal")
	require.False(t, b.EqualApprox(nil, 1e9))
}
