// Package linop_test provides benchmarks for core operator operations,
// using deterministic random fill for probe batches.
package linop_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matfree/linop"
)

// benchSizes are the operator extents to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkB *linop.Batch
	sinkE error
)

// randDenseOp builds an n×n matrix-free operator over deterministic random
// coefficients.
func randDenseOp(b *testing.B, n int, seed int64) *linop.Operator {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	entries := make([]float64, n*n)
	for i := range entries {
		entries[i] = rng.NormFloat64()
	}
	matvec := func(transpose bool) linop.ApplyFunc {
		return func(x *linop.Batch) (*linop.Batch, error) {
			y, err := linop.NewBatch(n, x.Cols())
			if err != nil {
				return nil, err
			}
			for c := 0; c < x.Cols(); c++ {
				col, err := x.Col(c)
				if err != nil {
					return nil, err
				}
				out := make([]float64, n)
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						if transpose {
							out[i] += entries[j*n+i] * col[j]
						} else {
							out[i] += entries[i*n+j] * col[j]
						}
					}
				}
				if err := y.SetCol(c, out); err != nil {
					return nil, err
				}
			}
			return y, nil
		}
	}
	op, err := linop.New(n, n, matvec(false), matvec(true))
	if err != nil {
		b.Fatal(err)
	}
	return op
}

// randBatch fills an n×cols batch with deterministic random values.
func randBatch(b *testing.B, n, cols int, seed int64) *linop.Batch {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	x, err := linop.NewBatch(n, cols)
	if err != nil {
		b.Fatal(err)
	}
	col := make([]float64, n)
	for j := 0; j < cols; j++ {
		for i := range col {
			col[i] = rng.NormFloat64()
		}
		if err := x.SetCol(j, col); err != nil {
			b.Fatal(err)
		}
	}
	return x
}

func BenchmarkApply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randDenseOp(b, n, 1337)
			x := randBatch(b, n, 1, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := a.Apply(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = y
			}
		})
	}
}

func BenchmarkApplyBatched(b *testing.B) {
	b.ReportAllocs()
	const cols = 16
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randDenseOp(b, n, 11)
			x := randBatch(b, n, cols, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := a.Apply(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = y
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s, err := linop.Add(randDenseOp(b, n, 1), randDenseOp(b, n, 2))
			if err != nil {
				b.Fatal(err)
			}
			x := randBatch(b, n, 1, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := s.Apply(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = y
			}
		})
	}
}

func BenchmarkCompose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 128, 256} { // two dense applies per call
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			ab, err := linop.Compose(randDenseOp(b, n, 101), randDenseOp(b, n, 202))
			if err != nil {
				b.Fatal(err)
			}
			x := randBatch(b, n, 1, 303)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := ab.Apply(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = y
			}
		})
	}
}

func BenchmarkBMat(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			grid := [][]*linop.Operator{
				{randDenseOp(b, n, 7), nil},
				{nil, randDenseOp(b, n, 8)},
			}
			blk, err := linop.BMat(grid)
			if err != nil {
				b.Fatal(err)
			}
			x := randBatch(b, 2*n, 1, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := blk.Apply(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = y
			}
		})
	}
}

func BenchmarkCheckAdjoint(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randDenseOp(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = linop.CheckAdjoint(a, 3, int64(i))
				if sinkE != nil {
					b.Fatal(sinkE)
				}
			}
		})
	}
}
