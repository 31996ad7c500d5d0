// SPDX-License-Identifier: MIT

// Package linop: the adjoint-consistency self test. The algebra preserves
// adjointness under every combinator but cannot verify it for leaf closures;
// this randomized probe is the black-box check that catches a mismatched
// pair before it silently corrupts every composition built on top of it.
package linop

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// DefaultEpsilon is the relative tolerance used by CheckAdjoint when
// comparing the two inner products.
const DefaultEpsilon = 1e-9

// CheckAdjoint verifies ⟨A·x, y⟩ ≈ ⟨x, A*·y⟩ on trials pairs of random
// normal vectors. The comparison is scale-aware: the residual must not
// exceed DefaultEpsilon·(1 + |lhs| + |rhs|).
//
// Inputs:
//   - op: non-nil operator, leaf or composite.
//   - trials: number of random probes; positive. A handful (5–10) is enough
//     in practice — a wrong adjoint fails almost surely on the first probe.
//   - seed: seeds the private RNG, making every run reproducible.
//
// Returns:
//   - nil when every probe agrees.
//   - ErrNilOperator / ErrBadTrials for invalid arguments.
//   - ErrAdjointMismatch wrapped with the failing trial index and both inner
//     products, or any apply failure, wrapped with the CheckAdjoint tag.
//
// Determinism:
//   - Fully determined by (op, trials, seed); no global RNG state is touched.
//
// Complexity:
//   - O(trials) applications of each direction.
func CheckAdjoint(op *Operator, trials int, seed int64) error {
	if err := ValidateNotNil(op); err != nil {
		return linopErrorf(opCheckAdjoint, err)
	}
	if trials <= 0 {
		return linopErrorf(opCheckAdjoint, ErrBadTrials)
	}

	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, op.shape.Cols)
	y := make([]float64, op.shape.Rows)

	for t := 0; t < trials; t++ {
		for i := range x {
			x[i] = rng.NormFloat64()
		}
		for i := range y {
			y[i] = rng.NormFloat64()
		}

		ax, err := op.ApplyVec(x)
		if err != nil {
			return linopErrorf(opCheckAdjoint, err)
		}
		aty, err := op.ApplyAdjointVec(y)
		if err != nil {
			return linopErrorf(opCheckAdjoint, err)
		}

		lhs := floats.Dot(ax, y)
		rhs := floats.Dot(x, aty)
		tol := DefaultEpsilon * (1 + math.Abs(lhs) + math.Abs(rhs))
		if math.Abs(lhs-rhs) > tol {
			return fmt.Errorf("%s: trial %d: <Ax,y>=%g <x,A*y>=%g: %w",
				opCheckAdjoint, t, lhs, rhs, ErrAdjointMismatch)
		}
	}
	return nil
}
