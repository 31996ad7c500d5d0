package operators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CentralDiffWeights returns the weights of the points-wide central
// difference approximating the derivative-th derivative at unit spacing:
// f⁽ᵈ⁾(0) ≈ Σ w[k]·f(k - points/2).
//
// The weights come from the standard Vandermonde construction: with offsets
// x_k = k − points/2, the matrix X[k][j] = x_k^j maps Taylor coefficients to
// samples, so row `derivative` of derivative!·X⁻¹ recovers the derivative.
// The inverse runs through gonum's dense solver; the stencil widths used in
// practice (3..9 points) keep it well conditioned.
//
// Inputs:
//   - points: stencil width; odd and strictly greater than derivative.
//   - derivative: derivative order; positive.
//
// Returns:
//   - []float64 of length points.
//   - error: ErrBadDerivative, ErrBadPoints, or a gonum inversion failure.
//
// Complexity: O(points³).
func CentralDiffWeights(points, derivative int) ([]float64, error) {
	if derivative < 1 {
		return nil, fmt.Errorf("CentralDiffWeights: derivative %d: %w", derivative, ErrBadDerivative)
	}
	if points%2 == 0 || points <= derivative {
		return nil, fmt.Errorf("CentralDiffWeights: points %d, derivative %d: %w",
			points, derivative, ErrBadPoints)
	}

	half := points / 2
	x := mat.NewDense(points, points, nil)
	for k := 0; k < points; k++ {
		offset := float64(k - half)
		for j := 0; j < points; j++ {
			x.Set(k, j, math.Pow(offset, float64(j)))
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(x); err != nil {
		return nil, fmt.Errorf("CentralDiffWeights: inverting %dx%d stencil system: %w",
			points, points, err)
	}

	factorial := 1.0
	for i := 2; i <= derivative; i++ {
		factorial *= float64(i)
	}
	weights := make([]float64, points)
	for k := 0; k < points; k++ {
		weights[k] = factorial * inv.At(derivative, k)
	}
	return weights, nil
}
