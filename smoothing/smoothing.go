// Package smoothing provides the numeric kernels shared by all online statistics:
// convex blending of an accumulator value with a new observation.
package smoothing

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Smooth blends old toward value with coefficient gamma: (1-γ)·old + γ·value.
// gamma=1 is an exact replacement, used on the first observation.
func Smooth(old, value, gamma float64) float64 {
	return (1-gamma)*old + gamma*value
}

// SmoothSlice blends dst elementwise toward x with coefficient gamma.
// Both slices must have the same length.
func SmoothSlice(dst, x []float64, gamma float64) {
	floats.Scale(1-gamma, dst)
	floats.AddScaled(dst, gamma, x)
}

// SmoothRank1 blends the symmetric matrix a toward the outer product xxᵀ:
// A ← (1-γ)·A + γ·xxᵀ. This accumulates the raw second-moment matrix E[XXᵀ]
// consumed by the covariance statistic. x length must equal the matrix order.
func SmoothRank1(a *mat.SymDense, x []float64, gamma float64) {
	a.ScaleSym(1-gamma, a)
	a.SymRankOne(a, gamma, mat.NewVecDense(len(x), x))
}
