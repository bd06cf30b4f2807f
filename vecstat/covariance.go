// Package vecstat implements online statistics over fixed-length vector
// observations: running mean vectors and streaming covariance matrices.
package vecstat

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/AdrianoMourthe/onlinestat/smoothing"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// ErrDimMismatch indicates an observation or peer accumulator whose dimension
// differs from the one fixed at construction.
var ErrDimMismatch = errors.New("vector dimension mismatch")

// Covariance tracks the covariance matrix of d-dimensional observations via a
// rank-1 streaming update of the raw second-moment matrix E[XXᵀ] alongside the
// mean vector. Raw moments blend linearly, so merges need no shift correction.
type Covariance struct {
	w   weights.Policy
	n   uint64
	dim int
	b   []float64
	a   *mat.SymDense
}

// NewCovariance creates a Covariance over vectors of length dim.
// A nil policy defaults to equal weighting.
func NewCovariance(dim int, w weights.Policy) (*Covariance, error) {
	if dim < 1 {
		return nil, errors.New("dimension must be positive")
	}
	if w == nil {
		w = weights.NewEqual()
	}
	return &Covariance{
		w:   w,
		dim: dim,
		b:   make([]float64, dim),
		a:   mat.NewSymDense(dim, nil),
	}, nil
}

// Dim returns the observation dimension.
func (s *Covariance) Dim() int {
	return s.dim
}

// Absorb updates sufficient statistics with one observation vector.
func (s *Covariance) Absorb(x []float64) error {
	if len(x) != s.dim {
		return ErrDimMismatch
	}
	gamma := s.w.Advance(1)
	smoothing.SmoothSlice(s.b, x, gamma)
	smoothing.SmoothRank1(s.a, x, gamma)
	s.n++
	return nil
}

// Merge folds another Covariance into this one.
func (s *Covariance) Merge(o *Covariance) error {
	if s.dim != o.dim {
		return ErrDimMismatch
	}
	gamma := mergeCoeff(s.n, o.n)
	smoothing.SmoothSlice(s.b, o.b, gamma)
	s.a.ScaleSym(1-gamma, s.a)
	var scaled mat.SymDense
	scaled.ScaleSym(gamma, o.a)
	s.a.AddSym(s.a, &scaled)
	s.n += o.n
	s.w.AdvanceSilent(int(o.n))
	return nil
}

// Count returns the total number of observations absorbed.
func (s *Covariance) Count() uint64 {
	return s.n
}

// Mean returns a copy of the mean vector.
func (s *Covariance) Mean() []float64 {
	out := make([]float64, s.dim)
	copy(out, s.b)
	return out
}

// Value returns the bias-corrected covariance matrix (A − bbᵀ)·correction as a
// fresh symmetric matrix. The stored sufficient statistics are not modified.
func (s *Covariance) Value() *mat.SymDense {
	c := mat.NewSymDense(s.dim, nil)
	corr := s.w.Correction()
	for i := 0; i < s.dim; i++ {
		for j := i; j < s.dim; j++ {
			c.SetSym(i, j, (s.a.At(i, j)-s.b[i]*s.b[j])*corr)
		}
	}
	return c
}

// Vars returns the diagonal of Value: per-variable variances.
func (s *Covariance) Vars() []float64 {
	v := s.Value()
	out := make([]float64, s.dim)
	for i := range out {
		out[i] = v.At(i, i)
	}
	return out
}

// Stddevs returns per-variable standard deviations.
func (s *Covariance) Stddevs() []float64 {
	out := s.Vars()
	for i, v := range out {
		out[i] = math.Sqrt(v)
	}
	return out
}

// Cor returns the correlation matrix: Value scaled by the outer product of
// inverse standard deviations. The diagonal is exactly 1.
func (s *Covariance) Cor() *mat.SymDense {
	v := s.Value()
	d := make([]float64, s.dim)
	for i := range d {
		d[i] = math.Sqrt(v.At(i, i))
	}
	c := mat.NewSymDense(s.dim, nil)
	for i := 0; i < s.dim; i++ {
		c.SetSym(i, i, 1)
		for j := i + 1; j < s.dim; j++ {
			c.SetSym(i, j, v.At(i, j)/(d[i]*d[j]))
		}
	}
	return c
}

func mergeCoeff(a, b uint64) float64 {
	if a+b == 0 {
		return 0
	}
	return float64(b) / float64(a+b)
}
