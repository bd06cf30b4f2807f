package vecstat

import (
	"errors"

	"github.com/AdrianoMourthe/onlinestat/smoothing"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// MeanVec tracks the running mean of fixed-length vector observations.
type MeanVec struct {
	w weights.Policy
	n uint64
	m []float64
}

// NewMeanVec creates a MeanVec over vectors of length dim.
// A nil policy defaults to equal weighting.
func NewMeanVec(dim int, w weights.Policy) (*MeanVec, error) {
	if dim < 1 {
		return nil, errors.New("dimension must be positive")
	}
	if w == nil {
		w = weights.NewEqual()
	}
	return &MeanVec{w: w, m: make([]float64, dim)}, nil
}

// Dim returns the observation dimension.
func (s *MeanVec) Dim() int {
	return len(s.m)
}

// Absorb updates the mean vector with one observation vector.
func (s *MeanVec) Absorb(x []float64) error {
	if len(x) != len(s.m) {
		return ErrDimMismatch
	}
	smoothing.SmoothSlice(s.m, x, s.w.Advance(1))
	s.n++
	return nil
}

// Merge folds another MeanVec into this one.
func (s *MeanVec) Merge(o *MeanVec) error {
	if len(s.m) != len(o.m) {
		return ErrDimMismatch
	}
	smoothing.SmoothSlice(s.m, o.m, mergeCoeff(s.n, o.n))
	s.n += o.n
	s.w.AdvanceSilent(int(o.n))
	return nil
}

// Count returns the total number of observations absorbed.
func (s *MeanVec) Count() uint64 {
	return s.n
}

// Value returns a copy of the mean vector.
func (s *MeanVec) Value() []float64 {
	out := make([]float64, len(s.m))
	copy(out, s.m)
	return out
}
