package stat

import (
	"math"

	"github.com/zyedidia/generic"
)

// Extrema tracks the minimum and maximum observation. It is weight-free: every
// observation affects the extrema identically regardless of policy.
type Extrema struct {
	n   uint64
	min float64
	max float64
}

// NewExtrema creates an Extrema.
func NewExtrema() *Extrema {
	return &Extrema{min: math.Inf(1), max: math.Inf(-1)}
}

// Absorb implements Accumulator.
func (s *Extrema) Absorb(x float64) {
	s.min = generic.Min(s.min, x)
	s.max = generic.Max(s.max, x)
	s.n++
}

// Merge folds another Extrema into this one.
func (s *Extrema) Merge(o *Extrema) {
	s.min = generic.Min(s.min, o.min)
	s.max = generic.Max(s.max, o.max)
	s.n += o.n
}

// Count implements Accumulator.
func (s *Extrema) Count() uint64 {
	return s.n
}

// Min returns the minimum observation, or NaN before the first observation.
func (s *Extrema) Min() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.min
}

// Max returns the maximum observation, or NaN before the first observation.
func (s *Extrema) Max() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.max
}

// Value returns (min, max).
func (s *Extrema) Value() (min, max float64) {
	return s.Min(), s.Max()
}
