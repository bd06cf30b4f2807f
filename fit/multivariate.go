package fit

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/AdrianoMourthe/onlinestat/vecstat"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

// Multinomial fits category probabilities from vectors of category counts,
// via a MeanVec delegate.
type Multinomial struct {
	m *vecstat.MeanVec
}

// NewMultinomial creates a Multinomial fitter over count vectors of length dim.
// A nil policy defaults to equal weighting.
func NewMultinomial(dim int, w weights.Policy) (*Multinomial, error) {
	m, e := vecstat.NewMeanVec(dim, w)
	if e != nil {
		return nil, e
	}
	return &Multinomial{m: m}, nil
}

// Absorb feeds one vector of category counts.
func (f *Multinomial) Absorb(counts []float64) error {
	return f.m.Absorb(counts)
}

// Merge folds another Multinomial into this one.
func (f *Multinomial) Merge(o *Multinomial) error {
	return f.m.Merge(o.m)
}

// Count returns the number of count vectors absorbed.
func (f *Multinomial) Count() uint64 {
	return f.m.Count()
}

// Value returns the estimated category probabilities: the mean count vector
// normalized to sum 1. Entries are zero before the first observation.
func (f *Multinomial) Value() []float64 {
	p := f.m.Value()
	if total := floats.Sum(p); total > 0 {
		floats.Scale(1/total, p)
	}
	return p
}

// MvNormal fits a multivariate normal by MLE over a Covariance delegate.
type MvNormal struct {
	c *vecstat.Covariance
}

// NewMvNormal creates an MvNormal fitter over vectors of length dim.
// A nil policy defaults to equal weighting.
func NewMvNormal(dim int, w weights.Policy) (*MvNormal, error) {
	c, e := vecstat.NewCovariance(dim, w)
	if e != nil {
		return nil, e
	}
	return &MvNormal{c: c}, nil
}

// Absorb feeds one observation vector.
func (f *MvNormal) Absorb(x []float64) error {
	return f.c.Absorb(x)
}

// Merge folds another MvNormal into this one.
func (f *MvNormal) Merge(o *MvNormal) error {
	return f.c.Merge(o.c)
}

// Count returns the number of observation vectors absorbed.
func (f *MvNormal) Count() uint64 {
	return f.c.Count()
}

// Value returns the mean vector and covariance matrix. The covariance entries
// are meaningful once two observations have been absorbed.
func (f *MvNormal) Value() (mu []float64, sigma *mat.SymDense) {
	return f.c.Mean(), f.c.Value()
}
