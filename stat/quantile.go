package stat

import (
	"fmt"
	"math"
	"slices"

	"github.com/AdrianoMourthe/onlinestat/smoothing"
	"github.com/AdrianoMourthe/onlinestat/weights"
	"go.uber.org/multierr"
)

// DefaultQuantileLevels is used when a quantile estimator is constructed with a
// nil level set.
var DefaultQuantileLevels = []float64{0.25, 0.5, 0.75}

func checkLevels(taus []float64) error {
	var errs error
	for i, tau := range taus {
		if math.IsNaN(tau) || tau <= 0 || tau >= 1 {
			errs = multierr.Append(errs, fmt.Errorf("level %v outside (0,1)", tau))
		}
		if i > 0 && tau <= taus[i-1] {
			errs = multierr.Append(errs, fmt.Errorf("level %v not ascending", tau))
		}
	}
	return errs
}

func cloneLevels(taus []float64) ([]float64, error) {
	if taus == nil {
		taus = DefaultQuantileLevels
	}
	if e := checkLevels(taus); e != nil {
		return nil, e
	}
	return slices.Clone(taus), nil
}

func defaultQuantilePolicy() weights.Policy {
	w, e := weights.NewLearningRate(0.6, 0)
	if e != nil {
		panic(e)
	}
	return w
}

// pinballGrad is the subgradient of the pinball (quantile) loss at level tau,
// evaluated at estimate v for observation y. Its minimizer is the tau-quantile.
func pinballGrad(tau, y, v float64) float64 {
	if y <= v {
		return 1 - tau
	}
	return -tau
}

// QuantileSGD estimates quantiles by stochastic subgradient descent on the
// pinball loss. Estimates at different levels evolve independently but share one
// learning-rate counter.
type QuantileSGD struct {
	w    weights.Policy
	n    uint64
	taus []float64
	est  []float64
}

// NewQuantileSGD creates a QuantileSGD at the given ascending levels in (0,1).
// Nil levels default to quartiles; a nil policy defaults to LearningRate(0.6, 0).
func NewQuantileSGD(levels []float64, w weights.Policy) (*QuantileSGD, error) {
	taus, e := cloneLevels(levels)
	if e != nil {
		return nil, e
	}
	if w == nil {
		w = defaultQuantilePolicy()
	}
	return &QuantileSGD{w: w, taus: taus, est: make([]float64, len(taus))}, nil
}

// Absorb implements Accumulator.
func (s *QuantileSGD) Absorb(x float64) {
	gamma := s.w.Advance(1)
	s.n++
	if s.n == 1 {
		for i := range s.est {
			s.est[i] = x
		}
		return
	}
	for i, tau := range s.taus {
		s.est[i] -= gamma * pinballGrad(tau, x, s.est[i])
	}
}

// Merge folds another QuantileSGD into this one.
func (s *QuantileSGD) Merge(o *QuantileSGD) error {
	if !slices.Equal(s.taus, o.taus) {
		return ErrLevelMismatch
	}
	smoothing.SmoothSlice(s.est, o.est, mergeCoeff(s.n, o.n))
	s.n += o.n
	s.w.AdvanceSilent(int(o.n))
	return nil
}

// Count implements Accumulator.
func (s *QuantileSGD) Count() uint64 {
	return s.n
}

// Levels returns the configured quantile levels.
func (s *QuantileSGD) Levels() []float64 {
	return slices.Clone(s.taus)
}

// Value returns the current quantile estimates, one per level.
func (s *QuantileSGD) Value() []float64 {
	return slices.Clone(s.est)
}
