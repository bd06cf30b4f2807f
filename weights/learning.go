package weights

import (
	"math"

	"github.com/zyedidia/generic"
	"go.uber.org/multierr"
)

// LearningRate decays the coefficient as t^-r over update steps t, with a floor.
// The update counter t advances once per Advance call regardless of how many
// observations that call covers, so batched feeds take one step per batch.
type LearningRate struct {
	n       uint64
	t       uint64
	r       float64
	minstep float64
}

// NewLearningRate creates a learning-rate policy with exponent r and step floor
// minstep. r∈(0,1] gives the usual stochastic-approximation schedules; r=0.6 is
// a common default.
func NewLearningRate(r, minstep float64) (*LearningRate, error) {
	var errs error
	if math.IsNaN(r) || r <= 0 || r > 1 {
		errs = multierr.Append(errs, errInvalidExponent)
	}
	if math.IsNaN(minstep) || minstep < 0 || minstep > 1 {
		errs = multierr.Append(errs, errInvalidMinstep)
	}
	if errs != nil {
		return nil, errs
	}
	return &LearningRate{r: r, minstep: minstep}, nil
}

// Advance implements Policy.
func (w *LearningRate) Advance(n int) float64 {
	w.n += uint64(n)
	w.t++
	return generic.Max(math.Pow(float64(w.t), -w.r), w.minstep)
}

// AdvanceSilent implements Policy.
func (w *LearningRate) AdvanceSilent(n int) {
	w.n += uint64(n)
}

// Count implements Policy.
func (w *LearningRate) Count() uint64 {
	return w.n
}

// Updates returns the number of update steps taken.
func (w *LearningRate) Updates() uint64 {
	return w.t
}

// Correction implements Policy.
func (w *LearningRate) Correction() float64 {
	return 1
}

// Reset implements Policy.
func (w *LearningRate) Reset() {
	w.n, w.t = 0, 0
}

// LearningRate2 decays the coefficient as γ/(1+γ·c·t), a rational schedule that
// starts at γ and decays hyperbolically; c=0 yields a constant step.
type LearningRate2 struct {
	n       uint64
	t       uint64
	gamma   float64
	c       float64
	minstep float64
}

// NewLearningRate2 creates a rational-decay learning-rate policy.
func NewLearningRate2(gamma, c, minstep float64) (*LearningRate2, error) {
	var errs error
	if math.IsNaN(gamma) || gamma <= 0 || gamma > 1 {
		errs = multierr.Append(errs, errInvalidGamma)
	}
	if math.IsNaN(c) || c < 0 {
		errs = multierr.Append(errs, errInvalidDamping)
	}
	if math.IsNaN(minstep) || minstep < 0 || minstep > 1 {
		errs = multierr.Append(errs, errInvalidMinstep)
	}
	if errs != nil {
		return nil, errs
	}
	return &LearningRate2{gamma: gamma, c: c, minstep: minstep}, nil
}

// Advance implements Policy.
func (w *LearningRate2) Advance(n int) float64 {
	w.n += uint64(n)
	w.t++
	return generic.Max(w.gamma/(1+w.gamma*w.c*float64(w.t)), w.minstep)
}

// AdvanceSilent implements Policy.
func (w *LearningRate2) AdvanceSilent(n int) {
	w.n += uint64(n)
}

// Count implements Policy.
func (w *LearningRate2) Count() uint64 {
	return w.n
}

// Updates returns the number of update steps taken.
func (w *LearningRate2) Updates() uint64 {
	return w.t
}

// Correction implements Policy.
func (w *LearningRate2) Correction() float64 {
	return 1
}

// Reset implements Policy.
func (w *LearningRate2) Reset() {
	w.n, w.t = 0, 0
}
