// Package stat implements online scalar statistics: each statistic consumes one
// observation at a time under a weight policy, keeps fixed-size sufficient
// statistics, and can be merged with an independently accumulated peer.
package stat

import (
	"errors"

	"github.com/AdrianoMourthe/onlinestat/core/logging"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

var logger = logging.New("Stat")

// ErrLevelMismatch indicates a merge between quantile estimators configured with
// different level sets.
var ErrLevelMismatch = errors.New("quantile level sets differ")

// Accumulator is the protocol shared by every scalar statistic.
//
// Absorb, Merge, and value extraction are sequential operations: a single
// accumulator must not be mutated by two goroutines. For parallel accumulation,
// build one accumulator per partition and combine them with the typed Merge.
type Accumulator interface {
	// Absorb updates sufficient statistics with one observation.
	Absorb(x float64)

	// Count returns the total number of observations absorbed, including those
	// folded in by merges.
	Count() uint64
}

var (
	_ Accumulator = (*Mean)(nil)
	_ Accumulator = (*Variance)(nil)
	_ Accumulator = (*Extrema)(nil)
	_ Accumulator = (*Moments)(nil)
	_ Accumulator = (*OrderStats)(nil)
	_ Accumulator = (*QuantileSGD)(nil)
	_ Accumulator = (*QuantileISGD)(nil)
	_ Accumulator = (*QuantileMM)(nil)
	_ Accumulator = (*Summary)(nil)
)

// mergeCoeff returns the blend coefficient for folding an accumulator with count
// b into one with count a, so that observations appear interleaved.
func mergeCoeff(a, b uint64) float64 {
	if a+b == 0 {
		return 0
	}
	return float64(b) / float64(a+b)
}

func policyOrEqual(w weights.Policy) weights.Policy {
	if w == nil {
		return weights.NewEqual()
	}
	return w
}
