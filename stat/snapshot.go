package stat

import (
	"encoding/json"
	"math"

	"github.com/zyedidia/generic"
)

// Snapshot is a point-in-time reading of a Summary. Snapshots taken from
// independently fed Summaries can be combined arithmetically, which makes them
// suitable for periodic reporting from per-worker accumulators.
type Snapshot struct {
	Count    uint64  `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	Stdev    float64 `json:"stdev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Add combines stats with another instance, as if the two observation streams
// had been fed into one Summary.
func (s Snapshot) Add(o Snapshot) Snapshot {
	if s.Count == 0 {
		return o
	} else if o.Count == 0 {
		return s
	}
	aN, bN := float64(s.Count), float64(o.Count)
	cN := aN + bN
	delta := o.Mean - s.Mean
	m2 := s.m2() + o.m2() + delta*delta*aN*bN/cN
	out := Snapshot{
		Count: s.Count + o.Count,
		Mean:  (aN*s.Mean + bN*o.Mean) / cN,
		Min:   generic.Min(s.Min, o.Min),
		Max:   generic.Max(s.Max, o.Max),
	}
	out.Variance, out.Stdev = varianceOf(m2, out.Count)
	return out
}

// Scale multiplies every number by a ratio, e.g. converting units.
func (s Snapshot) Scale(ratio float64) Snapshot {
	o := s
	o.Mean *= ratio
	o.Variance *= ratio * ratio
	o.Stdev *= math.Abs(ratio)
	lo, hi := s.Min*ratio, s.Max*ratio
	o.Min, o.Max = generic.Min(lo, hi), generic.Max(lo, hi)
	return o
}

// m2 recovers the sum of squared deviations from the unbiased variance.
func (s Snapshot) m2() float64 {
	if s.Count < 2 {
		return 0
	}
	return s.Variance * float64(s.Count-1)
}

func varianceOf(m2 float64, n uint64) (variance, stdev float64) {
	if n < 2 {
		return math.NaN(), math.NaN()
	}
	variance = m2 / float64(n-1)
	return variance, math.Sqrt(variance)
}

// MarshalJSON omits NaN fields, which have no JSON representation.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	m := map[string]any{"count": s.Count}
	addUnlessNaN := func(key string, value float64) {
		if !math.IsNaN(value) {
			m[key] = value
		}
	}
	addUnlessNaN("mean", s.Mean)
	addUnlessNaN("variance", s.Variance)
	addUnlessNaN("stdev", s.Stdev)
	addUnlessNaN("min", s.Min)
	addUnlessNaN("max", s.Max)
	return json.Marshal(m)
}
