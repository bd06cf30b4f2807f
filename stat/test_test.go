package stat_test

import (
	"github.com/AdrianoMourthe/onlinestat/core/testenv"
)

var (
	makeAR   = testenv.MakeAR
	toJSON   = testenv.ToJSON
	fromJSON = testenv.FromJSON
)

// sampleMean and sampleVariance are the closed-form references that the online
// statistics must reproduce under equal weighting.
func sampleMean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func sampleVariance(xs []float64) float64 {
	m := sampleMean(xs)
	ss := 0.0
	for _, x := range xs {
		ss += (x - m) * (x - m)
	}
	return ss / float64(len(xs)-1)
}
