package stat_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/AdrianoMourthe/onlinestat/stat"
)

func TestSummaryRead(t *testing.T) {
	assert, _ := makeAR(t)

	s := stat.NewSummary(nil)
	snap := s.Read()
	assert.EqualValues(0, snap.Count)
	assert.Equal(`{"count":0}`, toJSON(snap))

	for _, x := range []float64{1, 2, 3, 4} {
		s.Absorb(x)
	}
	snap = s.Read()
	assert.EqualValues(4, snap.Count)
	assert.Equal(2.5, snap.Mean)
	assert.InDelta(5.0/3.0, snap.Variance, 1e-12)
	assert.Equal(1.0, snap.Min)
	assert.Equal(4.0, snap.Max)

	j := toJSON(snap)
	assert.True(strings.Contains(j, `"count":4`), j)
	assert.True(strings.Contains(j, `"mean":2.5`), j)
}

func TestSnapshotJSON(t *testing.T) {
	assert, _ := makeAR(t)

	s := stat.NewSummary(nil)
	for _, x := range []float64{1, 2, 3, 4} {
		s.Absorb(x)
	}
	snap := s.Read()
	var decoded stat.Snapshot
	fromJSON(toJSON(snap), &decoded)
	assert.Equal(snap, decoded)

	// NaN fields are omitted and decode back as zero values
	one := stat.NewSummary(nil)
	one.Absorb(7)
	j := toJSON(one.Read())
	assert.NotContains(j, "variance")
	var partial stat.Snapshot
	fromJSON(j, &partial)
	assert.EqualValues(1, partial.Count)
	assert.Equal(7.0, partial.Mean)
	assert.Zero(partial.Variance)
}

func TestSnapshotAdd(t *testing.T) {
	assert, _ := makeAR(t)

	rng := rand.New(rand.NewSource(10))
	whole := stat.NewSummary(nil)
	a, b := stat.NewSummary(nil), stat.NewSummary(nil)
	for i := 0; i < 500; i++ {
		x := rng.NormFloat64()*2 + 3
		whole.Absorb(x)
		if i%3 == 0 {
			a.Absorb(x)
		} else {
			b.Absorb(x)
		}
	}

	sum := a.Read().Add(b.Read())
	want := whole.Read()
	assert.Equal(want.Count, sum.Count)
	assert.InDelta(want.Mean, sum.Mean, 1e-9)
	assert.InEpsilon(want.Variance, sum.Variance, 1e-9)
	assert.Equal(want.Min, sum.Min)
	assert.Equal(want.Max, sum.Max)

	// identity on empty snapshots
	empty := stat.Snapshot{}
	assert.Equal(sum, empty.Add(sum))
	assert.Equal(sum, sum.Add(empty))
}

func TestSummaryMerge(t *testing.T) {
	assert, _ := makeAR(t)

	a, b := stat.NewSummary(nil), stat.NewSummary(nil)
	for _, x := range []float64{1, 2} {
		a.Absorb(x)
	}
	for _, x := range []float64{3, 4} {
		b.Absorb(x)
	}
	a.Merge(b)
	snap := a.Read()
	assert.EqualValues(4, snap.Count)
	assert.Equal(2.5, snap.Mean)
	assert.InDelta(5.0/3.0, snap.Variance, 1e-12)
	assert.Equal(1.0, snap.Min)
	assert.Equal(4.0, snap.Max)
}

func TestSnapshotScale(t *testing.T) {
	assert, _ := makeAR(t)

	s := stat.NewSummary(nil)
	for _, x := range []float64{1, 2, 3, 4} {
		s.Absorb(x)
	}
	scaled := s.Read().Scale(-2)
	assert.Equal(-5.0, scaled.Mean)
	assert.InDelta(4*5.0/3.0, scaled.Variance, 1e-12)
	assert.Equal(-8.0, scaled.Min)
	assert.Equal(-2.0, scaled.Max)
}
