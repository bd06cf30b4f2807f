package main

import (
	"strings"
	"testing"

	"github.com/AdrianoMourthe/onlinestat/core/testenv"
	"github.com/AdrianoMourthe/onlinestat/stat"
)

func TestDescribe(t *testing.T) {
	assert, require := testenv.MakeAR(t)

	d, e := describe(strings.NewReader("3\n1\nbogus\n\n4\n2\n"), 0, stat.DefaultQuantileLevels)
	require.NoError(e)
	assert.EqualValues(4, d.Summary.Count)
	assert.Equal(2.5, d.Summary.Mean)
	assert.Equal(1.0, d.Summary.Min)
	assert.Equal(4.0, d.Summary.Max)
	require.NotNil(d.Skewness)
	assert.InDelta(0.0, *d.Skewness, 1e-9)
	require.NotNil(d.Kurtosis)

	var decoded map[string]any
	testenv.FromJSON(testenv.ToJSON(d), &decoded)
	summary := decoded["summary"].(map[string]any)
	assert.EqualValues(4, summary["count"])
	assert.EqualValues(2.5, summary["mean"])
	quantiles := decoded["quantiles"].(map[string]any)
	assert.Len(quantiles, 3)
	assert.Contains(quantiles, "0.25")
	assert.Contains(quantiles, "0.5")
	assert.Contains(quantiles, "0.75")
}

func TestDescribeEmpty(t *testing.T) {
	assert, require := testenv.MakeAR(t)

	d, e := describe(strings.NewReader(""), 0, stat.DefaultQuantileLevels)
	require.NoError(e)
	assert.EqualValues(0, d.Summary.Count)
	assert.Nil(d.Skewness)
	assert.Empty(d.Quantiles)

	var decoded map[string]any
	testenv.FromJSON(testenv.ToJSON(d), &decoded)
	assert.NotContains(decoded, "skewness")
	assert.EqualValues(0, decoded["summary"].(map[string]any)["count"])
}

func TestDescribeBadLevels(t *testing.T) {
	assert, _ := testenv.MakeAR(t)

	_, e := describe(strings.NewReader("1\n"), 0, []float64{0.5, 0.25})
	assert.Error(e)
}
