// Command onlinestat-describe reads newline-separated numbers from stdin and
// prints a single-pass description of their distribution as JSON.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/AdrianoMourthe/onlinestat/core/logging"
	"github.com/AdrianoMourthe/onlinestat/core/version"
	"github.com/AdrianoMourthe/onlinestat/stat"
	"github.com/AdrianoMourthe/onlinestat/weights"
)

var logger = logging.New("describe")

type description struct {
	Summary   stat.Snapshot      `json:"summary"`
	Skewness  *float64           `json:"skewness,omitempty"`
	Kurtosis  *float64           `json:"kurtosis,omitempty"`
	Quantiles map[string]float64 `json:"quantiles"`
}

// unlessNaN returns a JSON-marshalable pointer, nil for NaN.
func unlessNaN(x float64) *float64 {
	if math.IsNaN(x) {
		return nil
	}
	return &x
}

var (
	lookback int
	levels   cli.Float64Slice
)

var app = &cli.App{
	Version: version.V.String(),
	Usage:   "Describe a stream of numbers from stdin.",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:        "lookback",
			Usage:       "exponential lookback `window`; 0 weights all observations equally",
			Destination: &lookback,
		},
		&cli.Float64SliceFlag{
			Name:        "levels",
			Usage:       "quantile `levels` to estimate",
			Value:       cli.NewFloat64Slice(stat.DefaultQuantileLevels...),
			Destination: &levels,
		},
	},
	Action: func(c *cli.Context) error {
		d, e := describe(os.Stdin, lookback, levels.Value())
		if e != nil {
			return e
		}
		j, e := json.Marshal(d)
		if e != nil {
			return e
		}
		fmt.Println(string(j))
		return nil
	},
}

// describe feeds newline-separated numbers from r into a summary, moments, and
// quantile estimator, skipping blank and unparseable lines.
func describe(r io.Reader, lookback int, qLevels []float64) (*description, error) {
	var w, mw weights.Policy
	if lookback > 0 {
		w = weights.NewExponentialLookback(lookback)
		mw = weights.NewExponentialLookback(lookback)
	}
	summary := stat.NewSummary(w)
	moments := stat.NewMoments(mw)
	quantiles, e := stat.NewQuantileMM(qLevels, nil)
	if e != nil {
		return nil, e
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		x, e := strconv.ParseFloat(line, 64)
		if e != nil {
			logger.Warn("skipping unparseable line", zap.String("line", line))
			continue
		}
		summary.Absorb(x)
		moments.Absorb(x)
		quantiles.Absorb(x)
	}
	if e := scanner.Err(); e != nil {
		return nil, e
	}

	d := &description{
		Summary:   summary.Read(),
		Skewness:  unlessNaN(moments.Skewness()),
		Kurtosis:  unlessNaN(moments.Kurtosis()),
		Quantiles: map[string]float64{},
	}
	if summary.Count() > 0 {
		for i, est := range quantiles.Value() {
			d.Quantiles[fmt.Sprintf("%v", quantiles.Levels()[i])] = est
		}
	}
	return d, nil
}

func main() {
	if e := app.Run(os.Args); e != nil {
		logger.Fatal("app exit", zap.Error(e))
	}
}
