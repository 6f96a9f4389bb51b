// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
)

// MeanResults averages the results of every codec across all rows.
// Missing or invalid results are skipped.
func MeanResults(results [][]Result, ncodecs int) []float64 {
	sums := make([]float64, ncodecs)
	cnts := make([]int, ncodecs)
	for _, row := range results {
		for i, r := range row {
			if i < ncodecs && r.R > 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				sums[i] += r.R
				cnts[i]++
			}
		}
	}
	for i := range sums {
		if cnts[i] > 0 {
			sums[i] /= float64(cnts[i])
		}
	}
	return sums
}

// RenderChart draws the mean result of every codec as a bar chart.
// The format is either "svg" or "png".
func RenderChart(w io.Writer, format, title string, results [][]Result, codecs []string) error {
	var render chart.RendererProvider
	switch strings.ToLower(format) {
	case "svg":
		render = chart.SVG
	case "png":
		render = chart.PNG
	default:
		return fmt.Errorf("bench: unknown chart format: %q", format)
	}

	var bars []chart.Value
	var max float64
	for i, v := range MeanResults(results, len(codecs)) {
		if v > 0 {
			bars = append(bars, chart.Value{Label: codecs[i], Value: v})
			max = math.Max(max, v)
		}
	}
	if len(bars) == 0 {
		return fmt.Errorf("bench: no results to chart")
	}

	bc := chart.BarChart{
		Title:    title,
		Width:    96 * (len(bars) + 1),
		Height:   480,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1.1 * max},
		},
		Bars: bars,
	}
	return bc.Render(render, w)
}
