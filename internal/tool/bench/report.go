// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"
	"io"
	"math"
	"strings"
)

var testNames = map[int]string{
	TestEncodeRate:    "encRate",
	TestDecodeRate:    "decRate",
	TestCompressRatio: "ratio",
}

// TestName returns the flag name of a test kind.
func TestName(t int) string { return testNames[t] }

// ParseTest parses the flag name of a test kind.
func ParseTest(s string) (int, bool) {
	for t, name := range testNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// RunSuite runs the benchmark suite for a single test kind.
// It reports the unit of the results and a suffix for printed values.
func RunSuite(t int, codecs, files []string, levels, sizes []int, tick func()) (results [][]Result, names []string, title, suffix string) {
	switch t {
	case TestEncodeRate:
		results, names = BenchmarkEncoderSuite(codecs, files, levels, sizes, tick)
		return results, names, "MB/s", ""
	case TestDecodeRate:
		results, names = BenchmarkDecoderSuite(codecs, files, levels, sizes, tick)
		return results, names, "MB/s", ""
	case TestCompressRatio:
		results, names = BenchmarkRatioSuite(codecs, files, levels, sizes, tick)
		return results, names, "ratio", "x"
	default:
		panic("unknown test")
	}
}

// PrintResults writes the results as an aligned table with a value and a
// delta column for every codec. The delta is relative to the first codec.
func PrintResults(w io.Writer, results [][]Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		var sb strings.Builder
		sb.WriteByte('\t')
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				sb.WriteString(s + strings.Repeat(" ", maxLens[i]-len(s)))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				sb.WriteString(strings.Repeat(" ", 6+maxLens[i]-len(s)) + s)
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				sb.WriteString(strings.Repeat(" ", 2+maxLens[i]-len(s)) + s)
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}
