// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dsnet/lzhuff/internal/testutil"
	"github.com/dsnet/lzhuff/internal/tool/bench"
)

const (
	defaultTests  = "encRate,decRate,ratio"
	defaultLevels = "6"
	defaultSizes  = "1e4,1e5"
)

var benchFlags struct {
	tests, codecs, paths, files, levels, sizes string
	chart                                      string
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare lzhuff against other compression codecs",
	Long: `Compare lzhuff against other compression codecs.

Lists are separated by commas or colons. Levels and sizes accept SI and IEC
prefixes (e.g., 1e5, 64Ki). Files named "gen:<name>" refer to the built-in
synthetic corpora. A chart of the mean result of the last test is written if
-chart names an .svg or .png file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench()
	},
}

func init() {
	f := benchCmd.Flags()
	f.StringVar(&benchFlags.tests, "tests", defaultTests, "list of different benchmark tests")
	f.StringVar(&benchFlags.codecs, "codecs", strings.Join(bench.CodecNames(), ","), "list of codecs to benchmark")
	f.StringVar(&benchFlags.paths, "paths", ".", "list of paths to search for test files")
	f.StringVar(&benchFlags.files, "files", strings.Join(testutil.CorpusNames(), ","), "list of input files to benchmark")
	f.StringVar(&benchFlags.levels, "levels", defaultLevels, "list of compression levels to benchmark")
	f.StringVar(&benchFlags.sizes, "sizes", defaultSizes, "list of input sizes to benchmark")
	f.StringVar(&benchFlags.chart, "chart", "", "output file for a chart of the results")
	rootCmd.AddCommand(benchCmd)
}

var listSep = regexp.MustCompile("[,:]")

// splitList splits a flag list. The "gen:" prefix of corpus names is not
// treated as a separator.
func splitList(s string) []string {
	s = strings.Replace(s, testutil.GenPrefix, "\x00", -1)
	var ss []string
	for _, v := range listSep.Split(s, -1) {
		if v = strings.Replace(v, "\x00", testutil.GenPrefix, -1); v != "" {
			ss = append(ss, v)
		}
	}
	return ss
}

func parsePrefixes(s string) ([]int, error) {
	var ns []int
	for _, v := range splitList(s) {
		n, err := strconv.ParsePrefix(v, strconv.AutoParse)
		if err != nil {
			return nil, errors.Errorf("invalid number: %q", v)
		}
		ns = append(ns, int(n))
	}
	return ns, nil
}

func runBench() error {
	var tests []int
	for _, s := range splitList(benchFlags.tests) {
		t, ok := bench.ParseTest(s)
		if !ok {
			return errors.Errorf("invalid test: %q", s)
		}
		tests = append(tests, t)
	}
	var codecs []string
	for _, c := range splitList(benchFlags.codecs) {
		if bench.Encoders[c] == nil || bench.Decoders[c] == nil {
			return errors.Errorf("unknown codec: %q", c)
		}
		codecs = append(codecs, c)
	}
	levels, err := parsePrefixes(benchFlags.levels)
	if err != nil {
		return err
	}
	sizes, err := parsePrefixes(benchFlags.sizes)
	if err != nil {
		return err
	}
	files := splitList(benchFlags.files)
	if len(codecs) == 0 || len(files) == 0 || len(levels) == 0 || len(sizes) == 0 {
		return errors.New("nothing to benchmark")
	}
	bench.Paths = splitList(benchFlags.paths)

	ts := time.Now()
	var lastResults [][]bench.Result
	var lastTitle string
	for _, t := range tests {
		fmt.Printf("BENCHMARK: %s\n", bench.TestName(t))

		// Progress ticker.
		var cnt int
		total := len(codecs) * len(files) * len(levels) * len(sizes)
		tick := func() {
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		results, names, title, suffix := bench.RunSuite(t, codecs, files, levels, sizes, tick)
		bench.PrintResults(os.Stdout, results, names, codecs, title, suffix)
		fmt.Println()
		lastResults, lastTitle = results, bench.TestName(t)+" ("+title+")"
	}
	fmt.Printf("RUNTIME: %v\n", time.Since(ts))

	if benchFlags.chart != "" {
		f, err := os.Create(benchFlags.chart)
		if err != nil {
			return errors.WithStack(err)
		}
		format := strings.TrimPrefix(filepath.Ext(benchFlags.chart), ".")
		if err := bench.RenderChart(f, format, lastTitle, lastResults, codecs); err != nil {
			f.Close()
			return errors.Wrap(err, benchFlags.chart)
		}
		if err := f.Close(); err != nil {
			return errors.WithStack(err)
		}
		glog.Infof("wrote chart to %s", benchFlags.chart)
	}
	return nil
}
