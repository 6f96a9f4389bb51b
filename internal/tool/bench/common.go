// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of lzhuff against other compression
// implementations with respect to encode speed, decode speed, and ratio.
//
// Unlike a comparison of implementations of a single format, every codec here
// produces its own format. Thus, a decoder is always benchmarked on the output
// of the encoder registered under the same name.
package bench

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"testing"

	strconv "github.com/dsnet/golib/unitconv"

	"github.com/dsnet/lzhuff/internal/testutil"
)

const (
	TestEncodeRate = iota
	TestDecodeRate
	TestCompressRatio
)

// Encoder returns a compressing io.WriteCloser at the given level.
// Codecs without levels ignore it.
type Encoder func(io.Writer, int) io.WriteCloser

// Decoder returns a decompressing io.ReadCloser.
type Decoder func(io.Reader) io.ReadCloser

var (
	Encoders map[string]Encoder
	Decoders map[string]Decoder

	// List of search paths for test files.
	Paths []string
)

func RegisterEncoder(name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[string]Encoder)
	}
	Encoders[name] = enc
}

func RegisterDecoder(name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[string]Decoder)
	}
	Decoders[name] = dec
}

// CodecNames returns the names of all codecs with both an encoder and a
// decoder. The "lzhuff" codec is always listed first.
func CodecNames() []string {
	var names []string
	for name := range Encoders {
		if _, ok := Decoders[name]; ok && name != "lzhuff" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if Encoders["lzhuff"] != nil && Decoders["lzhuff"] != nil {
		names = append([]string{"lzhuff"}, names...)
	}
	return names
}

// BenchmarkEncoder benchmarks a single encoder on the given input data using
// the selected compression level and reports the result.
func BenchmarkEncoder(input []byte, enc Encoder, lvl int) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			wr := enc(ioutil.Discard, lvl)
			_, err := io.Copy(wr, bytes.NewBuffer(input))
			if err := wr.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// errReadCloser reports err for every operation. It is returned by decoders
// whose constructor fails on a malformed stream header.
type errReadCloser struct{ err error }

func (r errReadCloser) Read([]byte) (int, error) { return 0, r.err }
func (r errReadCloser) Close() error             { return r.err }

type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkEncoderSuite runs multiple benchmarks across all encoder
// implementations, files, levels, and sizes.
//
// The values returned have the following structure:
//
//	results: [len(files)*len(levels)*len(sizes)][len(encs)]Result
//	names:   [len(files)*len(levels)*len(sizes)]string
func BenchmarkEncoderSuite(encs, files []string, levels, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, files, levels, sizes, tick,
		func(input []byte, enc string, lvl int) Result {
			result := BenchmarkEncoder(input, Encoders[enc], lvl)
			if result.N == 0 {
				return Result{}
			}
			us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
			rate := float64(result.Bytes) / us
			return Result{R: rate}
		})
}

// BenchmarkDecoder benchmarks a single decoder on the given pre-compressed
// input data and reports the result.
func BenchmarkDecoder(input []byte, dec Decoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if dec == nil {
			b.Fatalf("unexpected error: nil Decoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			rd := dec(bufio.NewReader(bytes.NewBuffer(input)))
			cnt, err := io.Copy(ioutil.Discard, rd)
			if err := rd.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(cnt))
		}
	})
}

// BenchmarkDecoderSuite runs multiple benchmarks across all decoder
// implementations, files, levels, and sizes. Each decoder is given the output
// of the encoder of the same name.
//
// The values returned have the following structure:
//
//	results: [len(files)*len(levels)*len(sizes)][len(decs)]Result
//	names:   [len(files)*len(levels)*len(sizes)]string
func BenchmarkDecoderSuite(decs, files []string, levels, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(decs, files, levels, sizes, tick,
		func(input []byte, dec string, lvl int) Result {
			output, err := encode(Encoders[dec], input, lvl)
			if err != nil {
				return Result{}
			}
			result := BenchmarkDecoder(output, Decoders[dec])
			if result.N == 0 {
				return Result{}
			}
			us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
			rate := float64(result.Bytes) / us
			return Result{R: rate}
		})
}

// BenchmarkRatioSuite runs multiple benchmarks across all encoder
// implementations, files, levels, and sizes.
//
// The values returned have the following structure:
//
//	results: [len(files)*len(levels)*len(sizes)][len(encs)]Result
//	names:   [len(files)*len(levels)*len(sizes)]string
func BenchmarkRatioSuite(encs, files []string, levels, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, files, levels, sizes, tick,
		func(input []byte, enc string, lvl int) Result {
			output, err := encode(Encoders[enc], input, lvl)
			if err != nil {
				return Result{}
			}
			ratio := float64(len(input)) / float64(len(output))
			return Result{R: ratio}
		})
}

func encode(enc Encoder, input []byte, lvl int) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("nil Encoder")
	}
	buf := new(bytes.Buffer)
	wr := enc(buf, lvl)
	if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	if err := wr.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type benchFunc func(input []byte, codec string, level int) Result

func benchmarkSuite(codecs, files []string, levels, sizes []int, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	d0 := len(files) * len(levels) * len(sizes)
	d1 := len(codecs)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, d1)
	}
	names := make([]string, d0)

	// Run the benchmark for every codec, file, level, and size.
	var i int
	for _, f := range files {
		for _, l := range levels {
			for _, n := range sizes {
				b, err := testutil.LoadFile(getPath(f), n)
				name := getName(f, l, len(b))
				for j, c := range codecs {
					if tick != nil {
						tick()
					}
					names[i] = name
					if err == nil {
						results[i][j] = run(b, c, l)
					}
					results[i][j].D = results[i][j].R / results[i][0].R
				}
				i++
			}
		}
	}
	return results, names
}

func getPath(file string) string {
	if path.IsAbs(file) || strings.HasPrefix(file, testutil.GenPrefix) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, l, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	f = strings.TrimPrefix(path.Base(f), testutil.GenPrefix)
	return fmt.Sprintf("%s:%d:%s", f, l, sn)
}
