// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"io/ioutil"
	"os"

	hashutil "github.com/dsnet/golib/hashmerge"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dsnet/lzhuff"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] files...",
	Short: "Check that each file survives a compression round-trip",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(os.Stdout, args, numJobs)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

type verifyResult struct {
	rawSize  int64
	compSize int64
	crc      uint32 // CRC-32 of the raw file
	err      error
}

// verifyFile compresses and decompresses the file and compares the result.
func verifyFile(name string) (r verifyResult) {
	input, err := ioutil.ReadFile(name)
	if err != nil {
		r.err = errors.WithStack(err)
		return r
	}
	r.rawSize, r.crc = int64(len(input)), crc32.ChecksumIEEE(input)

	comp, err := lzhuff.Encode(input)
	if err != nil {
		r.err = errors.Wrapf(err, "%s: encode", name)
		return r
	}
	r.compSize = int64(len(comp))
	output, err := lzhuff.Decode(comp)
	if err != nil {
		r.err = errors.Wrapf(err, "%s: decode", name)
		return r
	}
	if !bytes.Equal(output, input) {
		r.err = errors.Errorf("%s: round-trip mismatch", name)
	}
	return r
}

// runVerify verifies all files concurrently and reports the results in
// argument order, followed by the combined CRC-32 of all inputs as if they
// were concatenated. The combined CRC-32 is omitted if any file failed.
func runVerify(w io.Writer, names []string, n int) error {
	results := make([]verifyResult, len(names))
	idxs := make(map[string][]int)
	for i, name := range names {
		idxs[name] = append(idxs[name], i)
	}
	err := forEachFile(uniqueNames(names), n, func(name string) error {
		r := verifyFile(name)
		for _, i := range idxs[name] {
			results[i] = r
		}
		return r.err
	})

	var crc uint32
	var rawTotal, compTotal int64
	var failed int
	for i, r := range results {
		if r.err != nil {
			fmt.Fprintf(w, "%s: FAIL\n", names[i])
			failed++
			continue
		}
		ratio := float64(r.rawSize) / float64(r.compSize)
		fmt.Fprintf(w, "%s: ok  %d -> %d bytes  %.2fx  crc32:%08x\n", names[i], r.rawSize, r.compSize, ratio, r.crc)
		if r.rawSize > 0 {
			crc = hashutil.CombineCRC32(crc32.IEEE, crc, r.crc, r.rawSize)
		}
		rawTotal += r.rawSize
		compTotal += r.compSize
	}
	if failed > 0 {
		fmt.Fprintf(w, "total: %d -> %d bytes  %d failed\n", rawTotal, compTotal, failed)
	} else {
		fmt.Fprintf(w, "total: %d -> %d bytes  crc32:%08x\n", rawTotal, compTotal, crc)
	}
	glog.V(1).Infof("verified %d files", len(names))
	return err
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
