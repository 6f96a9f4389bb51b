// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dsnet/lzhuff"
)

// Suffix is appended to the names of compressed files.
const Suffix = ".lzh"

var compressCmd = &cobra.Command{
	Use:   "compress [flags] files...",
	Short: "Compress each file into <file>" + Suffix,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return forEachFile(args, numJobs, func(name string) error {
			dst, err := outputPath(name, outputDir, true)
			if err != nil {
				return err
			}
			return convertFile(name, dst, lzhuff.Encode)
		})
	},
}

var decompressCmd = &cobra.Command{
	Use:   "decompress [flags] files...",
	Short: "Decompress each <file>" + Suffix + " into <file>",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return forEachFile(args, numJobs, func(name string) error {
			dst, err := outputPath(name, outputDir, false)
			if err != nil {
				return err
			}
			return convertFile(name, dst, lzhuff.Decode)
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{compressCmd, decompressCmd} {
		c.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default is alongside each input)")
		c.Flags().BoolVarP(&overwrite, "force", "f", false, "overwrite existing output files")
		rootCmd.AddCommand(c)
	}
}

// outputPath derives the name of the output file for the given input.
func outputPath(name, dir string, compress bool) (string, error) {
	out := name + Suffix
	if !compress {
		if !strings.HasSuffix(name, Suffix) || len(name) == len(Suffix) {
			return "", errors.Errorf("%s: missing %s suffix", name, Suffix)
		}
		out = strings.TrimSuffix(name, Suffix)
	}
	if dir != "" {
		out = filepath.Join(dir, filepath.Base(out))
	}
	return out, nil
}

// convertFile applies fn to the contents of src and writes the result to dst.
func convertFile(src, dst string, fn func([]byte) ([]byte, error)) error {
	if !overwrite {
		if _, err := os.Stat(dst); err == nil {
			return errors.Errorf("%s: already exists (use -f to overwrite)", dst)
		}
	}
	input, err := ioutil.ReadFile(src)
	if err != nil {
		return errors.WithStack(err)
	}
	output, err := fn(input)
	if err != nil {
		return errors.Wrap(err, src)
	}
	if err := ioutil.WriteFile(dst, output, 0664); err != nil {
		return errors.WithStack(err)
	}
	glog.Infof("%s: %d -> %d bytes (%s)", src, len(input), len(output), dst)
	return nil
}

// forEachFile calls fn for every name using up to n concurrent workers.
// Every file is processed even if some fail. Each failure is logged and
// a summary error is returned.
func forEachFile(names []string, n int, fn func(string) error) error {
	if n < 1 {
		n = 1
	}
	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed int
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				if err := fn(name); err != nil {
					glog.Errorf("%v", err)
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}()
	}
	for _, name := range names {
		jobs <- name
	}
	close(jobs)
	wg.Wait()
	if failed > 0 {
		return errors.Errorf("%d of %d files failed", failed, len(names))
	}
	return nil
}
