// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzhuff compresses and inspects files using the lzhuff format.
//
// Example usage:
//
//	$ lzhuff compress -j 4 twain.txt repeats.bin
//	$ lzhuff decompress -o out/ twain.txt.lzh
//	$ lzhuff tokens twain.txt | head
//	$ lzhuff codes twain.txt
//	$ lzhuff verify twain.txt repeats.bin
//	$ lzhuff bench -tests ratio -sizes 1e4,1e5 -chart ratio.svg
//
// Logging is done with glog, whose flags (e.g., -v and -logtostderr) are
// accepted by every command.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var (
	outputDir string // Directory for output files; empty means alongside input
	numJobs   int    // Number of files processed concurrently
	overwrite bool   // Whether existing output files may be replaced
)

var rootCmd = &cobra.Command{
	Use:           "lzhuff",
	Short:         "LZ77 and Huffman based compression tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Mark the standard flags as parsed so that glog does not complain.
		flag.CommandLine.Parse(nil)
	},
}

func init() {
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentFlags().IntVarP(&numJobs, "jobs", "j", runtime.NumCPU(), "number of files processed concurrently")
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		glog.Error(err)
	}
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
