// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"text/tabwriter"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dsnet/lzhuff/huffman"
	"github.com/dsnet/lzhuff/lz77"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens file",
	Short: "Print the LZ77 tokens of a file, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := ioutil.ReadFile(args[0])
		if err != nil {
			return errors.WithStack(err)
		}
		return writeTokens(os.Stdout, input)
	},
}

var codesCmd = &cobra.Command{
	Use:   "codes file",
	Short: "Print the prefix code table of the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := ioutil.ReadFile(args[0])
		if err != nil {
			return errors.WithStack(err)
		}
		return errors.Wrap(writeCodes(os.Stdout, input), args[0])
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(codesCmd)
}

func writeTokens(w io.Writer, input []byte) error {
	toks := lz77.Compress(input)
	var buf []byte
	for _, t := range toks {
		buf = lz77.AppendText(buf[:0], []lz77.Token{t})
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return errors.WithStack(err)
		}
	}
	var nlits int
	for _, t := range toks {
		if t.Length == 0 {
			nlits++
		}
	}
	glog.V(1).Infof("%d bytes, %d tokens, %d literals only", len(input), len(toks), nlits)
	return nil
}

func writeCodes(w io.Writer, input []byte) error {
	raw := lz77.AppendTokens(nil, lz77.Compress(input))
	cnts := huffman.CountBytes(raw)
	tree := huffman.BuildTree(&cnts)
	tbl, err := tree.Table()
	if err != nil {
		return err
	}
	glog.V(2).Infof("tree: %v", tree)

	var nbits uint64
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "sym\tcount\tlen\tcode\t")
	for sym, c := range tbl {
		if c.Len > 0 {
			fmt.Fprintf(tw, "%02x\t%d\t%d\t%v\t\n", sym, cnts[sym], c.Len, c)
			nbits += cnts[sym] * uint64(c.Len)
		}
	}
	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}
	glog.V(1).Infof("%d token bytes, %d symbols, %d coded bits", len(raw), cnts.NumSyms(), nbits)
	return nil
}
