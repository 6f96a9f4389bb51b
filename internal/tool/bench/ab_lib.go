// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_ab_lib
// +build !no_ab_lib

package bench

import (
	"io"
	"io/ioutil"

	"github.com/andybalholm/brotli"
)

func init() {
	RegisterEncoder("brotli",
		func(w io.Writer, lvl int) io.WriteCloser {
			if lvl > brotli.BestCompression {
				lvl = brotli.BestCompression
			}
			return brotli.NewWriterLevel(w, lvl)
		})
	RegisterDecoder("brotli",
		func(r io.Reader) io.ReadCloser {
			return ioutil.NopCloser(brotli.NewReader(r))
		})
}
