// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_lz4_lib
// +build !no_lz4_lib

package bench

import (
	"io"
	"io/ioutil"

	"github.com/pierrec/lz4/v4"
)

func init() {
	RegisterEncoder("lz4",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw := lz4.NewWriter(w)
			if err := zw.Apply(lz4.CompressionLevelOption(lz4Level(lvl))); err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("lz4",
		func(r io.Reader) io.ReadCloser {
			return ioutil.NopCloser(lz4.NewReader(r))
		})
}

// lz4Level maps a level in 1..9 onto the levels of the lz4 package.
// Lower levels select the fast compressor.
func lz4Level(lvl int) lz4.CompressionLevel {
	switch {
	case lvl <= 1:
		return lz4.Fast
	case lvl >= 9:
		return lz4.Level9
	default:
		return lz4.CompressionLevel(1 << uint(8+lvl))
	}
}
