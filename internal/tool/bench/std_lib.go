// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_std_lib
// +build !no_std_lib

package bench

import (
	"compress/flate"
	"io"
)

func init() {
	RegisterEncoder("std",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := flate.NewWriter(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("std",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})
}
