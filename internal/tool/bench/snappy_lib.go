// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_snappy_lib
// +build !no_snappy_lib

package bench

import (
	"io"
	"io/ioutil"

	"github.com/golang/snappy"
)

func init() {
	RegisterEncoder("snappy",
		func(w io.Writer, lvl int) io.WriteCloser {
			return snappy.NewBufferedWriter(w)
		})
	RegisterDecoder("snappy",
		func(r io.Reader) io.ReadCloser {
			return ioutil.NopCloser(snappy.NewReader(r))
		})
}
