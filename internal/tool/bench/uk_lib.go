// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_uk_lib
// +build !no_uk_lib

package bench

import (
	"io"
	"io/ioutil"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

func init() {
	RegisterEncoder("xz",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("xz",
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				return errReadCloser{err}
			}
			return ioutil.NopCloser(zr)
		})
	RegisterEncoder("lzma",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := lzma.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("lzma",
		func(r io.Reader) io.ReadCloser {
			zr, err := lzma.NewReader(r)
			if err != nil {
				return errReadCloser{err}
			}
			return ioutil.NopCloser(zr)
		})
}
