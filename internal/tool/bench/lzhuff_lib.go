// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/dsnet/lzhuff"
)

func init() {
	RegisterEncoder("lzhuff",
		func(w io.Writer, lvl int) io.WriteCloser {
			return lzhuff.NewWriter(w)
		})
	RegisterDecoder("lzhuff",
		func(r io.Reader) io.ReadCloser {
			return lzhuff.NewReader(r)
		})
}
