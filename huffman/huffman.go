// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements the entropy coding stage of lzhuff.
//
// A prefix tree is built from the byte frequencies of the input using the
// classic two-queue construction. Leaves are first ordered by frequency, with
// ties broken by ascending symbol value, while merged nodes are appended to a
// second queue in creation order. At each step, the node with the lower
// frequency at either queue head is removed; on equal frequency, the leaf is
// removed first. Of the two nodes removed, the first becomes the left child
// (bit 0) and the second the right child (bit 1) of a new internal node.
//
// Since the construction is fully determined by the frequency table, a decoder
// given the same Counts rebuilds the identical tree. The codes are written
// starting from the most-significant bit of each byte.
package huffman

import "github.com/dsnet/lzhuff/internal/errors"

// MaxCodeLen is the longest code length that Table can represent.
const MaxCodeLen = 64

var (
	ErrUnknownSymbol error = errors.Error{Code: errors.Invalid, Pkg: "huffman", Msg: "symbol has no code"}
	ErrTruncated     error = errors.Error{Code: errors.Corrupted, Pkg: "huffman", Msg: "truncated bit stream"}
	ErrCorrupt       error = errors.Error{Code: errors.Corrupted, Pkg: "huffman"}
	ErrCodeTooLong   error = errors.Error{Code: errors.Internal, Pkg: "huffman", Msg: "code length exceeds limit"}
)
