// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lz77

import "encoding/binary"

// The binary token format is a concatenation of records of the form:
//
//	Distance  uvarint
//	Length    uvarint
//	Literal   1 byte
//
// This is the representation handed to the entropy coder. Short distances
// and lengths dominate real inputs, so most records occupy three bytes.

// AppendTokens appends the binary encoding of toks to dst.
func AppendTokens(dst []byte, toks []Token) []byte {
	for _, t := range toks {
		dst = binary.AppendUvarint(dst, uint64(t.Distance))
		dst = binary.AppendUvarint(dst, uint64(t.Length))
		dst = append(dst, t.Literal)
	}
	return dst
}

// ParseTokens decodes a sequence of tokens produced by AppendTokens.
// Only the syntax is checked; the distances are validated by Decompress.
func ParseTokens(b []byte) ([]Token, error) {
	var toks []Token
	for len(b) > 0 {
		dist, n := parseInt(b)
		if n <= 0 {
			return nil, errVarint(n)
		}
		b = b[n:]
		length, n := parseInt(b)
		if n <= 0 {
			return nil, errVarint(n)
		}
		b = b[n:]
		if len(b) == 0 {
			return nil, ErrTruncated
		}
		toks = append(toks, Token{Distance: dist, Length: length, Literal: b[0]})
		b = b[1:]
	}
	return toks, nil
}

// parseInt reads a uvarint that must fit in a non-negative int.
// It returns n <= 0 following the convention of binary.Uvarint.
func parseInt(b []byte) (int, int) {
	v, n := binary.Uvarint(b)
	if n > 0 && v > uint64(^uint(0)>>1) {
		return 0, -n
	}
	return int(v), n
}

func errVarint(n int) error {
	if n == 0 {
		return ErrTruncated
	}
	return ErrInvalidToken
}
