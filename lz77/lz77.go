// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lz77 implements the dictionary matching stage of lzhuff.
//
// The matcher scans the input once from left to right. At every position it
// searches the preceding WindowSize bytes for the longest run that matches the
// upcoming bytes and emits a Token describing that run followed by a single
// literal byte. Matches may overlap the bytes they produce, so a run of a
// single repeated byte costs only two tokens regardless of its length.
//
// A match is never allowed to consume the last byte of the input. Thus, every
// Token carries a real trailing literal and no end-of-stream marker is needed.
package lz77

import "github.com/dsnet/lzhuff/internal/errors"

const (
	// WindowSize is the maximum distance searched backwards for a match.
	WindowSize = 1024

	// MaxSize is the maximum number of bytes that a token stream may expand to.
	MaxSize = 1<<31 - 1
)

var (
	ErrInvalidDistance error = errors.Error{Code: errors.Corrupted, Pkg: "lz77", Msg: "invalid distance"}
	ErrInvalidToken    error = errors.Error{Code: errors.Corrupted, Pkg: "lz77", Msg: "invalid token"}
	ErrTruncated       error = errors.Error{Code: errors.Corrupted, Pkg: "lz77", Msg: "truncated token stream"}
	ErrSyntax          error = errors.Error{Code: errors.Corrupted, Pkg: "lz77", Msg: "invalid token syntax"}
	ErrTooLarge        error = errors.Error{Code: errors.Corrupted, Pkg: "lz77", Msg: "output exceeds MaxSize"}
)

// Token is the unit of output of the matcher.
//
// If Length is zero, then Distance is zero as well and the Token is just the
// Literal. Otherwise, Length bytes are copied starting Distance bytes back in
// the output produced so far, and then Literal is appended.
type Token struct {
	Distance int
	Length   int
	Literal  byte
}

// Size reports the number of bytes that t expands to.
func (t Token) Size() int { return t.Length + 1 }

// Compress splits src into a sequence of tokens.
//
// Among matches of equal length, the one with the smallest distance is chosen.
// The output is fully determined by src.
func Compress(src []byte) []Token {
	var toks []Token
	for i := 0; i < len(src); {
		maxLen := len(src) - i - 1 // Always leave a trailing literal
		maxDist := WindowSize
		if i < maxDist {
			maxDist = i
		}

		var bestLen, bestDist int
		for d := 1; d <= maxDist && bestLen < maxLen; d++ {
			j := i - d
			n := 0
			for n < maxLen && src[j+n] == src[i+n] {
				n++
			}
			if n > bestLen {
				bestLen, bestDist = n, d
			}
		}

		toks = append(toks, Token{Distance: bestDist, Length: bestLen, Literal: src[i+bestLen]})
		i += bestLen + 1
	}
	return toks
}

// Decompress expands the tokens back into the original bytes.
//
// Each copied byte is appended individually so that a copy whose length
// exceeds its distance replicates the bytes it has just produced.
// A token referring before the start of the output or an output larger than
// MaxSize is a fatal error and no partial output is returned.
func Decompress(toks []Token) ([]byte, error) {
	var n int
	for _, t := range toks {
		if err := t.check(n); err != nil {
			return nil, err
		}
		if t.Length >= MaxSize-n {
			return nil, ErrTooLarge
		}
		n += t.Size()
	}

	// Reserve at most maxPrealloc bytes for untrusted lengths.
	out := make([]byte, 0, min(n, maxPrealloc))
	for _, t := range toks {
		pos := len(out) - t.Distance
		for k := 0; k < t.Length; k++ {
			out = append(out, out[pos+k])
		}
		out = append(out, t.Literal)
	}
	return out, nil
}

const maxPrealloc = 1 << 20

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// check verifies that t may be applied to an output of length n.
func (t Token) check(n int) error {
	switch {
	case t.Length < 0 || t.Distance < 0:
		return ErrInvalidToken
	case t.Length == 0 && t.Distance != 0:
		return ErrInvalidToken
	case t.Length > 0 && (t.Distance == 0 || t.Distance > n || t.Distance > WindowSize):
		return ErrInvalidDistance
	}
	return nil
}
