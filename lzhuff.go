// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzhuff implements a two stage lossless compressor.
//
// The input is first split by an LZ77 matcher (see package lz77) into a
// sequence of tokens. The binary rendering of those tokens is then entropy
// coded with a prefix code derived from its own byte frequencies (see package
// huffman). A compressed stream carries only the information needed to invert
// both stages:
//
//	Counts   frequency table, as written by huffman.AppendCounts
//	BitLen   uvarint number of valid bits that follow
//	Data     (BitLen+7)/8 bytes of prefix codes, most-significant bit first
//
// There is no header, no checksum, and no framing of multiple streams.
package lzhuff

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/dsnet/lzhuff/huffman"
	"github.com/dsnet/lzhuff/internal/errors"
	"github.com/dsnet/lzhuff/lz77"
)

// Error is the interface implemented by all errors originating from this
// module, including those of packages lz77 and huffman.
type Error interface {
	error
	CompressError()

	// IsInvalid reports whether the error was the result of the user
	// misusing the API.
	IsInvalid() bool

	// IsCorrupted reports whether the input stream was corrupted.
	IsCorrupted() bool

	// IsInternal reports whether the error is due to an internal bug.
	IsInternal() bool
}

var (
	ErrCorrupt   error = errors.Error{Code: errors.Corrupted, Pkg: "lzhuff"}
	ErrTruncated error = errors.Error{Code: errors.Corrupted, Pkg: "lzhuff", Msg: "truncated stream"}
	ErrTrailing  error = errors.Error{Code: errors.Corrupted, Pkg: "lzhuff", Msg: "trailing data after stream"}
	ErrClosed    error = errors.Error{Code: errors.Closed, Pkg: "lzhuff"}
	ErrTooLarge  error = errors.Error{Code: errors.Invalid, Pkg: "lzhuff", Msg: "input exceeds lz77.MaxSize"}
)

// Encode compresses src into a single stream.
func Encode(src []byte) ([]byte, error) {
	return appendStream(nil, src)
}

// Decode decompresses a single stream that must span all of src.
func Decode(src []byte) ([]byte, error) {
	r := bytes.NewReader(src)
	out, err := decodeStream(r)
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, ErrTrailing
	}
	return out, nil
}

func appendStream(dst, src []byte) ([]byte, error) {
	if int64(len(src)) > lz77.MaxSize {
		return nil, ErrTooLarge
	}
	raw := lz77.AppendTokens(nil, lz77.Compress(src))
	cnts := huffman.CountBytes(raw)
	tbl, err := huffman.BuildTree(&cnts).Table()
	if err != nil {
		return nil, err
	}
	bits, err := huffman.Encode(raw, tbl)
	if err != nil {
		return nil, err
	}

	dst = huffman.AppendCounts(dst, &cnts)
	dst = binary.AppendUvarint(dst, uint64(bits.N))
	return append(dst, bits.Data...), nil
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

// decodeStream reads exactly one stream from r and never reads past its end.
func decodeStream(r byteReader) ([]byte, error) {
	cnts, err := huffman.ReadCounts(r)
	if err != nil {
		return nil, err
	}
	bitLen, err := readUvarint(r)
	if err != nil {
		return nil, err
	}

	// Every symbol is coded with at least one bit and at most MaxCodeLen bits.
	// A single symbol always has the one bit code.
	total := cnts.Total()
	switch {
	case bitLen > 1<<62:
		return nil, ErrCorrupt
	case bitLen < total, (bitLen+huffman.MaxCodeLen-1)/huffman.MaxCodeLen > total:
		return nil, ErrCorrupt
	case cnts.NumSyms() == 1 && bitLen != total:
		return nil, ErrCorrupt
	}

	var bb bytes.Buffer
	if _, err := io.CopyN(&bb, r, int64((bitLen+7)/8)); err != nil {
		if err == io.EOF {
			err = ErrTruncated
		}
		return nil, err
	}

	raw, err := huffman.Decode(huffman.Bits{Data: bb.Bytes(), N: int64(bitLen)}, huffman.BuildTree(&cnts))
	if err != nil {
		return nil, err
	}
	if huffman.CountBytes(raw) != cnts {
		return nil, ErrCorrupt
	}
	toks, err := lz77.ParseTokens(raw)
	if err != nil {
		return nil, err
	}
	out, err := lz77.Decompress(toks)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// readUvarint is like binary.ReadUvarint, but reports overflow as ErrCorrupt
// and a premature end as ErrTruncated.
func readUvarint(r io.ByteReader) (uint64, error) {
	var x uint64
	var s uint
	for i := 0; i < binary.MaxVarintLen64; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = ErrTruncated
			}
			return 0, err
		}
		if b < 0x80 {
			if i == binary.MaxVarintLen64-1 && b > 1 {
				return 0, ErrCorrupt
			}
			return x | uint64(b)<<s, nil
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
	return 0, ErrCorrupt
}
