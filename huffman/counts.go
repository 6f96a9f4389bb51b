// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"encoding/binary"
	"io"
)

// Counts is the frequency of every byte value in some input.
type Counts [256]uint64

// CountBytes returns the frequency table of src.
func CountBytes(src []byte) (c Counts) {
	for _, b := range src {
		c[b]++
	}
	return c
}

// Total reports the sum of all frequencies.
func (c *Counts) Total() (n uint64) {
	for _, v := range c {
		n += v
	}
	return n
}

// NumSyms reports the number of symbols with a non-zero frequency.
func (c *Counts) NumSyms() (n int) {
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}

// AppendCounts appends the serialized form of c to dst.
//
// The number of present symbols is written as a uvarint, followed by a
// (symbol, frequency) pair for each of them in ascending symbol order,
// where the symbol is a single byte and the frequency a uvarint.
func AppendCounts(dst []byte, c *Counts) []byte {
	dst = binary.AppendUvarint(dst, uint64(c.NumSyms()))
	for sym, v := range c {
		if v > 0 {
			dst = append(dst, byte(sym))
			dst = binary.AppendUvarint(dst, v)
		}
	}
	return dst
}

// ReadCounts reads a frequency table written by AppendCounts.
// It never reads past the end of the table.
func ReadCounts(r io.ByteReader) (Counts, error) {
	var c Counts
	br := &byteReader{ByteReader: r}
	n, err := binary.ReadUvarint(br)
	if err != nil {
		return Counts{}, br.mapError()
	}
	if n > uint64(len(c)) {
		return Counts{}, ErrCorrupt
	}

	var total uint64
	prev := -1
	for i := 0; i < int(n); i++ {
		sym, err := br.ReadByte()
		if err != nil {
			return Counts{}, br.mapError()
		}
		if int(sym) <= prev {
			return Counts{}, ErrCorrupt // Unsorted or duplicate symbol
		}
		prev = int(sym)

		v, err := binary.ReadUvarint(br)
		if err != nil {
			return Counts{}, br.mapError()
		}
		if v == 0 || total+v < total {
			return Counts{}, ErrCorrupt
		}
		total += v
		c[sym] = v
	}
	return c, nil
}

// byteReader records the first error of the underlying reader so that it can
// be told apart from a malformed varint.
type byteReader struct {
	io.ByteReader
	err error
}

func (br *byteReader) ReadByte() (byte, error) {
	c, err := br.ByteReader.ReadByte()
	if err != nil && br.err == nil {
		br.err = err
	}
	return c, err
}

func (br *byteReader) mapError() error {
	switch br.err {
	case nil:
		return ErrCorrupt // Varint overflow
	case io.EOF, io.ErrUnexpectedEOF:
		return ErrTruncated
	default:
		return br.err
	}
}
