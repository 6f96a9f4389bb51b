// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_kp_lib
// +build !no_kp_lib

package bench

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"io/ioutil"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/huff0"
	"github.com/klauspost/compress/zstd"
)

func init() {
	RegisterEncoder("kpflate",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := flate.NewWriter(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("kpflate",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})
	RegisterEncoder("zstd",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(lvl)))
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("zstd",
		func(r io.Reader) io.ReadCloser {
			zr, err := zstd.NewReader(r)
			if err != nil {
				return errReadCloser{err}
			}
			return zr.IOReadCloser()
		})
	RegisterEncoder("huff0",
		func(w io.Writer, lvl int) io.WriteCloser {
			return &huff0Writer{wr: w}
		})
	RegisterDecoder("huff0",
		func(r io.Reader) io.ReadCloser {
			return &huff0Reader{rd: r}
		})
}

// The huff0 codec has no framing of its own and only operates on blocks.
// Each block is written as a mode byte, the uvarint size of the raw data,
// and then the payload for that mode.
const (
	huff0BlockSize = 1 << 16

	huff0Raw  = 0 // Payload is the raw data
	huff0RLE  = 1 // Payload is a single byte repeated
	huff0Huff = 2 // Payload is a uvarint length followed by huff0 data
)

var errHuff0Corrupt = errors.New("huff0: corrupted block framing")

// huff0Writer is an entropy coder without any LZ77 stage. It serves as a
// baseline for the entropy stage of lzhuff.
type huff0Writer struct {
	wr  io.Writer
	buf []byte
}

func (zw *huff0Writer) Write(buf []byte) (int, error) {
	zw.buf = append(zw.buf, buf...)
	return len(buf), nil
}

func (zw *huff0Writer) Close() error {
	var out []byte
	for b := zw.buf; len(b) > 0; {
		blk := b
		if len(blk) > huff0BlockSize {
			blk = blk[:huff0BlockSize]
		}
		b = b[len(blk):]

		comp, _, err := huff0.Compress1X(blk, nil)
		switch err {
		case nil:
			out = append(out, huff0Huff)
			out = binary.AppendUvarint(out, uint64(len(blk)))
			out = binary.AppendUvarint(out, uint64(len(comp)))
			out = append(out, comp...)
		case huff0.ErrUseRLE:
			out = append(out, huff0RLE)
			out = binary.AppendUvarint(out, uint64(len(blk)))
			out = append(out, blk[0])
		case huff0.ErrIncompressible:
			out = append(out, huff0Raw)
			out = binary.AppendUvarint(out, uint64(len(blk)))
			out = append(out, blk...)
		default:
			return err
		}
	}
	zw.buf = nil
	_, err := zw.wr.Write(out)
	return err
}

type huff0Reader struct {
	rd     io.Reader
	toRead []byte
	done   bool
	err    error
}

func (zr *huff0Reader) Read(buf []byte) (int, error) {
	if !zr.done {
		zr.done = true
		input, err := ioutil.ReadAll(zr.rd)
		if err == nil {
			zr.toRead, err = decodeHuff0(input)
		}
		zr.err = err
	}
	if len(zr.toRead) > 0 {
		n := copy(buf, zr.toRead)
		zr.toRead = zr.toRead[n:]
		return n, nil
	}
	if zr.err != nil {
		return 0, zr.err
	}
	return 0, io.EOF
}

func (zr *huff0Reader) Close() error { return zr.err }

func decodeHuff0(input []byte) ([]byte, error) {
	var out bytes.Buffer
	for len(input) > 0 {
		mode := input[0]
		size, n := binary.Uvarint(input[1:])
		if n <= 0 || size > huff0BlockSize {
			return nil, errHuff0Corrupt
		}
		input = input[1+n:]

		switch mode {
		case huff0Raw:
			if uint64(len(input)) < size {
				return nil, errHuff0Corrupt
			}
			out.Write(input[:size])
			input = input[size:]
		case huff0RLE:
			if len(input) < 1 {
				return nil, errHuff0Corrupt
			}
			out.Write(bytes.Repeat(input[:1], int(size)))
			input = input[1:]
		case huff0Huff:
			clen, n := binary.Uvarint(input)
			if n <= 0 || uint64(len(input)-n) < clen {
				return nil, errHuff0Corrupt
			}
			blk := input[n : n+int(clen)]
			input = input[n+int(clen):]

			s, rem, err := huff0.ReadTable(blk, nil)
			if err != nil {
				return nil, err
			}
			s.MaxDecodedSize = int(size)
			raw, err := s.Decompress1X(rem)
			if err != nil {
				return nil, err
			}
			if uint64(len(raw)) != size {
				return nil, errHuff0Corrupt
			}
			out.Write(raw)
		default:
			return nil, errHuff0Corrupt
		}
	}
	return out.Bytes(), nil
}
