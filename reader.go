// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzhuff

import (
	"bufio"
	"io"
)

// Reader decompresses a single stream read from an underlying io.Reader.
//
// If the underlying reader implements io.ByteReader, then the Reader never
// reads past the end of the stream. Otherwise, it is wrapped in a
// bufio.Reader, which may read ahead.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd     countReader // Input source
	toRead []byte      // Uncompressed data ready to be emitted from Read
	done   bool        // Whether the stream has been decoded
	err    error       // Persistent error
}

func NewReader(r io.Reader) *Reader {
	zr := new(Reader)
	zr.Reset(r)
	return zr
}

func (zr *Reader) Read(buf []byte) (int, error) {
	for {
		if len(zr.toRead) > 0 {
			cnt := copy(buf, zr.toRead)
			zr.toRead = zr.toRead[cnt:]
			zr.OutputOffset += int64(cnt)
			return cnt, nil
		}
		if zr.err != nil {
			return 0, zr.err
		}
		if zr.done {
			zr.err = io.EOF
			continue
		}

		zr.toRead, zr.err = decodeStream(&zr.rd)
		zr.InputOffset = zr.rd.n
		zr.done = true
	}
}

func (zr *Reader) Close() error {
	if zr.err == io.EOF || zr.err == ErrClosed {
		zr.toRead = nil // Make sure future reads fail
		zr.err = ErrClosed
		return nil
	}
	return zr.err // Return the persistent error
}

func (zr *Reader) Reset(r io.Reader) error {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	*zr = Reader{rd: countReader{r: br}}
	return nil
}

// countReader counts the number of bytes consumed from r.
type countReader struct {
	r byteReader
	n int64
}

func (cr *countReader) Read(buf []byte) (int, error) {
	n, err := cr.r.Read(buf)
	cr.n += int64(n)
	return n, err
}

func (cr *countReader) ReadByte() (byte, error) {
	c, err := cr.r.ReadByte()
	if err == nil {
		cr.n++
	}
	return c, err
}
