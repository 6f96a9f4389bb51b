// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzhuff

import "io"

// Writer compresses all data written to it into a single stream.
// Since the frequency table depends on the whole input, the data is buffered
// and only compressed and written out upon Close.
type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr  io.Writer
	buf []byte // Uncompressed data buffered until Close
	err error  // Persistent error
}

func NewWriter(w io.Writer) *Writer {
	zw := new(Writer)
	zw.Reset(w)
	return zw
}

func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	zw.buf = append(zw.buf, buf...)
	zw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close compresses the buffered data and writes the stream out.
// It does not close the underlying io.Writer.
func (zw *Writer) Close() error {
	if zw.err == ErrClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	out, err := appendStream(nil, zw.buf)
	if err != nil {
		zw.err = err
		return err
	}
	n, err := zw.wr.Write(out)
	zw.OutputOffset += int64(n)
	if err == nil && n < len(out) {
		err = io.ErrShortWrite
	}
	if err != nil {
		zw.err = err
		return err
	}
	zw.buf = zw.buf[:0]
	zw.err = ErrClosed
	return nil
}

// Reset discards the Writer's state and makes it equivalent to the result of
// NewWriter, but writing to w instead.
func (zw *Writer) Reset(w io.Writer) error {
	*zw = Writer{wr: w, buf: zw.buf[:0]}
	return nil
}
