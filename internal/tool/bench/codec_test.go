// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"testing"

	"github.com/dsnet/lzhuff/internal/testutil"
)

// TestCodecs tests that every registered codec round-trips each of the
// synthetic corpora.
func TestCodecs(t *testing.T) {
	for _, name := range testutil.CorpusNames() {
		input := testutil.MustLoadFile(name, 1<<15)
		t.Run(fmt.Sprintf("File:%v", name), func(t *testing.T) {
			t.Parallel()
			for _, codec := range CodecNames() {
				codec := codec
				t.Run(fmt.Sprintf("Codec:%v", codec), func(t *testing.T) {
					testRoundTrip(t, Encoders[codec], Decoders[codec], input)
				})
			}
		})
	}
}

func testRoundTrip(t *testing.T, enc Encoder, dec Decoder, input []byte) {
	const level = 6 // Default compression on all encoders
	buf := new(bytes.Buffer)
	wr := enc(buf, level)
	_, cpErr := io.Copy(wr, bytes.NewReader(input))
	if err := wr.Close(); err != nil {
		t.Fatalf("unexpected Close error: %v", err)
	}
	if cpErr != nil {
		t.Fatalf("unexpected Write error: %v", cpErr)
	}

	hash := crc32.NewIEEE()
	rd := dec(buf)
	cnt, cpErr := io.Copy(hash, rd)
	if err := rd.Close(); err != nil {
		t.Fatalf("unexpected Close error: %v", err)
	}
	if cpErr != nil {
		t.Fatalf("unexpected Read error: %v", cpErr)
	}

	sum := crc32.ChecksumIEEE(input)
	if int(cnt) != len(input) {
		t.Errorf("mismatching count: got %d, want %d", cnt, len(input))
	}
	if hash.Sum32() != sum {
		t.Errorf("mismatching checksum: got 0x%08x, want 0x%08x", hash.Sum32(), sum)
	}
}

func TestHuff0Corrupt(t *testing.T) {
	var vectors = [][]byte{
		{huff0Raw},
		{huff0Raw, 0x04, 'a'},
		{huff0RLE, 0x04},
		{huff0Huff, 0x04, 0x10},
		{0x7f, 0x01, 'a'},
	}
	for i, v := range vectors {
		if _, err := decodeHuff0(v); err == nil {
			t.Errorf("test %d, unexpected success", i)
		}
	}
}
