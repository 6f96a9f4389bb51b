// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lz77

import (
	"bytes"
	"testing"

	"github.com/dsnet/lzhuff/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestTokens(t *testing.T) {
	var vectors = []struct {
		toks  []Token
		input []byte // Binary encoding of toks
		err   error
	}{{
		toks:  nil,
		input: nil,
	}, {
		toks:  []Token{{0, 0, 'a'}, {1, 3, 'a'}},
		input: []byte{0x00, 0x00, 'a', 0x01, 0x03, 'a'},
	}, {
		toks:  []Token{{0, 0, 'z'}, {1, 2998, 'z'}},
		input: []byte{0x00, 0x00, 'z', 0x01, 0xb6, 0x17, 'z'},
	}, {
		toks:  []Token{{1024, 300, 0xff}},
		input: testutil.MustDecodeHex("8008ac02ff"),
	}, {
		input: []byte{0x00},
		err:   ErrTruncated,
	}, {
		input: []byte{0x00, 0x00},
		err:   ErrTruncated,
	}, {
		input: []byte{0x01, 0x80},
		err:   ErrTruncated,
	}, {
		input: testutil.MustDecodeHex("ffffffffffffffffffff0100"),
		err:   ErrInvalidToken,
	}}

	for i, v := range vectors {
		toks, err := ParseTokens(v.input)
		if err != v.err {
			t.Errorf("test %d, error mismatch: got %v, want %v", i, err, v.err)
		}
		if v.err != nil {
			continue
		}
		if diff := cmp.Diff(v.toks, toks); diff != "" {
			t.Errorf("test %d, tokens mismatch (-want +got):\n%s", i, diff)
		}
		if output := AppendTokens(nil, v.toks); !bytes.Equal(output, v.input) {
			t.Errorf("test %d, output mismatch: got %x, want %x", i, output, v.input)
		}
	}
}

func TestTokensCorpora(t *testing.T) {
	for _, name := range testutil.CorpusNames() {
		input := testutil.MustLoadFile(name, 4096)
		toks := Compress(input)
		got, err := ParseTokens(AppendTokens(nil, toks))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if diff := cmp.Diff(toks, got); diff != "" {
			t.Errorf("%s: tokens mismatch (-want +got):\n%s", name, diff)
		}
	}
}
