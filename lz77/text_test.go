// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lz77

import (
	"testing"

	"github.com/dsnet/lzhuff/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestText(t *testing.T) {
	var vectors = []struct {
		toks   []Token
		output string
	}{{
		toks:   nil,
		output: "",
	}, {
		toks:   Compress([]byte("aaaaa\n")),
		output: `(0,0,a)(1,4,\x0a)`,
	}, {
		toks:   Compress([]byte("ABABABABAB")),
		output: "(0,0,A)(0,0,B)(2,7,B)",
	}, {
		toks:   []Token{{0, 0, '('}, {0, 0, ')'}, {0, 0, ','}, {0, 0, '\\'}, {0, 0, ' '}, {0, 0, 0xff}},
		output: `(0,0,\x28)(0,0,\x29)(0,0,\x2c)(0,0,\x5c)(0,0, )(0,0,\xff)`,
	}}

	for i, v := range vectors {
		output := string(AppendText(nil, v.toks))
		if output != v.output {
			t.Errorf("test %d, output mismatch:\ngot  %s\nwant %s", i, output, v.output)
		}
		toks, err := ParseText(output)
		if err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		if diff := cmp.Diff(v.toks, toks); diff != "" {
			t.Errorf("test %d, tokens mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestParseText(t *testing.T) {
	var vectors = []struct {
		input string
		toks  []Token
		err   error
	}{{
		input: " (0,0,a)\n\t(1,3,a) ",
		toks:  []Token{{0, 0, 'a'}, {1, 3, 'a'}},
	}, {
		input: `(0,0,\x41)`,
		toks:  []Token{{0, 0, 'A'}},
	}, {
		input: "(0,0,a",
		err:   ErrSyntax,
	}, {
		input: "(0,0,)",
		err:   ErrSyntax,
	}, {
		input: "(0,0,ab)",
		err:   ErrSyntax,
	}, {
		input: "(-1,0,a)",
		err:   ErrSyntax,
	}, {
		input: "(+1,0,a)",
		err:   ErrSyntax,
	}, {
		input: "(0,,a)",
		err:   ErrSyntax,
	}, {
		input: `(0,0,\xg0)`,
		err:   ErrSyntax,
	}, {
		input: `(0,0,\x4)`,
		err:   ErrSyntax,
	}, {
		input: "0,0,a)",
		err:   ErrSyntax,
	}, {
		input: "(0,0, )",
		toks:  []Token{{0, 0, ' '}},
	}, {
		input: "(0,0,\n)",
		err:   ErrSyntax,
	}, {
		input: "(0,0,\x00)",
		err:   ErrSyntax,
	}, {
		input: "(0,0,\x7f)",
		err:   ErrSyntax,
	}, {
		input: "(0,0,\xff)",
		err:   ErrSyntax,
	}, {
		input: "(0,0,~)",
		toks:  []Token{{0, 0, '~'}},
	}}

	for i, v := range vectors {
		toks, err := ParseText(v.input)
		if err != v.err {
			t.Errorf("test %d, error mismatch: got %v, want %v", i, err, v.err)
		}
		if diff := cmp.Diff(v.toks, toks); diff != "" {
			t.Errorf("test %d, tokens mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestTextCorpora(t *testing.T) {
	for _, name := range testutil.CorpusNames() {
		toks := Compress(testutil.MustLoadFile(name, 2048))
		got, err := ParseText(string(AppendText(nil, toks)))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if diff := cmp.Diff(toks, got); diff != "" {
			t.Errorf("%s: tokens mismatch (-want +got):\n%s", name, diff)
		}
	}
}
