// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dsnet/lzhuff/internal/errors"
	"github.com/dsnet/lzhuff/internal/testutil"
)

// mustTable builds the code table for the byte frequencies of s.
func mustTable(t *testing.T, s []byte) (*Tree, *Table) {
	c := CountBytes(s)
	tree := BuildTree(&c)
	tbl, err := tree.Table()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree, tbl
}

func TestTable(t *testing.T) {
	var vectors = []struct {
		input string
		tree  string
		codes map[byte]string
	}{{
		input: "",
		tree:  "{}",
		codes: map[byte]string{},
	}, {
		input: "zzzzz",
		tree:  "7a:5",
		codes: map[byte]string{'z': "0"},
	}, {
		input: "aabbbc",
		tree:  "{6 62:3 {3 63:1 61:2}}",
		codes: map[byte]string{'b': "0", 'c': "10", 'a': "11"},
	}, {
		// Equal frequencies are ordered by symbol value.
		input: "dcba",
		tree:  "{4 {2 61:1 62:1} {2 63:1 64:1}}",
		codes: map[byte]string{'a': "00", 'b': "01", 'c': "10", 'd': "11"},
	}, {
		// A leaf is taken before a merged node of the same frequency.
		input: "abcc",
		tree:  "{4 63:2 {2 61:1 62:1}}",
		codes: map[byte]string{'c': "0", 'a': "10", 'b': "11"},
	}}

	for i, v := range vectors {
		tree, tbl := mustTable(t, []byte(v.input))
		if got := tree.String(); got != v.tree {
			t.Errorf("test %d, tree mismatch: got %s, want %s", i, got, v.tree)
		}
		for sym, c := range tbl {
			want, ok := v.codes[byte(sym)]
			if got := c.String(); ok != (c.Len > 0) || got != want {
				t.Errorf("test %d, code mismatch for %q: got %q, want %q", i, sym, got, want)
			}
		}
	}
}

func TestCodeTooLong(t *testing.T) {
	// Fibonacci frequencies produce a maximally deep tree.
	var c Counts
	a, b := uint64(1), uint64(1)
	for i := 0; i < 80; i++ {
		c[i] = a
		a, b = b, a+b
	}
	if _, err := BuildTree(&c).Table(); err != ErrCodeTooLong {
		t.Errorf("error mismatch: got %v, want %v", err, ErrCodeTooLong)
	}
	if !errors.IsInternal(ErrCodeTooLong) {
		t.Errorf("ErrCodeTooLong is not an internal error")
	}
}

func TestPrefixFree(t *testing.T) {
	for _, name := range testutil.CorpusNames() {
		input := testutil.MustLoadFile(name, -1)
		c := CountBytes(input)
		tree, tbl := mustTable(t, input)

		if root := tree.Node(tree.Root()); root.Freq != c.Total() {
			t.Errorf("%s: root frequency mismatch: got %d, want %d", name, root.Freq, c.Total())
		}
		for i := 0; i < tree.Len(); i++ {
			n := tree.Node(i)
			if !n.IsLeaf() && n.Freq != tree.Node(n.Left).Freq+tree.Node(n.Right).Freq {
				t.Errorf("%s: node %d frequency is not the sum of its children", name, i)
			}
		}

		var codes []string
		for sym, code := range tbl {
			if (code.Len > 0) != (c[sym] > 0) {
				t.Errorf("%s: symbol %d presence mismatch", name, sym)
			}
			if code.Len > 0 {
				codes = append(codes, code.String())
			}
		}
		for i, ci := range codes {
			for j, cj := range codes {
				if i != j && strings.HasPrefix(cj, ci) {
					t.Errorf("%s: code %s is a prefix of %s", name, ci, cj)
				}
			}
		}
	}
}

func TestEncode(t *testing.T) {
	var vectors = []struct {
		table  string // Input used to build the table
		input  string
		output string // Expected bits in BitGen format
		err    error
	}{{
		table: "", input: "", output: "",
	}, {
		table: "zzzzz", input: "zzzzz", output: "0*5",
	}, {
		table: "aabbbc", input: "aabbbc", output: "11 11 0 0 0 10",
	}, {
		table: "aabbbc", input: "cab", output: "10 11 0",
	}, {
		table: "ab", input: "abc", err: ErrUnknownSymbol,
	}, {
		table: "", input: "a", err: ErrUnknownSymbol,
	}}

	for i, v := range vectors {
		_, tbl := mustTable(t, []byte(v.table))
		bits, err := Encode([]byte(v.input), tbl)
		if err != v.err {
			t.Errorf("test %d, error mismatch: got %v, want %v", i, err, v.err)
		}
		if v.err != nil {
			continue
		}
		data, n := testutil.MustDecodeBitGen(v.output)
		if !bytes.Equal(bits.Data, data) || bits.N != n {
			t.Errorf("test %d, output mismatch: got %v (%x), want %d bits (%x)", i, bits, bits.Data, n, data)
		}
	}
}

func TestDecode(t *testing.T) {
	var vectors = []struct {
		table  string // Input used to build the tree
		input  string // Input bits in BitGen format
		output string
		err    error
	}{{
		table: "", input: "", output: "",
	}, {
		table: "aabbbc", input: "", output: "",
	}, {
		table: "aabbbc", input: "11 11 0 0 0 10", output: "aabbbc",
	}, {
		table: "zzzzz", input: "0*5", output: "zzzzz",
	}, {
		table: "zzzzz", input: "0 0 1", err: ErrCorrupt,
	}, {
		table: "aabbbc", input: "11 11 1", err: ErrTruncated,
	}, {
		table: "", input: "0", err: ErrCorrupt,
	}}

	for i, v := range vectors {
		tree, _ := mustTable(t, []byte(v.table))
		data, n := testutil.MustDecodeBitGen(v.input)
		output, err := Decode(Bits{Data: data, N: n}, tree)
		if err != v.err {
			t.Errorf("test %d, error mismatch: got %v, want %v", i, err, v.err)
		}
		if string(output) != v.output {
			t.Errorf("test %d, output mismatch: got %q, want %q", i, output, v.output)
		}
	}

	// The bit count must not exceed the data.
	tree, _ := mustTable(t, []byte("aabbbc"))
	if _, err := Decode(Bits{Data: []byte{0x00}, N: 9}, tree); err != ErrCorrupt {
		t.Errorf("error mismatch: got %v, want %v", err, ErrCorrupt)
	}
	if !errors.IsCorrupted(ErrTruncated) || !errors.IsInvalid(ErrUnknownSymbol) {
		t.Errorf("unexpected error classification")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"ABABABABAB",
		"aaaaaaaaaa",
		"the quick brown fox the quick brown fox",
		"\x00\xff\x00\xff\x80",
	}
	for _, name := range testutil.CorpusNames() {
		inputs = append(inputs, string(testutil.MustLoadFile(name, -1)))
	}

	for i, input := range inputs {
		tree, tbl := mustTable(t, []byte(input))
		bits, err := Encode([]byte(input), tbl)
		if err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		if want := (bits.N + 7) / 8; int64(len(bits.Data)) != want {
			t.Errorf("test %d, data length mismatch: got %d, want %d", i, len(bits.Data), want)
		}
		output, err := Decode(bits, tree)
		if err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		if string(output) != input {
			t.Errorf("test %d, output mismatch", i)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	input := testutil.MustLoadFile("gen:text", -1)
	c := CountBytes(input)
	tbl, _ := BuildTree(&c).Table()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode(input, tbl)
	}
}

func BenchmarkDecode(b *testing.B) {
	input := testutil.MustLoadFile("gen:text", -1)
	c := CountBytes(input)
	tree := BuildTree(&c)
	tbl, _ := tree.Table()
	bits, _ := Encode(input, tbl)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decode(bits, tree)
	}
}
