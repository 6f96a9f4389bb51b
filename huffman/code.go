// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"

	"github.com/dsnet/lzhuff/internal/errors"
)

// Code is the prefix code of a symbol. The code consists of the lowest Len
// bits of Val, where the most-significant of those bits is written first.
// A zero Len indicates that the symbol has no code.
type Code struct {
	Val uint64
	Len uint
}

// String renders c as a string of 0 and 1 characters.
func (c Code) String() string {
	b := make([]byte, c.Len)
	for i := range b {
		b[i] = '0' + byte(c.Val>>(c.Len-1-uint(i))&1)
	}
	return string(b)
}

// Table maps every byte value to its code.
type Table [256]Code

// String lists the code of every present symbol in ascending symbol order,
// one per line.
func (t *Table) String() string {
	var sb strings.Builder
	for sym, c := range t {
		if c.Len > 0 {
			fmt.Fprintf(&sb, "%02x %2d %v\n", sym, c.Len, c)
		}
	}
	return sb.String()
}

// Bits is a packed sequence of bits. The first bit is stored in the
// most-significant bit of Data[0] and unused trailing bits are zero.
type Bits struct {
	Data []byte
	N    int64 // Number of valid bits in Data
}

// String renders the first N bits of b as 0 and 1 characters.
func (b Bits) String() string {
	var sb strings.Builder
	for i := int64(0); i < b.N && i/8 < int64(len(b.Data)); i++ {
		sb.WriteByte('0' + b.Data[i/8]>>(7-uint(i%8))&1)
	}
	return sb.String()
}

// Encode concatenates the code of every byte of src.
// It reports ErrUnknownSymbol if a byte has no code in t.
func Encode(src []byte, t *Table) (Bits, error) {
	var bb bytes.Buffer
	bw := bitio.NewWriter(&bb)
	var n int64
	for _, c := range src {
		code := t[c]
		if code.Len == 0 {
			return Bits{}, ErrUnknownSymbol
		}
		bw.TryWriteBits(code.Val, uint8(code.Len))
		n += int64(code.Len)
	}
	if bw.TryError != nil {
		return Bits{}, bw.TryError
	}
	if err := bw.Close(); err != nil {
		return Bits{}, err
	}
	return Bits{Data: bb.Bytes(), N: n}, nil
}

// Decode walks t from the root for every bit of b and emits the symbol of
// each leaf reached. It reports ErrTruncated if the bits end in the middle of
// a code and ErrCorrupt if the bits cannot have been produced from t.
func Decode(b Bits, t *Tree) (out []byte, err error) {
	defer errors.Recover(&err)
	if b.N < 0 || b.N > 8*int64(len(b.Data)) {
		return nil, ErrCorrupt
	}
	if b.N == 0 {
		return nil, nil
	}
	if t.root < 0 {
		return nil, ErrCorrupt
	}

	br := bitio.NewReader(bytes.NewReader(b.Data))
	readBit := func() bool {
		v := br.TryReadBool()
		if br.TryError != nil {
			errors.Panic(ErrTruncated)
		}
		return v
	}

	// A lone leaf has the code "0" and consumes one bit per symbol.
	if root := t.nodes[t.root]; root.IsLeaf() {
		for i := int64(0); i < b.N; i++ {
			if readBit() {
				return nil, ErrCorrupt
			}
			out = append(out, root.Sym)
		}
		return out, nil
	}

	n := t.root
	for i := int64(0); i < b.N; i++ {
		if readBit() {
			n = t.nodes[n].Right
		} else {
			n = t.nodes[n].Left
		}
		if nd := t.nodes[n]; nd.IsLeaf() {
			out = append(out, nd.Sym)
			n = t.root
		}
	}
	if n != t.root {
		return nil, ErrTruncated
	}
	return out, nil
}
