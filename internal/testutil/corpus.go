// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"sort"
)

// GenPrefix marks a name passed to LoadFile as a synthetic corpus.
const GenPrefix = "gen:"

// corpusSize is the size of each generated corpus before resizing.
const corpusSize = 1 << 16

// Corpora is the set of synthetic inputs available to tests and benchmarks.
// Each generator is deterministic.
var Corpora = map[string]func() []byte{
	"digits":  Digits,
	"random":  Random,
	"repeats": Repeats,
	"skewed":  Skewed,
	"text":    Text,
	"zeros":   Zeros,
}

// CorpusNames returns the sorted names of all synthetic corpora,
// each prefixed with GenPrefix.
func CorpusNames() []string {
	var ss []string
	for s := range Corpora {
		ss = append(ss, GenPrefix+s)
	}
	sort.Strings(ss)
	return ss
}

// Zeros returns a block of zero bytes. It is the degenerate input for both the
// matcher (a single run) and the entropy coder (a single symbol).
func Zeros() []byte { return make([]byte, corpusSize) }

// Random returns incompressible data.
func Random() []byte { return NewRand(0).Bytes(corpusSize) }

// Digits returns random decimal digits. Prefix encoding benefits from the
// small alphabet, while LZ77 matching does not.
func Digits() []byte { return NewRand(1).Alphabet(corpusSize, "0123456789") }

// Skewed returns bytes whose frequencies roughly follow a geometric
// distribution, which yields a deep and unbalanced prefix tree.
func Skewed() []byte {
	r := NewRand(2)
	b := make([]byte, corpusSize)
	for i := range b {
		var c byte
		for c < 0xff && r.Intn(2) == 0 {
			c++
		}
		b[i] = 'a' + c%26
	}
	return b
}

// Text returns pseudo-English prose built from a small vocabulary.
func Text() []byte {
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"river", "boat", "steam", "pilot", "town", "mississippi", "and",
		"of", "a", "to", "in", "was", "he", "it", "that", "with", "for",
	}
	r := NewRand(3)
	var bb bytes.Buffer
	for bb.Len() < corpusSize {
		bb.WriteString(words[r.Intn(len(words))])
		switch p := r.Float32(); {
		case p < 0.05:
			bb.WriteString(".\n")
		case p < 0.15:
			bb.WriteString(", ")
		default:
			bb.WriteByte(' ')
		}
	}
	return bb.Bytes()[:corpusSize]
}

// Repeats returns data that heavily favors LZ77 based compression since a
// large bulk of it is a copy from some distance ago. Also, since the source
// data is mostly random, prefix encoding does not benefit as much.
func Repeats() []byte {
	var b []byte
	var r = NewRand(0)

	randLen := func() (l int) {
		p := r.Float32()
		switch {
		case p <= 0.15: // 4..8
			l = 4 + r.Int()%4
		case p <= 0.30: // 8..16
			l = 8 + r.Int()%8
		case p <= 0.45: // 16..32
			l = 16 + r.Int()%16
		case p <= 0.60: // 32..64
			l = 32 + r.Int()%32
		case p <= 0.75: // 64..128
			l = 64 + r.Int()%64
		case p <= 0.90: // 128..256
			l = 128 + r.Int()%128
		default: // 256..512
			l = 256 + r.Int()%256
		}
		return l
	}

	// Distances are kept mostly within the matcher's window.
	randDist := func() (d int) {
		for d == 0 || d > len(b) {
			p := r.Float32()
			switch {
			case p <= 0.1: // 1..2
				d = 1 + r.Int()%1
			case p <= 0.2: // 2..4
				d = 2 + r.Int()%2
			case p <= 0.3: // 4..8
				d = 4 + r.Int()%4
			case p <= 0.4: // 8..16
				d = 8 + r.Int()%8
			case p <= 0.5: // 16..32
				d = 16 + r.Int()%16
			case p <= 0.6: // 32..64
				d = 32 + r.Int()%32
			case p <= 0.7: // 64..128
				d = 64 + r.Int()%64
			case p <= 0.8: // 128..256
				d = 128 + r.Int()%128
			case p <= 0.9: // 256..512
				d = 256 + r.Int()%256
			case p <= 0.95: // 512..1024
				d = 512 + r.Int()%512
			default: // 1024..4096
				d = 1024 + r.Int()%3072
			}
		}
		return d
	}

	writeRand := func(l int) {
		for i := 0; i < l; i++ {
			b = append(b, byte(r.Int()))
		}
	}

	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(1024) // Seed enough history for any copy length
	for len(b) < corpusSize {
		p := r.Float32()
		switch {
		case p <= 0.1:
			// Generate random new data.
			writeRand(randLen())
		case p <= 0.9:
			// Write a long distance copy.
			d, l := randDist(), randLen()
			for d <= l {
				d, l = randDist(), randLen()
			}
			writeCopy(d, l)
		default:
			// Write a possibly short distance copy.
			writeCopy(randDist(), randLen())
		}
	}
	return b[:corpusSize]
}
