// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/icza/bitio"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string into packed bytes and the
// exact number of bits written.
//
// The BitGen format allows bit-streams to be generated from a series of tokens
// describing bits in the resulting string. The format is designed for testing
// purposes by aiding a human in the manual scripting of a bit-stream from
// individual bit-strings. Bits are packed starting with the most-significant
// bit of each byte, which is the order used by the huffman package.
//
// The format consists of a series of tokens separated by white space of any
// kind. The '#' character is used for commenting. Thus, any bytes on a given
// line that appear after the '#' character is ignored.
//
// A token of the pattern "[01]{1,64}" forms a bit-string (e.g. 11010).
// The left-most bits of the bit-string are written first.
//
// A token of the form "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,16}"
// represents either a decimal value or a hexadecimal value, respectively.
// The first number indicates the bit-length of the bit-string and must be
// between 0 and 64 bits. The second number is converted to its unsigned binary
// representation and written with the most-significant bit first.
//
// A token of the pattern "X:[0-9a-fA-F]+" represents literal bytes in
// hexadecimal format. It may only be used when the bit-stream is byte-aligned.
//
// A token decorator of the pattern "[*][0-9]+" may trail any token. This is
// a quantifier decorator which indicates that the current token is to be
// repeated some number of times.
//
// If the total bit-stream does not end on a byte-aligned edge, then the stream
// is padded up to the nearest byte with 0 bits. The returned count excludes
// the padding.
//
// Example BitGen string:
//
//	0 10 11      # Codes for 'b', 'c', 'a'
//	0*5          # Five more 'b'
//	H8:7a        # Raw byte 'z' as an 8-bit value
func DecodeBitGen(str string) ([]byte, int64, error) {
	// Tokenize the input string by removing comments and superfluous spaces.
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}

	var bb bytes.Buffer
	bw := bitio.NewWriter(&bb)
	var nbits int64
	for _, t := range toks {
		// Check for quantifier decorators.
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, 0, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		var v uint64
		var n int
		switch {
		case reBin.MatchString(t):
			// Handle binary tokens.
			for _, b := range t {
				v <<= 1
				v |= uint64(b - '0')
			}
			n = len(t)
		case reDec.MatchString(t) || reHex.MatchString(t):
			// Handle decimal and hexadecimal tokens.
			i := strings.IndexByte(t, ':')
			tb, tn, tv := t[0], t[1:i], t[i+1:]

			base := 10
			if tb == 'H' {
				base = 16
			}

			var err1, err2 error
			n, err1 = strconv.Atoi(tn)
			v, err2 = strconv.ParseUint(tv, base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, 0, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v&((1<<uint(n))-1) != v {
				return nil, 0, errors.New("testutil: integer overflow on token: " + t)
			}
		case reRaw.MatchString(t):
			// Handle hexadecimal tokens.
			b, err := hex.DecodeString(t[2:])
			if err != nil {
				return nil, 0, errors.New("testutil: invalid raw bytes token: " + t)
			}
			if nbits%8 != 0 {
				return nil, 0, errors.New("testutil: unaligned raw bytes token: " + t)
			}
			for i := 0; i < rep; i++ {
				if _, err := bw.Write(b); err != nil {
					return nil, 0, err
				}
				nbits += 8 * int64(len(b))
			}
			continue
		default:
			// Handle invalid tokens.
			return nil, 0, errors.New("testutil: invalid token: " + t)
		}

		for i := 0; i < rep; i++ {
			if n > 0 {
				if err := bw.WriteBits(v, uint8(n)); err != nil {
					return nil, 0, err
				}
			}
			nbits += int64(n)
		}
	}
	if err := bw.Close(); err != nil {
		return nil, 0, err
	}
	return bb.Bytes(), nbits, nil
}
