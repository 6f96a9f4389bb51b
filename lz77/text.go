// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lz77

import (
	"strconv"
	"strings"
)

// The text format is a human readable view of a token stream, meant for
// inspection only. Every token is rendered as:
//
//	(distance,length,literal)
//
// The literal is written as is if it is a printable ASCII character other than
// one of the delimiters '(', ')', ',' or the escape character '\'. All other
// bytes are written as a hexadecimal escape of the form \xHH.
//
// For example, the input "aaaaa\n" is rendered as:
//
//	(0,0,a)(1,4,\x0a)

const hexDigits = "0123456789abcdef"

// AppendText appends the text rendering of toks to dst.
func AppendText(dst []byte, toks []Token) []byte {
	for _, t := range toks {
		dst = append(dst, '(')
		dst = strconv.AppendInt(dst, int64(t.Distance), 10)
		dst = append(dst, ',')
		dst = strconv.AppendInt(dst, int64(t.Length), 10)
		dst = append(dst, ',')
		dst = appendLiteral(dst, t.Literal)
		dst = append(dst, ')')
	}
	return dst
}

func appendLiteral(dst []byte, c byte) []byte {
	if !isPlain(c) {
		return append(dst, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
	}
	return append(dst, c)
}

// isPlain reports whether c is written as is rather than escaped.
func isPlain(c byte) bool {
	return c >= 0x20 && c <= 0x7e && strings.IndexByte("(),\\", c) < 0
}

// ParseText parses the output of AppendText.
// White space between tokens is ignored.
func ParseText(s string) ([]Token, error) {
	var toks []Token
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		if len(s) == 0 {
			return toks, nil
		}
		if s[0] != '(' {
			return nil, ErrSyntax
		}
		s = s[1:]

		var t Token
		var ok bool
		if t.Distance, s, ok = parseField(s); !ok {
			return nil, ErrSyntax
		}
		if t.Length, s, ok = parseField(s); !ok {
			return nil, ErrSyntax
		}
		switch {
		case strings.HasPrefix(s, `\x`) && len(s) >= 4:
			v, err := strconv.ParseUint(s[2:4], 16, 8)
			if err != nil {
				return nil, ErrSyntax
			}
			t.Literal, s = byte(v), s[4:]
		case len(s) > 0 && isPlain(s[0]):
			t.Literal, s = s[0], s[1:]
		default:
			return nil, ErrSyntax
		}
		if len(s) == 0 || s[0] != ')' {
			return nil, ErrSyntax
		}
		s = s[1:]
		toks = append(toks, t)
	}
}

// parseField parses a decimal integer terminated by a comma.
func parseField(s string) (int, string, bool) {
	i := strings.IndexByte(s, ',')
	if i <= 0 {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || n < 0 || s[0] == '+' {
		return 0, s, false
	}
	return n, s[i+1:], true
}
