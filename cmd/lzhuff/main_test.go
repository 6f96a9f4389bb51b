// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"hash/crc32"
	"io/ioutil"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/dsnet/lzhuff"
	"github.com/dsnet/lzhuff/internal/testutil"
)

func TestOutputPath(t *testing.T) {
	var vectors = []struct {
		name     string
		dir      string
		compress bool
		output   string
		ok       bool
	}{
		{"a.txt", "", true, "a.txt.lzh", true},
		{"x/a.txt", "out", true, "out/a.txt.lzh", true},
		{"a.txt.lzh", "", false, "a.txt", true},
		{"x/a.txt.lzh", "out", false, "out/a.txt", true},
		{"a.txt", "", false, "", false},
		{".lzh", "", false, "", false},
	}

	for i, v := range vectors {
		output, err := outputPath(v.name, v.dir, v.compress)
		if got, want := output, filepath.FromSlash(v.output); got != want {
			t.Errorf("test %d, output mismatch: got %q, want %q", i, got, want)
		}
		if got, want := err == nil, v.ok; got != want {
			t.Errorf("test %d, error mismatch: got %v, want ok=%v", i, err, want)
		}
	}
}

func TestForEachFile(t *testing.T) {
	names := []string{"a", "b", "bad1", "c", "bad2", "d"}
	for _, n := range []int{0, 1, 3, 10} {
		var calls int32
		err := forEachFile(names, n, func(name string) error {
			atomic.AddInt32(&calls, 1)
			if strings.HasPrefix(name, "bad") {
				return errors.Errorf("%s: failed", name)
			}
			return nil
		})
		assert.Equal(t, int32(len(names)), calls, "jobs=%d", n)
		if assert.Error(t, err, "jobs=%d", n) {
			assert.Equal(t, "2 of 6 files failed", err.Error())
		}
	}

	err := forEachFile(names, 2, func(string) error { return nil })
	assert.NoError(t, err)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	input := testutil.MustLoadFile("gen:text", 1<<14)
	src := filepath.Join(dir, "text")
	assert.NoError(t, ioutil.WriteFile(src, input, 0664))

	comp, err := outputPath(src, "", true)
	assert.NoError(t, err)
	assert.NoError(t, convertFile(src, comp, lzhuff.Encode))
	assert.Error(t, convertFile(src, comp, lzhuff.Encode), "existing output must not be replaced")

	out := filepath.Join(dir, "out")
	assert.NoError(t, ioutil.WriteFile(out, nil, 0664))
	overwrite = true
	defer func() { overwrite = false }()
	assert.NoError(t, convertFile(comp, out, lzhuff.Decode))

	output, err := ioutil.ReadFile(out)
	assert.NoError(t, err)
	assert.True(t, bytes.Equal(output, input), "round-trip mismatch")

	// Decoding something that is not a stream fails.
	assert.Error(t, convertFile(src, out, lzhuff.Decode))
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	var names []string
	var all []byte
	for _, s := range []string{"gen:text", "gen:repeats", "gen:random"} {
		input := testutil.MustLoadFile(s, 1<<13)
		name := filepath.Join(dir, strings.TrimPrefix(s, testutil.GenPrefix))
		assert.NoError(t, ioutil.WriteFile(name, input, 0664))
		names = append(names, name)
		all = append(all, input...)
	}
	empty := filepath.Join(dir, "empty")
	assert.NoError(t, ioutil.WriteFile(empty, nil, 0664))
	names = append(names, empty)

	var buf bytes.Buffer
	assert.NoError(t, runVerify(&buf, names, 2))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if assert.Len(t, lines, len(names)+1) {
		for i, name := range names {
			assert.True(t, strings.HasPrefix(lines[i], name+": ok  "), "line %d: %q", i, lines[i])
		}
		assert.Contains(t, lines[len(names)], "crc32:"+crc32Hex(crc32.ChecksumIEEE(all)))
		assert.True(t, strings.HasPrefix(lines[len(names)], "total: 24576 -> "), lines[len(names)])
	}

	buf.Reset()
	missing := filepath.Join(dir, "missing")
	err := runVerify(&buf, []string{names[0], missing, names[0]}, 2)
	assert.Error(t, err)
	lines = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if assert.Len(t, lines, 4) {
		assert.Equal(t, missing+": FAIL", lines[1])
		assert.Equal(t, lines[0], lines[2])
		assert.True(t, strings.HasPrefix(lines[3], "total: 16384 -> "), lines[3])
		assert.True(t, strings.HasSuffix(lines[3], "  1 failed"), lines[3])
		assert.NotContains(t, lines[3], "crc32:")
	}
}

func crc32Hex(crc uint32) string {
	const hex = "0123456789abcdef"
	var b [8]byte
	for i := range b {
		b[7-i] = hex[crc>>(4*uint(i))&0xf]
	}
	return string(b[:])
}

func TestWriteTokens(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, writeTokens(&buf, []byte("aaaaa\n")))
	assert.Equal(t, "(0,0,a)\n(1,4,\\x0a)\n", buf.String())

	buf.Reset()
	assert.NoError(t, writeTokens(&buf, nil))
	assert.Equal(t, "", buf.String())
}

func TestWriteCodes(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, writeCodes(&buf, []byte("aaaaa")))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if assert.Len(t, lines, 5) {
		fields := func(s string) string { return strings.Join(strings.Fields(s), " ") }
		assert.Equal(t, "sym count len code", fields(lines[0]))
		assert.Equal(t, "00 2 2 10", fields(lines[1]))
		assert.Equal(t, "01 1 2 00", fields(lines[2]))
		assert.Equal(t, "03 1 2 01", fields(lines[3]))
		assert.Equal(t, "61 2 2 11", fields(lines[4]))
	}

	buf.Reset()
	assert.NoError(t, writeCodes(&buf, nil))
	assert.Equal(t, "sym count len code", strings.Join(strings.Fields(buf.String()), " "))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"gen:text", "twain.txt", "gen:repeats"}, splitList("gen:text,twain.txt:gen:repeats"))
	assert.Equal(t, []string{"1", "6", "9"}, splitList("1,6:9,"))
	assert.Nil(t, splitList(""))

	ns, err := parsePrefixes("1e4,6")
	assert.NoError(t, err)
	assert.Equal(t, []int{10000, 6}, ns)
	_, err = parsePrefixes("1e4,bogus")
	assert.Error(t, err)
}
