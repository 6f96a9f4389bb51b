// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"fmt"
	"sort"
	"strings"
)

// Node is a single node of a Tree. Children are referenced by their index in
// the tree. A node is a leaf if and only if Left is negative, in which case
// Sym is the symbol it stands for.
type Node struct {
	Freq        uint64
	Sym         byte
	Left, Right int
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool { return n.Left < 0 }

// Tree is a prefix tree with all of its nodes stored in a single slice.
// The leaves occupy the lowest indexes, ordered by frequency and then by
// symbol, followed by the internal nodes in the order they were created.
type Tree struct {
	nodes []Node
	root  int
}

// BuildTree constructs the prefix tree for the given frequencies.
// Symbols with a zero frequency are not part of the tree.
// If no symbol is present, then the tree is empty.
func BuildTree(c *Counts) *Tree {
	t := &Tree{root: -1}
	for sym, v := range c {
		if v > 0 {
			t.nodes = append(t.nodes, Node{Freq: v, Sym: byte(sym), Left: -1, Right: -1})
		}
	}
	sort.SliceStable(t.nodes, func(i, j int) bool {
		return t.nodes[i].Freq < t.nodes[j].Freq
	})

	// The leaves form the first queue and the merged nodes the second.
	// Both queues are ordered by frequency, so only the heads are compared.
	nl := len(t.nodes)
	li, mi := 0, nl
	pop := func() int {
		if li < nl && (mi == len(t.nodes) || t.nodes[li].Freq <= t.nodes[mi].Freq) {
			li++
			return li - 1
		}
		mi++
		return mi - 1
	}
	for (nl - li + len(t.nodes) - mi) > 1 {
		l := pop()
		r := pop()
		t.nodes = append(t.nodes, Node{
			Freq:  t.nodes[l].Freq + t.nodes[r].Freq,
			Left:  l,
			Right: r,
		})
	}
	if len(t.nodes) > 0 {
		t.root = len(t.nodes) - 1
	}
	return t
}

// Root returns the index of the root node, or -1 if the tree is empty.
func (t *Tree) Root() int { return t.root }

// Len reports the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node at index i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Table derives the code of every leaf by walking down from the root,
// appending a 0 bit for each left branch and a 1 bit for each right branch.
// A tree with a single leaf assigns it the one bit code "0".
func (t *Tree) Table() (*Table, error) {
	tbl := new(Table)
	if t.root < 0 {
		return tbl, nil
	}
	if n := t.nodes[t.root]; n.IsLeaf() {
		tbl[n.Sym] = Code{Val: 0, Len: 1}
		return tbl, nil
	}

	type item struct {
		idx  int
		code Code
	}
	stack := []item{{idx: t.root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[it.idx]
		if n.IsLeaf() {
			tbl[n.Sym] = it.code
			continue
		}
		if it.code.Len == MaxCodeLen {
			return nil, ErrCodeTooLong
		}
		l, r := it.code.Val<<1, it.code.Val<<1|1
		stack = append(stack,
			item{idx: n.Right, code: Code{Val: r, Len: it.code.Len + 1}},
			item{idx: n.Left, code: Code{Val: l, Len: it.code.Len + 1}},
		)
	}
	return tbl, nil
}

// String renders the tree as nested braces, where each internal node is shown
// as "{freq left right}" and each leaf as "sym:freq" with sym in hexadecimal.
func (t *Tree) String() string {
	if t.root < 0 {
		return "{}"
	}
	var sb strings.Builder
	var walk func(int)
	walk = func(i int) {
		n := t.nodes[i]
		if n.IsLeaf() {
			fmt.Fprintf(&sb, "%02x:%d", n.Sym, n.Freq)
			return
		}
		fmt.Fprintf(&sb, "{%d ", n.Freq)
		walk(n.Left)
		sb.WriteByte(' ')
		walk(n.Right)
		sb.WriteByte('}')
	}
	walk(t.root)
	return sb.String()
}
