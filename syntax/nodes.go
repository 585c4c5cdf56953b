// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"math"
	"strconv"
	"strings"
)

// Node represents a syntax tree node.
type Node interface {
	// Pos returns the first character of the node
	Pos() Pos
	// End returns the character immediately after the node
	End() Pos
}

// Pos is a position within a pattern. It holds a byte offset plus one, so
// that the zero value can stand for an invalid position, such as the
// position of an empty word.
type Pos uint32

// NewPos returns the position for the given byte offset.
func NewPos(offset int) Pos { return Pos(offset + 1) }

// Offset returns the byte offset of the position, or zero if it is invalid.
func (p Pos) Offset() int {
	if p == 0 {
		return 0
	}
	return int(p) - 1
}

// IsValid reports whether the position is valid. All positions in nodes
// returned by Parse are valid, except for those of empty words.
func (p Pos) IsValid() bool { return p > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "?"
	}
	return strconv.Itoa(p.Offset())
}

// Word represents a pattern: a sequence of literals and brace expansions.
type Word struct {
	Parts []WordPart
}

func (w *Word) Pos() Pos {
	if len(w.Parts) == 0 {
		return 0
	}
	return w.Parts[0].Pos()
}

func (w *Word) End() Pos {
	if len(w.Parts) == 0 {
		return 0
	}
	return w.Parts[len(w.Parts)-1].End()
}

// Lit returns the word as a literal value, if the word consists of Lit nodes
// only. An empty string is returned otherwise. Words with multiple literals,
// which can appear in some edge cases, are handled properly.
//
// For example, the word "foo" will return "foo", but the word "foo{bar,baz}"
// will return "".
func (w *Word) Lit() string {
	// In the usual case, we'll have either a single part that's a literal,
	// or one of the parts being a non-literal. Using strings.Join instead
	// of a strings.Builder avoids extra work in these cases, since a single
	// part is a shortcut, and many parts don't incur string copies.
	lits := make([]string, 0, 1)
	for _, part := range w.Parts {
		lit, ok := part.(*Lit)
		if !ok {
			return ""
		}
		lits = append(lits, lit.Value)
	}
	return strings.Join(lits, "")
}

// WordPart represents all nodes that can form a word.
type WordPart interface {
	Node
	wordPartNode()
}

func (*Lit) wordPartNode()      {}
func (*BraceExp) wordPartNode() {}

// Lit represents a string literal.
//
// Note that a Lit may contain "}" and "," characters, as those are only
// special within the brace expansion that encloses them. An unmatched "{" is
// also kept as part of a Lit, along with the rest of the pattern after it.
type Lit struct {
	ValuePos Pos
	Value    string
}

func (l *Lit) Pos() Pos { return l.ValuePos }
func (l *Lit) End() Pos {
	if !l.ValuePos.IsValid() {
		return 0
	}
	return l.ValuePos + Pos(len(l.Value))
}

// BraceExp represents a brace expansion, such as "{a,b}" or "{a,{b,c}d}".
//
// Each element is an option; elements may be empty words, as in "{a,,b}".
// A brace expansion without commas, such as "{a}", has a single element.
type BraceExp struct {
	Lbrace, Rbrace Pos
	Elems          []*Word
}

func (b *BraceExp) Pos() Pos { return b.Lbrace }
func (b *BraceExp) End() Pos {
	if !b.Rbrace.IsValid() {
		return 0
	}
	return b.Rbrace + 1
}

// Count returns the number of fields that the word expands to. The count
// saturates at math.MaxInt instead of overflowing.
//
// Sibling brace expansions multiply, while the elements within a brace
// expansion add up. For example, "{a,b}{c,d{e,f}}" expands to six fields.
func Count(word *Word) int {
	if word == nil {
		return 1
	}
	n := 1
	for _, part := range word.Parts {
		br, ok := part.(*BraceExp)
		if !ok {
			continue
		}
		sum := 0
		for _, elem := range br.Elems {
			sum = satAdd(sum, Count(elem))
		}
		n = satMul(n, sum)
	}
	return n
}

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func satMul(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}
