// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"bufio"
	"io"
	"strings"
)

// Print writes the given node back as pattern text. Print(w, Parse(src))
// writes src exactly.
func Print(w io.Writer, node Node) error {
	bw := bufio.NewWriter(w)
	p := printer{bw}
	p.node(node)
	return bw.Flush()
}

type bufWriter interface {
	WriteByte(byte) error
	WriteString(string) (int, error)
}

type printer struct {
	bufWriter
}

func (p printer) node(node Node) {
	switch node := node.(type) {
	case *Word:
		for _, part := range node.Parts {
			p.node(part)
		}
	case *Lit:
		p.WriteString(node.Value)
	case *BraceExp:
		p.WriteByte('{')
		for i, elem := range node.Elems {
			if i > 0 {
				p.WriteByte(',')
			}
			p.node(elem)
		}
		p.WriteByte('}')
	}
}

// String returns the word as pattern text.
func (w *Word) String() string {
	var sb strings.Builder
	printer{&sb}.node(w)
	return sb.String()
}
