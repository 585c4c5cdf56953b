// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

// Parse parses a brace pattern into a syntax tree. It never fails; malformed
// brace expansions are kept as literals. For example, "a{b" results in a
// single literal, and so does "{a,b{c,d}", since its first brace is never
// closed.
//
// Printing the resulting word gives back the original pattern.
func Parse(src string) *Word {
	return parseWord(src, 0, len(src))
}

// parseWord parses src[start:end]. Any brace expansion starting within that
// range must also end within it to be recognised.
func parseWord(src string, start, end int) *Word {
	w := &Word{}
	litStart := start
	for i := start; i < end; i++ {
		if src[i] != '{' {
			continue
		}
		rbrace := closingBrace(src[:end], i)
		if rbrace < 0 {
			// The rest of the word is literal.
			break
		}
		w.addLit(src, litStart, i)
		br := &BraceExp{Lbrace: NewPos(i), Rbrace: NewPos(rbrace)}
		for elemStart := i + 1; ; {
			elemEnd := elemEnd(src, elemStart, rbrace)
			br.Elems = append(br.Elems, parseWord(src, elemStart, elemEnd))
			if elemEnd == rbrace {
				break
			}
			elemStart = elemEnd + 1
		}
		w.Parts = append(w.Parts, br)
		i = rbrace
		litStart = rbrace + 1
	}
	w.addLit(src, litStart, end)
	return w
}

func (w *Word) addLit(src string, start, end int) {
	if start == end {
		return // empty lit
	}
	w.Parts = append(w.Parts, &Lit{ValuePos: NewPos(start), Value: src[start:end]})
}

func adjustDepth(depth int, b byte) int {
	switch b {
	case '{':
		return depth + 1
	case '}':
		return depth - 1
	}
	return depth
}

// closingBrace returns the index of the "}" matching the "{" at lbrace, or -1
// if the end of src is reached first.
func closingBrace(src string, lbrace int) int {
	depth := 0
	for i := lbrace + 1; i < len(src); i++ {
		if src[i] == '}' && depth == 0 {
			return i
		}
		depth = adjustDepth(depth, src[i])
	}
	return -1
}

// elemEnd returns the index of the first "," at depth zero within
// src[start:end], or end if there is none.
func elemEnd(src string, start, end int) int {
	depth := 0
	for i := start; i < end; i++ {
		if src[i] == ',' && depth == 0 {
			return i
		}
		depth = adjustDepth(depth, src[i])
	}
	return end
}
