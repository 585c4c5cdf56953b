// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

// Simplify rewrites a pattern into a shorter one with the same expansion.
// For example, "a{b}c" becomes "abc", and "{a,{b,c}}" becomes "{a,b,c}".
//
// Simplified nodes do not keep accurate positions.
func Simplify(word *Word) {
	Walk(word, simpleVisit)
}

func simpleVisit(node Node) bool {
	switch x := node.(type) {
	case *Word:
		x.Parts = simplifyParts(x.Parts)
	case *BraceExp:
		x.Elems = flattenElems(x.Elems)
	}
	return true
}

// simplifyParts inlines brace expansions with a single element, and joins
// adjacent literals.
func simplifyParts(parts []WordPart) []WordPart {
	var res []WordPart
	for _, part := range parts {
		if br, ok := part.(*BraceExp); ok && len(br.Elems) == 1 {
			for _, inner := range simplifyParts(br.Elems[0].Parts) {
				res = appendPart(res, inner)
			}
			continue
		}
		res = appendPart(res, part)
	}
	return res
}

func appendPart(parts []WordPart, part WordPart) []WordPart {
	if lit, ok := part.(*Lit); ok && len(parts) > 0 {
		if prev, ok := parts[len(parts)-1].(*Lit); ok {
			parts[len(parts)-1] = &Lit{ValuePos: prev.ValuePos, Value: prev.Value + lit.Value}
			return parts
		}
	}
	return append(parts, part)
}

// flattenElems replaces elements consisting of a single brace expansion with
// that expansion's elements, as in "{a,{b,c}}". Elements are simplified
// first, since "{}{b,c}" is also a single brace expansion once simplified.
func flattenElems(elems []*Word) []*Word {
	var res []*Word
	for _, elem := range elems {
		elem.Parts = simplifyParts(elem.Parts)
		if len(elem.Parts) == 1 {
			if br, ok := elem.Parts[0].(*BraceExp); ok {
				res = append(res, flattenElems(br.Elems)...)
				continue
			}
		}
		res = append(res, elem)
	}
	return res
}
