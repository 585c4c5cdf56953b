// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package expand

import "mvdan.cc/braces/syntax"

// Braces performs brace expansion on a word obtained from syntax.Parse. For
// example, the word for "foo{bar,baz}" results in the fields "foobar" and
// "foobaz".
//
// For any pattern, Braces(syntax.Parse(pattern)) gives the same result as
// Fields(pattern). Braces is useful when a parsed word is modified before
// being expanded, or when it is already at hand.
//
// A nil word results in a single empty field.
func Braces(word *syntax.Word) []string {
	fields := []string{""}
	if word == nil {
		return fields
	}
	for _, part := range word.Parts {
		switch part := part.(type) {
		case *syntax.Lit:
			for i := range fields {
				fields[i] += part.Value
			}
		case *syntax.BraceExp:
			var elems []string
			for _, elem := range part.Elems {
				elems = append(elems, Braces(elem)...)
			}
			next := make([]string, 0, len(fields)*len(elems))
			for _, field := range fields {
				for _, elem := range elems {
					next = append(next, field+elem)
				}
			}
			fields = next
		}
	}
	return fields
}
