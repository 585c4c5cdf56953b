// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package expand performs brace expansion on patterns such as
// "{a,b}{c,d}", much like a shell does before running a command.
//
// Malformed brace expansions never cause an error. A "{" without its closing
// "}" is kept as literal text, along with the rest of the pattern after it.
package expand

import "strings"

// Expand performs brace expansion on a pattern, returning all of the
// resulting fields joined by single spaces.
//
// For example, "{a,b}{c,d}" expands to "ac ad bc bd", and
// "a{b,c{d,e}}" expands to "ab acd ace". A pattern without any brace
// expansion is returned unchanged.
func Expand(pattern string) string {
	return strings.Join(Fields(pattern), " ")
}

// Fields is like Expand, but it returns each resulting field separately, in
// order. It always returns at least one field, which may be empty.
func Fields(pattern string) []string {
	return appendFields(nil, pattern)
}

func appendFields(fields []string, pattern string) []string {
	lbrace := strings.IndexByte(pattern, '{')
	if lbrace < 0 {
		return append(fields, pattern)
	}
	rbrace := closingBrace(pattern, lbrace)
	if rbrace < 0 {
		// Nothing before lbrace is special, and nothing after it
		// gets expanded.
		return append(fields, pattern)
	}
	prefix, suffix := pattern[:lbrace], pattern[rbrace+1:]
	for _, opt := range options(pattern[lbrace+1 : rbrace]) {
		fields = appendFields(fields, prefix+opt+suffix)
	}
	return fields
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

// closingBrace returns the index of the "}" that closes the "{" at lbrace, or
// -1 if the pattern ends before that.
func closingBrace(pattern string, lbrace int) int {
	depth := 0
	for i := lbrace + 1; i < len(pattern); i++ {
		if pattern[i] == '}' && depth == 0 {
			return i
		}
		depth = adjustDepth(depth, pattern[i])
	}
	return -1
}

// optionEnd returns the index of the first "," in s that is not nested within
// braces, or len(s) if there is none.
func optionEnd(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' && depth == 0 {
			return i
		}
		depth = adjustDepth(depth, s[i])
	}
	return len(s)
}

// options splits the text between a pair of matching braces into its options.
// There is always at least one option, even if it is empty.
func options(interior string) []string {
	var opts []string
	for {
		end := optionEnd(interior)
		opts = append(opts, interior[:end])
		if end == len(interior) {
			return opts
		}
		interior = interior[end+1:]
	}
}
