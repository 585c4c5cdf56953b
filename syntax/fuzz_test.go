// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import "testing"

func FuzzParsePrint(f *testing.F) {
	for _, tc := range parseTests {
		f.Add(tc.in)
	}
	f.Fuzz(func(t *testing.T, src string) {
		w := Parse(src)
		if got := w.String(); got != src {
			t.Fatalf("print mismatch on %q: got %q", src, got)
		}
		if n := Count(w); n < 1 {
			t.Fatalf("Count(%q) = %d, want at least 1", src, n)
		}
		Walk(w, func(node Node) bool {
			if br, ok := node.(*BraceExp); ok && len(br.Elems) == 0 {
				t.Fatalf("brace expansion without elements in %q", src)
			}
			return true
		})
	})
}
