// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package expand

import (
	"math/rand"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"

	"mvdan.cc/braces/syntax"
)

// genPattern returns a random well-formed pattern along with the fields it
// should expand to, computed directly as the cartesian product of its parts.
//
// At the top level, literals may contain "}" and ",", as those are only
// special within a brace expansion.
func genPattern(rnd *rand.Rand, depth int, top bool) (string, []string) {
	var sb strings.Builder
	fields := []string{""}
	for n := rnd.Intn(4); n > 0; n-- {
		if depth > 0 && rnd.Intn(2) == 0 {
			var elems []string
			sb.WriteByte('{')
			for i := rnd.Intn(3); i >= 0; i-- {
				src, fs := genPattern(rnd, depth-1, false)
				sb.WriteString(src)
				elems = append(elems, fs...)
				if i > 0 {
					sb.WriteByte(',')
				}
			}
			sb.WriteByte('}')
			fields = product(fields, elems)
			continue
		}
		alphabet := "abc"
		if top {
			alphabet += "},"
		}
		lit := make([]byte, rnd.Intn(3))
		for i := range lit {
			lit[i] = alphabet[rnd.Intn(len(alphabet))]
		}
		sb.Write(lit)
		fields = product(fields, []string{string(lit)})
	}
	return sb.String(), fields
}

func product(heads, tails []string) []string {
	var res []string
	for _, head := range heads {
		for _, tail := range tails {
			res = append(res, head+tail)
		}
	}
	return res
}

func TestRandomPatterns(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		src, want := genPattern(rnd, 4, true)
		if diff := cmp.Diff(want, Fields(src)); diff != "" {
			t.Fatalf("Fields(%q) mismatch (-want +got):\n%s", src, diff)
		}
		word := syntax.Parse(src)
		if diff := cmp.Diff(want, Braces(word)); diff != "" {
			t.Fatalf("Braces(%q) mismatch (-want +got):\n%s", src, diff)
		}
		qt.Assert(t, syntax.Count(word), qt.Equals, len(want), qt.Commentf("%q", src))
		qt.Assert(t, Expand(src), qt.Equals, strings.Join(want, " "), qt.Commentf("%q", src))
	}
}

func TestIdentity(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(2))
	const alphabet = "ab,} \t世"
	for i := 0; i < 500; i++ {
		var sb strings.Builder
		for n := rnd.Intn(10); n > 0; n-- {
			sb.WriteString(string([]rune(alphabet)[rnd.Intn(len([]rune(alphabet)))]))
		}
		src := sb.String()
		qt.Assert(t, Expand(src), qt.Equals, src)
	}
}

func TestSingleOption(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		prefix, _ := genPattern(rnd, 2, true)
		suffix, _ := genPattern(rnd, 2, true)
		x := []string{"", "x", "xy", "x.y"}[rnd.Intn(4)]
		got := Expand(prefix + "{" + x + "}" + suffix)
		want := Expand(prefix + x + suffix)
		qt.Assert(t, got, qt.Equals, want, qt.Commentf("prefix=%q x=%q suffix=%q", prefix, x, suffix))
	}
}

func TestSimplifyKeepsExpansion(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		src, want := genPattern(rnd, 4, true)
		word := syntax.Parse(src)
		syntax.Simplify(word)
		simple := word.String()
		syntax.Simplify(word)
		qt.Assert(t, word.String(), qt.Equals, simple, qt.Commentf("simplifying %q twice", src))
		qt.Assert(t, len(simple) <= len(src), qt.IsTrue, qt.Commentf("%q grew into %q", src, simple))
		if diff := cmp.Diff(want, Fields(simple)); diff != "" {
			t.Fatalf("Fields(%q), simplified from %q, mismatch (-want +got):\n%s", simple, src, diff)
		}
	}
}
