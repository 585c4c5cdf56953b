// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax_test

import (
	"fmt"
	"os"
	"strings"

	"mvdan.cc/braces/syntax"
)

func ExampleParse() {
	w := syntax.Parse("img{1,2}.{png,jpg}")
	for _, part := range w.Parts {
		switch part := part.(type) {
		case *syntax.Lit:
			fmt.Printf("literal %q\n", part.Value)
		case *syntax.BraceExp:
			fmt.Printf("brace expansion with %d options\n", len(part.Elems))
		}
	}
	fmt.Println(syntax.Count(w), "fields")
	// Output:
	// literal "img"
	// brace expansion with 2 options
	// literal "."
	// brace expansion with 2 options
	// 4 fields
}

func ExampleWalk() {
	w := syntax.Parse("{foo,bar}.{go,txt}")
	syntax.Walk(w, func(node syntax.Node) bool {
		if lit, ok := node.(*syntax.Lit); ok {
			lit.Value = strings.ToUpper(lit.Value)
		}
		return true
	})
	syntax.Print(os.Stdout, w)
	fmt.Println()
	// Output: {FOO,BAR}.{GO,TXT}
}
