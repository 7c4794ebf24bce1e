package token

import (
	"fmt"
	"strings"
)

// Dump renders every token in tokens[:count] as an indented, one-line-
// per-token listing, e.g. for `mujson tokens`. It is a debugging
// convenience only; it has no bearing on the grammar or invariants.
func Dump(input []byte, tokens []Token, count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		t := tokens[i]
		fmt.Fprintf(&b, "%s[%d] %s %s\n",
			strings.Repeat("  ", t.Level()), i, t.Kind(), t.Text(input))
	}
	return b.String()
}
