package token

import (
	"fmt"
	"io"
)

// Dump writes one line per token to w: its offset, type and text.
func Dump(w io.Writer, toks []Token) {
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(w, "%4d %-8s %q\n", t.Pos.I, t.Type, t.Bytes)
	}
}
