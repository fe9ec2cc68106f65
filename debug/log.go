package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/format"
	"github.com/signadot/tagline/ir"
)

// Tagline formats a tree lazily, for use as a Logf argument.
type Tagline struct{ *ir.Node }

func (y Tagline) String() string {
	return nodeString(y.Node)
}

func nodeString(x *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err == nil {
		return buf.String()
	}
	// subtrees holding a value have no tagline form of their own.
	buf.Reset()
	if err := encode.Encode(x, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeIndent(0)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}

// out is where Logf writes.
var out io.Writer = os.Stderr

// Logf writes one line to stderr, rendering trees as tagline and
// projections as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = nodeString(x)
		}
	}
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(out, msg, args...)
}
