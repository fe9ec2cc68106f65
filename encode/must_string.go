package encode

import (
	"bytes"

	"github.com/signadot/tagline/ir"
)

// String returns the tagline form of node, including the trailing
// newline. It panics if node cannot be encoded; see Encode.
func String(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// MustString is like String without the trailing newline.
func MustString(node *ir.Node) string {
	s := String(node)
	return s[:len(s)-1]
}
