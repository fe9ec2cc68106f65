package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tagline/format"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/token"
)

// DefaultPrefix is written before the properties of a root whose Prefix
// is empty.
const DefaultPrefix = "# "

type EncState struct {
	format    format.Format
	prefix    string
	hasPrefix bool
	indent    int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. In tagline format node is treated as a root:
// only its properties are written, and it is an ErrRootValue error for it
// to have a value.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	}
	if node.HasValue() {
		return fmt.Errorf("%w: %w: %s", ErrEncoding, ErrRootValue, node.Type)
	}
	prefix := node.Prefix
	if es.hasPrefix {
		prefix = es.prefix
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	var b strings.Builder
	b.WriteString(es.color(ir.BareType, PrefixColor, prefix))
	for i, e := range entries(node) {
		if i > 0 {
			b.WriteByte(' ')
		}
		es.entry(&b, e.name, e.node, 0)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

type entry struct {
	name string
	node *ir.Node
}

// entries lists all properties, tombstones included.
func entries(y *ir.Node) []entry {
	res := make([]entry, 0, y.Props.Len())
	for k, v := range y.Props.All() {
		res = append(res, entry{name: k, node: v})
	}
	return res
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// entry writes one property. depth is the depth of the owner of the
// property below the encoded root.
func (es *EncState) entry(b *strings.Builder, name string, y *ir.Node, depth int) {
	if y.Tombstone {
		b.WriteString(es.color(ir.BareType, TombstoneColor, "-"+token.Name(name)))
		return
	}
	depth++
	b.WriteString(es.color(y.Type, FieldColor, token.Name(name)))
	for !y.HasValue() && y.Props.Len() == 1 {
		kids := entries(y)
		if kids[0].node.Tombstone {
			break
		}
		b.WriteByte('.')
		name, y = kids[0].name, kids[0].node
		depth++
		b.WriteString(es.color(y.Type, FieldColor, token.Name(name)))
	}
	if y.HasValue() {
		b.WriteString(es.color(y.Type, SepColor, " = "))
		es.value(b, y, depth)
	}
	if y.Props.Len() != 0 {
		b.WriteByte(' ')
		es.block(b, y, depth)
	}
}

// block writes the properties of y in braces.
func (es *EncState) block(b *strings.Builder, y *ir.Node, depth int) {
	b.WriteString(es.color(ir.BareType, SepColor, "{"))
	for _, e := range entries(y) {
		b.WriteByte(' ')
		es.entry(b, e.name, e.node, depth)
	}
	b.WriteString(es.color(ir.BareType, SepColor, " }"))
}

// value writes the value of y, which lives at the given depth.
func (es *EncState) value(b *strings.Builder, y *ir.Node, depth int) {
	switch y.Type {
	case ir.StringType:
		b.WriteString(es.color(y.Type, ValueColor, token.String(y.Text)))
	case ir.NumberType:
		v := y.Text
		if !token.IsNumber(v) {
			v = token.QuoteString(v)
		}
		b.WriteString(es.color(y.Type, ValueColor, v))
	case ir.BoolType, ir.DateType:
		b.WriteString(es.color(y.Type, ValueColor, "@"+y.Text))
	case ir.RefType:
		b.WriteString(es.color(y.Type, ValueColor, "$("+refText(y.Ref, depth)+")"))
	case ir.ArrayType:
		b.WriteString(es.color(y.Type, SepColor, "["))
		for i, e := range y.Elements {
			if i > 0 {
				b.WriteString(es.color(y.Type, SepColor, ", "))
			}
			es.element(b, e, depth+1)
		}
		b.WriteString(es.color(y.Type, SepColor, "]"))
	}
}

func (es *EncState) element(b *strings.Builder, y *ir.Node, depth int) {
	hasProps := y.Props.Len() != 0
	switch {
	case y.HasValue() && hasProps:
		es.value(b, y, depth)
		b.WriteByte(' ')
		es.block(b, y, depth)
	case y.HasValue():
		es.value(b, y, depth)
	case hasProps:
		es.block(b, y, depth)
	default:
		b.WriteString(es.color(ir.BareType, SepColor, "{}"))
	}
}

// refText writes a reference held at depth; a reference which climbs
// exactly to the encoded root is written without hops.
func refText(r *ir.Ref, depth int) string {
	if r.Up == depth {
		return r.Path.String()
	}
	return r.String()
}
