package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/format"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/parse"
	"github.com/signadot/tagline/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	line := int(params.Position.Line)
	text, rng := hoverAt(doc, line, byteOffset(lineOf(doc.content, line), params.Position.Character))
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &rng,
	}, nil
}

// tokenAt returns the token of line covering byte offset off.
func tokenAt(l string, off int) (*token.Token, int) {
	_, start := parse.SplitPrefix(l)
	if off < start {
		return nil, start
	}
	toks, err := token.Tokenize(nil, []byte(l[start:]))
	if err != nil {
		return nil, start
	}
	for i := range toks {
		t := &toks[i]
		if start+t.Pos.I <= off && off < start+t.End() {
			return t, start
		}
	}
	return nil, start
}

func hoverAt(doc *document, line, off int) (string, protocol.Range) {
	l := lineOf(doc.content, line)
	t, start := tokenAt(l, off)
	if t == nil {
		return "", protocol.Range{}
	}
	rng := lineRange(doc.content, line, start+t.Pos.I, start+t.End())
	switch t.Type {
	case token.TRef:
		return refHover(doc.node, t.Value), rng
	case token.TNumber:
		f, err := ir.ParseNumber(t.String())
		if err != nil {
			return "", rng
		}
		return fmt.Sprintf("**Number** `%s` (%g)", t.String(), f), rng
	case token.TDate:
		d, err := token.ParseDate(t.Value)
		if err != nil {
			return "", rng
		}
		return fmt.Sprintf("**Date** `%s`", token.FormatDate(d)), rng
	case token.TString:
		return fmt.Sprintf("**String** %q", t.Value), rng
	case token.TTrue, token.TFalse:
		return "**Bool** `" + t.String() + "`", rng
	}
	return "", rng
}

// refHover describes what a reference resolves to. References climbing
// with '^' depend on where they sit, so only root-relative ones are
// resolved.
func refHover(root *ir.Node, ref string) string {
	up := len(ref) - len(strings.TrimLeft(ref, "^"))
	if up != 0 {
		return fmt.Sprintf("**Reference** %d levels up to `%s`", up, ref[up:])
	}
	p, err := ir.ParsePath(ref)
	if err != nil {
		return fmt.Sprintf("**Reference** `%s`: %s", ref, err)
	}
	var target *ir.Node
	if root != nil {
		target = root.Find(p)
	}
	if target == nil {
		return fmt.Sprintf("**Reference** `%s` is unresolved", ref)
	}
	return fmt.Sprintf("**Reference** `%s`\n\n%s", ref, describe(target))
}

func describe(n *ir.Node) string {
	var parts []string
	if n.HasValue() {
		parts = append(parts, fmt.Sprintf("**Type:** %s", n.Type))
	}
	switch {
	case n.Type.IsScalar():
		val := n.Text
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
	case n.Type == ir.ArrayType:
		parts = append(parts, fmt.Sprintf("array with %d elements", len(n.Elements)))
	}
	if n.Props.Len() != 0 {
		var buf strings.Builder
		if err := encode.Encode(n, &buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeIndent(0)); err == nil {
			parts = append(parts, "```json\n"+strings.TrimSpace(buf.String())+"\n```")
		}
	}
	return strings.Join(parts, "\n\n")
}
