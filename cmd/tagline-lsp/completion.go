package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/schema"
	"github.com/signadot/tagline/token"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	l := lineOf(doc.content, int(params.Position.Line))
	before := l[:byteOffset(l, params.Position.Character)]
	return &protocol.CompletionList{
		Items: completions(doc, before, schema.Lookup(s.schema)),
	}, nil
}

// completions offers, by what precedes the cursor, the paths of the tree
// inside a reference, the boolean literals after '@' and otherwise the
// schema's declared properties which the tree lacks.
func completions(doc *document, before string, s *schema.Schema) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	if i := strings.LastIndex(before, "$("); i != -1 && !strings.Contains(before[i:], ")") {
		if doc.node == nil {
			return items
		}
		for _, p := range paths(doc.node, nil) {
			items = append(items, protocol.CompletionItem{
				Label: p,
				Kind:  protocol.CompletionItemKindReference,
			})
		}
		return items
	}
	if strings.HasSuffix(before, "@") {
		for _, lit := range []string{"true", "false"} {
			items = append(items, protocol.CompletionItem{
				Label: "@" + lit,
				Kind:  protocol.CompletionItemKindKeyword,
				// '@' is already typed
				InsertText: lit,
			})
		}
		return items
	}
	if s == nil {
		return items
	}
	for _, section := range []string{"required", "optional"} {
		decl := s.Root.Find(ir.P(section))
		if decl == nil {
			continue
		}
		for name := range decl.Entries() {
			if doc.node != nil && doc.node.Has(ir.P(name)) {
				continue
			}
			items = append(items, protocol.CompletionItem{
				Label:  token.Name(name),
				Kind:   protocol.CompletionItemKindProperty,
				Detail: section,
			})
		}
	}
	return items
}

// paths lists the dotted paths of the properties under y, depth first.
func paths(y *ir.Node, prefix []string) []string {
	var res []string
	for k, c := range y.Entries() {
		p := append(prefix[:len(prefix):len(prefix)], token.Name(k))
		res = append(res, strings.Join(p, "."))
		res = append(res, paths(c, p)...)
	}
	return res
}
