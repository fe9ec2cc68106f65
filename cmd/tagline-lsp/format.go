package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/libdiff"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc), nil
}

// formatEdits returns the edits rewriting doc in canonical form. A
// document which does not parse gets none.
func formatEdits(doc *document) []protocol.TextEdit {
	if doc.node == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc.node, &buf); err != nil {
		return nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}
	}
	edits := libdiff.Edits(doc.content, formatted)
	res := make([]protocol.TextEdit, len(edits))
	for i, e := range edits {
		res[i] = protocol.TextEdit{
			Range: protocol.Range{
				Start: positionOf(doc.content, e.Start),
				End:   positionOf(doc.content, e.End),
			},
			NewText: e.Text,
		}
	}
	return res
}
