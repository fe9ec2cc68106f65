package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/parse"
	"github.com/signadot/tagline/schema"
	"github.com/signadot/tagline/token"
)

// schemaSuffix marks documents which are schemas themselves; they are
// validated against the schema language.
const schemaSuffix = ".schema.tl"

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	node    *ir.Node
	diags   []protocol.Diagnostic
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(doc *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[doc.uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// analyze parses content and validates it against the schema registered
// under schemaName, when there is one.
func analyze(uri, content, schemaName string) *document {
	doc := &document{uri: uri, content: content, diags: []protocol.Diagnostic{}}
	node, ds := parse.FromLines(lines(content))
	for _, d := range ds {
		doc.diags = append(doc.diags, protocol.Diagnostic{
			Range:    lineRange(content, d.Line, d.Offset, d.Offset),
			Severity: protocol.DiagnosticSeverityError,
			Code:     d.Code,
			Source:   lsName,
			Message:  d.Message,
		})
	}
	if len(ds) != 0 {
		return doc
	}
	doc.node = node
	if strings.HasSuffix(uri, schemaSuffix) {
		schemaName = schema.MetaName
	}
	s := schema.Lookup(schemaName)
	if s == nil {
		return doc
	}
	for _, e := range s.Validate(node) {
		line, start, end := locate(content, e.Path)
		doc.diags = append(doc.diags, protocol.Diagnostic{
			Range:    lineRange(content, line, start, end),
			Severity: protocol.DiagnosticSeverityWarning,
			Code:     e.Code,
			Source:   s.Name,
			Message:  e.Message,
		})
	}
	return doc
}

// locate finds the first line naming the last property of path, falling
// back to the start of the document.
func locate(content string, path []string) (line, start, end int) {
	for i := len(path) - 1; i >= 0; i-- {
		if strings.Trim(path[i], "0123456789") == "" {
			continue
		}
		name := token.Name(path[i])
		for j, l := range lines(content) {
			_, off := parse.SplitPrefix(l)
			toks, err := token.Tokenize(nil, []byte(l[off:]))
			if err != nil {
				continue
			}
			for k := range toks {
				t := &toks[k]
				if (t.Type == token.TIdent || t.Type == token.TName) && string(t.Bytes) == name {
					return j, off + t.Pos.I, off + t.End()
				}
			}
		}
	}
	return 0, 0, 0
}

func lines(content string) []string {
	res := strings.Split(content, "\n")
	for i := range res {
		res[i] = strings.TrimSuffix(res[i], "\r")
	}
	return res
}

// loadSchema parses and registers the schema in content under name.
func loadSchema(name, content string) (*schema.Schema, error) {
	doc := analyze(name+schemaSuffix, content, "")
	if len(doc.diags) != 0 {
		d := doc.diags[0]
		return nil, fmt.Errorf("%s:%d: %s", name, d.Range.Start.Line+1, d.Message)
	}
	s := schema.New(name, doc.node)
	if err := schema.Register(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     uint32(doc.version),
		Diagnostics: doc.diags,
	})
}

func (s *Server) update(ctx context.Context, uri, content string, version int32) {
	doc := analyze(uri, content, s.schema)
	doc.version = version
	s.docs.put(doc)
	s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.update(ctx, string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole document.
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.update(ctx, string(params.TextDocument.URI), content, params.TextDocument.Version)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}
