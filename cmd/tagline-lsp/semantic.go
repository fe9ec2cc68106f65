package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/tagline/parse"
	"github.com/signadot/tagline/token"
)

// indices into tokenTypes
const (
	semComment = iota
	semProperty
	semString
	semNumber
	semKeyword
	semOperator
	semVariable
)

var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenVariable,
}

type semToken struct {
	line, start, length uint32
	typ                 int
}

// lineTokens classifies the tokens of one line. A word is a value right
// after '=' or ':' and inside brackets, and a property name otherwise.
func lineTokens(i int, l string) []semToken {
	marker, start := parse.SplitPrefix(l)
	var res []semToken
	add := func(from, to, typ int) {
		cs := character(l, from)
		res = append(res, semToken{line: uint32(i), start: cs, length: character(l, to) - cs, typ: typ})
	}
	if marker != "" {
		add(len(l)-len(strings.TrimLeft(l, " \t")), start, semComment)
	}
	toks, err := token.Tokenize(nil, []byte(l[start:]))
	if err != nil {
		return res
	}
	var (
		value bool
		open  []token.TokenType
	)
	inArray := func() bool {
		return len(open) != 0 && open[len(open)-1] == token.TLSquare
	}
	for k := range toks {
		t := &toks[k]
		from, to := start+t.Pos.I, start+t.End()
		switch t.Type {
		case token.TIdent, token.TName, token.TNumber:
			switch {
			case !value && !inArray():
				add(from, to, semProperty)
			case t.Type == token.TNumber:
				add(from, to, semNumber)
			default:
				add(from, to, semString)
			}
		case token.TString:
			add(from, to, semString)
		case token.TTrue, token.TFalse, token.TDate:
			add(from, to, semKeyword)
		case token.TRef:
			add(from, to, semVariable)
		case token.TEq, token.TColon, token.TMinus, token.TEllipsis:
			add(from, to, semOperator)
		}
		switch t.Type {
		case token.TEq, token.TColon:
			value = true
		case token.TLSquare, token.TLCurl:
			open = append(open, t.Type)
			value = false
		case token.TRSquare, token.TRCurl:
			if len(open) != 0 {
				open = open[:len(open)-1]
			}
			value = false
		case token.TComma, token.TIdent, token.TName, token.TNumber, token.TString, token.TTrue, token.TFalse, token.TDate, token.TRef:
			value = false
		}
	}
	return res
}

// encodeSemantic encodes tokens as LSP relative deltas.
func encodeSemantic(toks []semToken) []uint32 {
	data := make([]uint32, 0, 5*len(toks))
	var line, start uint32
	for _, t := range toks {
		if t.line != line {
			start = 0
		}
		data = append(data, t.line-line, t.start-start, t.length, uint32(t.typ), 0)
		line, start = t.line, t.start
	}
	return data
}

func semanticTokens(content string, from, to int) []uint32 {
	var toks []semToken
	for i, l := range lines(content) {
		if i < from || i > to {
			continue
		}
		toks = append(toks, lineTokens(i, l)...)
	}
	return encodeSemantic(toks)
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc.content, 0, len(doc.content))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.SemanticTokens{
		Data: semanticTokens(doc.content, int(params.Range.Start.Line), int(params.Range.End.Line)),
	}, nil
}
