package parse

import (
	"github.com/signadot/tagline/grammar"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/stmt"
	"github.com/signadot/tagline/token"
)

// Grammar produces the statement list for an annotation body, without
// its prefix. Line and offset of the returned diagnostics are relative
// to the body.
type Grammar interface {
	Statements(src string) ([]stmt.Statement, token.Diagnostics)
}

type parseOpts struct {
	grammar   Grammar
	extending *ir.Node
}

type ParseOption func(*parseOpts)

// Extending makes parsing start from a copy of n.
func Extending(n *ir.Node) ParseOption {
	return func(o *parseOpts) { o.extending = n }
}

// WithGrammar replaces the default grammar.
func WithGrammar(g Grammar) ParseOption {
	return func(o *parseOpts) { o.grammar = g }
}

func getOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	if o.grammar == nil {
		o.grammar = grammar.New()
	}
	return o
}
