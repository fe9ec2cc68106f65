// Package grammar turns tagline source into a statement list.
//
//	statements := { statement [","] }
//	statement  := "-..." | "-" path | path [ props ]
//	            | path ("=" | ":") ( "..." props | props | value [ props | "{...}" ] )
//	path       := name { "." name }
//	value      := ident | number | string | @true | @false | @date | array | reference
//	array      := "[" [ element { "," element } [","] ] "]"
//	element    := value [ props ] | props
//	props      := "{" statements "}"
//	reference  := "$(" { "^" } path ")"
//
// A reference without '^' is relative to the root; Statements turns it
// into a hop count equal to the depth of the node holding it.
package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/tagline/debug"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/stmt"
	"github.com/signadot/tagline/token"
)

// Grammar is the default tagline front end.
type Grammar struct{}

func New() *Grammar {
	return &Grammar{}
}

// Statements tokenizes and parses src. On failure it returns no
// statements and a diagnostic for the first error.
func (g *Grammar) Statements(src string) ([]stmt.Statement, token.Diagnostics) {
	d := []byte(src)
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, diagnose(err)
	}
	if debug.Parse() {
		var b strings.Builder
		token.Dump(&b, toks)
		debug.Logf("tokens of %q:\n%s", src, b.String())
	}
	p := &parser{toks: toks, posDoc: token.NewPosDoc(d), n: len(d)}
	res, err := p.statements(0, false)
	if err != nil {
		return nil, diagnose(err)
	}
	return res, nil
}

func diagnose(err error) token.Diagnostics {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return token.Diagnostics{te.Diagnostic()}
	}
	return token.Diagnostics{{Message: err.Error(), Code: token.CodeSyntax}}
}

type parser struct {
	toks   []token.Token
	i      int
	posDoc *token.PosDoc
	n      int
}

func (p *parser) peek() *token.Token {
	return p.peekAt(0)
}

func (p *parser) peekAt(k int) *token.Token {
	if p.i+k >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i+k]
}

func (p *parser) next() *token.Token {
	t := p.peek()
	if t != nil {
		p.i++
	}
	return t
}

func (p *parser) is(tt token.TokenType) bool {
	t := p.peek()
	return t != nil && t.Type == tt
}

func (p *parser) pos() *token.Pos {
	if t := p.peek(); t != nil {
		return t.Pos
	}
	return p.posDoc.Pos(p.n)
}

func (p *parser) expected(what string) error {
	if p.peek() == nil {
		return token.ExpectedErr(what+" before end of input", p.pos())
	}
	return token.ExpectedErr(fmt.Sprintf("%s, got %q", what, p.peek().Bytes), p.pos())
}

func (p *parser) expect(tt token.TokenType, what string) error {
	if !p.is(tt) {
		return p.expected(what)
	}
	p.i++
	return nil
}

// statements reads statements up to the end of input or, in a block, up
// to the closing brace, which is left unread. base is the depth of the
// node the statements apply to.
func (p *parser) statements(base int, inBlock bool) ([]stmt.Statement, error) {
	res := []stmt.Statement{}
	for {
		t := p.peek()
		if t == nil {
			if inBlock {
				return nil, p.expected("'}'")
			}
			return res, nil
		}
		if t.Type == token.TRCurl && inBlock {
			return res, nil
		}
		if t.Type == token.TComma {
			p.i++
			continue
		}
		s, err := p.statement(base)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
}

func (p *parser) statement(base int) (stmt.Statement, error) {
	if p.is(token.TMinus) {
		p.i++
		if p.is(token.TEllipsis) {
			p.i++
			return stmt.Statement{Kind: stmt.ClearAll}, nil
		}
		path, err := p.path()
		if err != nil {
			return stmt.Statement{}, err
		}
		return stmt.Statement{Kind: stmt.Define, Path: path, Deleted: true}, nil
	}
	path, err := p.path()
	if err != nil {
		return stmt.Statement{}, err
	}
	depth := base + len(path)
	s := stmt.Statement{Path: path}
	switch {
	case p.is(token.TLCurl):
		s.Kind = stmt.UpdateProperties
		s.Properties, err = p.props(depth)
		return s, err
	case p.is(token.TEq), p.is(token.TColon):
		p.i++
	default:
		s.Kind = stmt.Define
		return s, nil
	}
	switch {
	case p.is(token.TEllipsis):
		p.i++
		if !p.is(token.TLCurl) {
			return s, p.expected("'{' after '...'")
		}
		s.Kind = stmt.ReplaceProperties
		s.PreserveValue = true
		s.Properties, err = p.props(depth)
		return s, err
	case p.is(token.TLCurl):
		s.Kind = stmt.ReplaceProperties
		s.Properties, err = p.props(depth)
		return s, err
	}
	s.Kind = stmt.SetEq
	s.Value, err = p.value(depth)
	if err != nil || !p.is(token.TLCurl) {
		return s, err
	}
	if p.preserveMarker() {
		s.PreserveProperties = true
		return s, nil
	}
	s.Properties, err = p.props(depth)
	return s, err
}

// preserveMarker consumes "{...}" if it is next.
func (p *parser) preserveMarker() bool {
	a, b := p.peekAt(1), p.peekAt(2)
	if a == nil || b == nil || a.Type != token.TEllipsis || b.Type != token.TRCurl {
		return false
	}
	p.i += 3
	return true
}

func (p *parser) props(depth int) ([]stmt.Statement, error) {
	if err := p.expect(token.TLCurl, "'{'"); err != nil {
		return nil, err
	}
	res, err := p.statements(depth, true)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.TRCurl, "'}'"); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *parser) path() (ir.Path, error) {
	var res ir.Path
	for {
		t := p.peek()
		if t == nil {
			return nil, p.expected("name")
		}
		switch t.Type {
		case token.TIdent:
			res = append(res, ir.Field(string(t.Bytes)))
		case token.TName:
			res = append(res, ir.Field(t.Value))
		case token.TNumber:
			// a.1.2 reads 1.2 as one number token.
			for _, f := range strings.Split(string(t.Bytes), ".") {
				res = append(res, ir.Field(f))
			}
		default:
			return nil, p.expected("name")
		}
		p.i++
		if !p.is(token.TDot) {
			return res, nil
		}
		p.i++
	}
}

// value reads a value held by a node at depth.
func (p *parser) value(depth int) (*stmt.Value, error) {
	t := p.peek()
	if t == nil {
		return nil, p.expected("value")
	}
	switch t.Type {
	case token.TIdent:
		p.i++
		return stmt.Scalar(ir.FromString(string(t.Bytes))), nil
	case token.TString:
		p.i++
		return stmt.Scalar(ir.FromString(t.Value)), nil
	case token.TNumber:
		p.i++
		return stmt.Scalar(ir.FromNumber(string(t.Bytes))), nil
	case token.TMinus:
		n := p.peekAt(1)
		if n == nil || n.Type != token.TNumber || n.Pos.I != t.End() {
			return nil, p.expected("value")
		}
		p.i += 2
		return stmt.Scalar(ir.FromNumber("-" + string(n.Bytes))), nil
	case token.TTrue:
		p.i++
		return stmt.Scalar(ir.FromBool(true)), nil
	case token.TFalse:
		p.i++
		return stmt.Scalar(ir.FromBool(false)), nil
	case token.TDate:
		n, err := ir.FromDateLiteral(t.Value)
		if err != nil {
			return nil, token.NewTokenizeErr(err, t.Pos)
		}
		p.i++
		return stmt.Scalar(n), nil
	case token.TRef:
		v, err := reference(t.Value, depth)
		if err != nil {
			return nil, token.NewTokenizeErr(err, t.Pos)
		}
		p.i++
		return v, nil
	case token.TLSquare:
		return p.array(depth)
	default:
		return nil, p.expected("value")
	}
}

func reference(text string, depth int) (*stmt.Value, error) {
	rest := strings.TrimLeft(text, "^")
	up := len(text) - len(rest)
	path, err := ir.ParsePath(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", token.ErrBadReference, err)
	}
	if up == 0 {
		up = depth
	}
	return stmt.Ref(up, path), nil
}

func (p *parser) array(depth int) (*stmt.Value, error) {
	if err := p.expect(token.TLSquare, "'['"); err != nil {
		return nil, err
	}
	res := stmt.Array()
	res.Elements = []stmt.Element{}
	for !p.is(token.TRSquare) {
		e, err := p.element(depth + 1)
		if err != nil {
			return nil, err
		}
		res.Elements = append(res.Elements, e)
		if !p.is(token.TComma) {
			break
		}
		p.i++
	}
	if err := p.expect(token.TRSquare, "']' or ','"); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *parser) element(depth int) (stmt.Element, error) {
	var (
		e   stmt.Element
		err error
	)
	if p.peek() == nil {
		return e, p.expected("']'")
	}
	if !p.is(token.TLCurl) {
		e.Value, err = p.value(depth)
		if err != nil || !p.is(token.TLCurl) {
			return e, err
		}
	}
	e.Properties, err = p.props(depth)
	return e, err
}
