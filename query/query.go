// Package query evaluates expr-lang expressions over a tree.
//
// The properties of the root are the variables of the expression, with
// numbers read as int or float64. Functions give access by path:
//
//	get("a.b[0]")        the projection of the node at the path, or nil
//	has("a.b")           whether the path exists
//	tombstoned("a.b")    whether the path ends at a removed property
//	text("a.b")          the text of the scalar at the path, or ""
//
// For example, port > 1024 && has("owner.team").
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/tagline/debug"
	"github.com/signadot/tagline/ir"
)

var ErrQuery = errors.New("query error")

type Query struct {
	src string
	prg *vm.Program
}

func Compile(code string) (*Query, error) {
	prg, err := expr.Compile(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: code, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Run evaluates the query against root.
func (q *Query) Run(root *ir.Node) (any, error) {
	env := Env(root)
	if debug.Query() {
		debug.Logf("query %q on %s\n", q.src, root)
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return res, nil
}

// Eval compiles and runs code.
func Eval(root *ir.Node, code string) (any, error) {
	q, err := Compile(code)
	if err != nil {
		return nil, err
	}
	return q.Run(root)
}

// Env returns the expression environment for root.
func Env(root *ir.Node) map[string]any {
	env := map[string]any{}
	if m, ok := Value(ir.ToAny(root)).(map[string]any); ok {
		env = m
	}
	find := func(p string) *ir.Node {
		path, err := ir.ParsePath(p)
		if err != nil {
			return nil
		}
		return root.Find(path)
	}
	env["get"] = func(p string) any {
		n := find(p)
		if n == nil {
			return nil
		}
		return Value(ir.ToAny(n))
	}
	env["has"] = func(p string) bool {
		return find(p) != nil
	}
	env["tombstoned"] = func(p string) bool {
		path, err := ir.ParsePath(p)
		return err == nil && root.Tombstoned(path)
	}
	env["text"] = func(p string) string {
		n := find(p)
		if n == nil || !n.Type.IsScalar() {
			return ""
		}
		return n.Text
	}
	return env
}

// Value converts the json.Number leaves of a projection to int or
// float64.
func Value(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := strconv.Atoi(string(x)); err == nil {
			return i
		}
		if f, err := ir.ParseNumber(string(x)); err == nil {
			return f
		}
		return string(x)
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = Value(e)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = Value(e)
		}
		return res
	default:
		return v
	}
}
