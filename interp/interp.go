// Package interp executes statement lists, building a new tree or
// extending an existing one.
package interp

import (
	"fmt"

	"github.com/signadot/tagline/debug"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/stmt"
)

// Execute applies stmts, in order, to a copy of extending (or to an empty
// root when extending is nil) and returns the result. Later statements
// win over earlier ones at the same path. extending is not modified.
//
// Execute panics on statements which a grammar must never produce, such
// as a statement other than ClearAll with an empty path.
func Execute(stmts []stmt.Statement, extending *ir.Node) *ir.Node {
	var root *ir.Node
	if extending == nil {
		root = ir.New()
	} else {
		root = extending.Clone()
	}
	run(root, stmts)
	return root
}

// run executes stmts with scope as the node they apply to.
func run(scope *ir.Node, stmts []stmt.Statement) {
	for i := range stmts {
		s := &stmts[i]
		if debug.Exec() {
			debug.Logf("exec %s at %s\n", s, scope.Path())
		}
		exec(scope, s)
	}
}

func exec(scope *ir.Node, s *stmt.Statement) {
	if s.Kind == stmt.ClearAll {
		ir.Build(scope).ClearProps()
		return
	}
	if len(s.Path) == 0 {
		panic(fmt.Sprintf("%s statement with empty path", s.Kind))
	}
	seg, owner := ir.Build(scope).Reach(s.Path)
	b := ir.Build(owner)
	existing := b.Child(seg)
	if existing != nil && existing.Tombstone {
		existing = nil
	}

	switch s.Kind {
	case stmt.SetEq:
		if s.Value == nil {
			panic("setEq statement without value")
		}
		n := &ir.Node{}
		assign(n, s.Value)
		b.Put(seg, n)
		switch {
		case s.PreserveProperties:
			if existing != nil {
				ir.Build(n).TakeProps(existing)
			}
		case s.Properties != nil:
			ir.Build(n).Props()
			run(n, s.Properties)
		}

	case stmt.ReplaceProperties:
		n := &ir.Node{}
		if s.PreserveValue && existing != nil {
			ir.Build(n).SetValue(existing)
		}
		b.Put(seg, n)
		ir.Build(n).Props()
		run(n, s.Properties)

	case stmt.UpdateProperties:
		n := existing
		if n == nil || n.Type == ir.RefType {
			n = &ir.Node{}
			b.Put(seg, n)
		}
		ir.Build(n).Props()
		run(n, s.Properties)

	case stmt.Define:
		switch {
		case s.Deleted:
			b.Put(seg, &ir.Node{Tombstone: true})
		case existing == nil:
			b.Put(seg, &ir.Node{})
		}

	default:
		panic(fmt.Sprintf("unknown statement kind %s", s.Kind))
	}
}

// assign gives n the value v. Array elements are built recursively.
func assign(n *ir.Node, v *stmt.Value) {
	switch v.Kind {
	case stmt.ScalarValue:
		ir.Build(n).SetValue(v.Scalar)
	case stmt.RefValue:
		ir.Build(n).SetValue(ir.FromRef(v.Ref.Up, v.Ref.Path.Append()))
	case stmt.ArrayValue:
		elts := make([]*ir.Node, len(v.Elements))
		for i := range v.Elements {
			elts[i] = element(&v.Elements[i])
		}
		ir.Build(n).SetValue(ir.FromSlice(elts))
	default:
		panic(fmt.Sprintf("unknown value kind %d", v.Kind))
	}
}

func element(e *stmt.Element) *ir.Node {
	n := &ir.Node{}
	if e.Value != nil {
		assign(n, e.Value)
	}
	if e.Properties != nil {
		ir.Build(n).Props()
		run(n, e.Properties)
	}
	return n
}
