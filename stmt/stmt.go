// Package stmt defines the statement list which a grammar front end
// produces and the interpreter executes.
package stmt

import (
	"fmt"
	"strings"

	"github.com/signadot/tagline/ir"
)

type Kind int

const (
	// SetEq assigns a value: name = value.
	SetEq Kind = iota
	// ReplaceProperties rebuilds the properties: name = { ... }.
	ReplaceProperties
	// UpdateProperties merges into the properties: name { ... }.
	UpdateProperties
	// Define ensures a bare node exists: name, or -name when Deleted.
	Define
	// ClearAll removes every property at the current scope: -...
	ClearAll
)

func (k Kind) String() string {
	switch k {
	case SetEq:
		return "setEq"
	case ReplaceProperties:
		return "replaceProperties"
	case UpdateProperties:
		return "updateProperties"
	case Define:
		return "define"
	case ClearAll:
		return "clearAll"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Statement is one instruction. Path is empty only for ClearAll.
//
// Properties is nil when the statement has no property block and a
// non-nil, possibly empty, slice otherwise.
type Statement struct {
	Kind Kind
	Path ir.Path

	Value      *Value
	Properties []Statement

	// PreserveProperties is set for name = value {...}.
	PreserveProperties bool
	// PreserveValue is set for name = ...{ ... }.
	PreserveValue bool
	// Deleted is set for -name.
	Deleted bool
}

type ValueKind int

const (
	ScalarValue ValueKind = iota
	ArrayValue
	RefValue
)

// Value is the right hand side of a SetEq statement or an array element.
type Value struct {
	Kind ValueKind

	// Scalar holds a scalar node without properties.
	Scalar *ir.Node
	// Elements holds array elements.
	Elements []Element
	// Ref holds a reference.
	Ref *ir.Ref
}

// Element is an array element with an optional property block. Value
// is nil for an element which is only a property block.
type Element struct {
	Value      *Value
	Properties []Statement
}

func Scalar(n *ir.Node) *Value {
	return &Value{Kind: ScalarValue, Scalar: n}
}

func Array(elts ...Element) *Value {
	return &Value{Kind: ArrayValue, Elements: elts}
}

func Ref(up int, p ir.Path) *Value {
	return &Value{Kind: RefValue, Ref: &ir.Ref{Up: up, Path: p}}
}

// String renders the statement for debugging; it is not tagline source.
func (s *Statement) String() string {
	var b strings.Builder
	b.WriteString(s.Kind.String())
	if len(s.Path) != 0 {
		b.WriteByte(' ')
		b.WriteString(s.Path.String())
	}
	if s.Value != nil {
		b.WriteString(" ")
		b.WriteString(s.Value.String())
	}
	switch {
	case s.PreserveProperties:
		b.WriteString(" +props")
	case s.PreserveValue:
		b.WriteString(" +value")
	case s.Deleted:
		b.WriteString(" deleted")
	}
	if s.Properties != nil {
		b.WriteString(" {")
		for i := range s.Properties {
			b.WriteString(" ")
			b.WriteString(s.Properties[i].String())
		}
		b.WriteString(" }")
	}
	return b.String()
}

func (v *Value) String() string {
	switch v.Kind {
	case ScalarValue:
		return fmt.Sprintf("%s(%q)", v.Scalar.Type, v.Scalar.Text)
	case RefValue:
		return "$(" + v.Ref.String() + ")"
	}
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		switch {
		case e.Value == nil:
			parts[i] = fmt.Sprintf("{%d}", len(e.Properties))
		case e.Properties != nil:
			parts[i] = fmt.Sprintf("%s{%d}", e.Value, len(e.Properties))
		default:
			parts[i] = e.Value.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
