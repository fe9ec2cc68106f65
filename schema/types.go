package schema

import (
	"strings"

	"github.com/signadot/tagline/ir"
)

const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeDate    = "date"
	TypeTag     = "tag"
	TypeAny     = "any"

	// TypeMixed is only inferred, for arrays whose elements differ.
	TypeMixed = "mixed"
)

const arraySuffix = "[]"

func isBuiltin(t string) bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeDate, TypeTag, TypeAny:
		return true
	}
	return false
}

// Infer returns the type name of a value: tag for a node without a
// value, the uniform element type followed by [] for arrays, mixed[]
// when elements differ and any[] for an empty array. An element which
// refers back to an enclosing array infers as any.
func Infer(y *ir.Node) string {
	return infer(y, map[*ir.Node]bool{})
}

func infer(y *ir.Node, active map[*ir.Node]bool) string {
	y = y.Resolve()
	if y == nil || active[y] {
		return TypeAny
	}
	switch y.Type {
	case ir.StringType:
		return TypeString
	case ir.NumberType:
		return TypeNumber
	case ir.BoolType:
		return TypeBoolean
	case ir.DateType:
		return TypeDate
	case ir.ArrayType:
		if len(y.Elements) == 0 {
			return TypeAny + arraySuffix
		}
		active[y] = true
		defer delete(active, y)
		elt := infer(y.Elements[0], active)
		for _, e := range y.Elements[1:] {
			if infer(e, active) != elt {
				return TypeMixed + arraySuffix
			}
		}
		return elt + arraySuffix
	default:
		return TypeTag
	}
}

// matches reports whether a value of type actual satisfies declared.
// Custom types are satisfied by tags.
func matches(declared, actual string, custom bool) bool {
	if declared == TypeAny || declared == TypeAny+arraySuffix {
		return true
	}
	if custom {
		if strings.HasSuffix(declared, arraySuffix) {
			return actual == TypeTag+arraySuffix || actual == TypeAny+arraySuffix
		}
		return actual == TypeTag
	}
	if declared == actual {
		return true
	}
	return strings.HasSuffix(declared, arraySuffix) && actual == TypeAny+arraySuffix
}
