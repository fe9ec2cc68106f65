package schema

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/tagline/debug"
	"github.com/signadot/tagline/ir"
)

// Schema is a schema tree together with its custom type table.
type Schema struct {
	Name  string
	Root  *ir.Node
	types map[string]*ir.Node
}

// New prepares root for validation. Name is informational.
func New(name string, root *ir.Node) *Schema {
	s := &Schema{Name: name, Root: root, types: map[string]*ir.Node{}}
	if types := root.Find(ir.P("types")); types != nil {
		for k, def := range types.Entries() {
			s.types[k] = def
		}
	}
	return s
}

// Validate checks data against schema. It never stops at the first
// problem; see the package documentation.
func Validate(data, schema *ir.Node) []*Error {
	return New("", schema).Validate(data)
}

func (s *Schema) Validate(data *ir.Node) []*Error {
	v := &validator{schema: s, active: map[check]bool{}}
	v.checkRules(data, s.Root, nil)
	return v.errs
}

type validator struct {
	schema *Schema
	errs   []*Error
	// active holds the checks in progress, so that data which refers
	// back to itself is not descended into again.
	active map[check]bool
}

type check struct {
	data, schema *ir.Node
}

func (v *validator) add(code string, path []string, format string, args ...any) {
	v.errs = append(v.errs, &Error{
		Message: fmt.Sprintf(format, args...),
		Path:    slices.Clone(path),
		Code:    code,
	})
}

// rules is the part of a schema node which constrains properties.
type rules struct {
	required     *ir.Node
	optional     *ir.Node
	allowUnknown bool
}

func rulesOf(y *ir.Node) rules {
	r := rules{
		required: y.Find(ir.P("required")),
		optional: y.Find(ir.P("optional")),
	}
	r.allowUnknown, _ = y.Bool(ir.P("allowUnknown"))
	return r
}

func (r rules) empty() bool {
	return r.required == nil && r.optional == nil
}

func (r rules) declares(name string) bool {
	return r.required.Has(ir.P(name)) || r.optional.Has(ir.P(name))
}

// checkRules checks the properties of data against the rules held by
// the schema node sn. data may be nil.
func (v *validator) checkRules(data, sn *ir.Node, path []string) {
	if data != nil {
		k := check{data, sn}
		if v.active[k] {
			return
		}
		v.active[k] = true
		defer delete(v.active, k)
	}
	r := rulesOf(sn)
	for _, sec := range []*ir.Node{r.required, r.optional} {
		if sec != nil && sec.HasValue() {
			v.add(CodeInvalidSchema, path, "%s must be a property block", sec.ParentField)
		}
	}
	if r.required != nil {
		for name, ps := range r.required.Entries() {
			p := append(path, name)
			child := data.Find(ir.P(name))
			if data == nil || child == nil {
				v.add(CodeMissingRequired, p, "missing required property %q", name)
				continue
			}
			v.checkProp(child, ps, p)
		}
	}
	if r.optional != nil {
		for name, ps := range r.optional.Entries() {
			if data == nil {
				break
			}
			if child := data.Find(ir.P(name)); child != nil {
				v.checkProp(child, ps, append(path, name))
			}
		}
	}
	if r.allowUnknown || data == nil {
		return
	}
	for name := range data.Entries() {
		if !r.declares(name) {
			v.add(CodeUnknownProperty, append(path, name), "unknown property %q", name)
		}
	}
}

// declaredType reads the type of a property schema: its value, or else
// its type property, or else any.
func declaredType(ps *ir.Node) (string, bool) {
	if ps.Type.IsScalar() {
		return ps.Text, true
	}
	if t, ok := ps.TextAt(ir.P("type")); ok {
		return t, true
	}
	if ps.HasValue() || ps.Has(ir.P("type")) {
		return "", false
	}
	return TypeAny, true
}

func (v *validator) checkProp(data, ps *ir.Node, path []string) {
	ps = ps.Resolve()
	if ps == nil {
		v.add(CodeInvalidSchema, path, "dangling reference")
		return
	}
	declared, ok := declaredType(ps)
	if !ok {
		v.add(CodeInvalidSchema, path, "type must be a type name")
		return
	}
	base, isArray := strings.CutSuffix(declared, arraySuffix)
	def, custom := v.schema.types[base]
	if !custom && !isBuiltin(base) {
		v.add(CodeInvalidSchema, path, "unknown type %q", declared)
		return
	}
	actual := Infer(data)
	if debug.Schema() {
		debug.Logf("schema %s: declared %s actual %s\n", strings.Join(path, "."), declared, actual)
	}
	if !matches(declared, actual, custom) {
		v.add(CodeWrongType, path, "expected %s, got %s", declared, actual)
		return
	}

	nested := ps
	if rulesOf(ps).empty() {
		if !custom {
			return
		}
		nested = def
	}
	if !isArray {
		v.checkRules(data.Resolve(), nested, path)
		return
	}
	elts, _ := data.Array(nil)
	for i, e := range elts {
		v.checkRules(e.Resolve(), nested, append(path, strconv.Itoa(i)))
	}
}
