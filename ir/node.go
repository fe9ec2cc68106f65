package ir

import (
	"strconv"
	"time"

	"github.com/signadot/tagline/token"
)

// Node is the single entity of a tagline tree. The value is a tagged
// union discriminated by Type; properties live in Props independently of
// the value.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Text     string
	Date     time.Time
	Elements []*Node
	Ref      *Ref

	Props     *Props
	Tombstone bool
	Prefix    string
}

// New returns an empty root.
func New() *Node {
	return &Node{ParentIndex: -1}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, Text: v, ParentIndex: -1}
}

// FromNumber returns a number node holding the literal text v. It does not
// check that v is a number literal.
func FromNumber(v string) *Node {
	return &Node{Type: NumberType, Text: v, ParentIndex: -1}
}

func FromFloat(f float64) *Node {
	return FromNumber(strconv.FormatFloat(f, 'f', -1, 64))
}

func FromInt(i int64) *Node {
	return FromNumber(strconv.FormatInt(i, 10))
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Text: strconv.FormatBool(v), ParentIndex: -1}
}

func FromDate(t time.Time) *Node {
	return &Node{Type: DateType, Text: token.FormatDate(t), Date: t, ParentIndex: -1}
}

// FromDateLiteral returns a date node for the literal text v (no '@').
func FromDateLiteral(v string) (*Node, error) {
	t, err := token.ParseDate(v)
	if err != nil {
		return nil, err
	}
	return &Node{Type: DateType, Text: v, Date: t, ParentIndex: -1}, nil
}

func FromSlice(elts []*Node) *Node {
	res := &Node{Type: ArrayType, ParentIndex: -1, Elements: make([]*Node, len(elts))}
	for i, e := range elts {
		adopt(res, e, "", i)
		res.Elements[i] = e
	}
	return res
}

func FromRef(up int, p Path) *Node {
	return &Node{Type: RefType, Ref: &Ref{Up: up, Path: p}, ParentIndex: -1}
}

// WithProp adds a property to y and returns y. It is meant for building
// trees by hand, typically in tests.
func (y *Node) WithProp(name string, child *Node) *Node {
	if y.Props == nil {
		y.Props = NewProps()
	}
	adopt(y, child, name, -1)
	y.Props.set(name, child)
	return y
}

func adopt(parent, child *Node, field string, index int) {
	child.Parent = parent
	child.ParentField = field
	child.ParentIndex = index
}

// HasValue reports whether y carries a value (scalar, array or reference).
func (y *Node) HasValue() bool {
	return y.Type != BareType
}

// Clone returns a detached deep copy of y: the copy is a root.
func (y *Node) Clone() *Node {
	res := y.CloneTo(&Node{})
	res.Parent = nil
	res.ParentField = ""
	res.ParentIndex = -1
	return res
}

// CloneTo deep copies y into dst. dst keeps y's parent links; children of
// dst point at dst.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Text = y.Text
	dst.Date = y.Date
	dst.Tombstone = y.Tombstone
	dst.Prefix = y.Prefix
	dst.Elements = nil
	dst.Ref = nil
	dst.Props = nil
	if y.Ref != nil {
		dst.Ref = &Ref{Up: y.Ref.Up, Path: y.Ref.Path.Append()}
	}
	if y.Type == ArrayType {
		dst.Elements = make([]*Node, len(y.Elements))
		for i, ye := range y.Elements {
			de := ye.CloneTo(&Node{})
			adopt(dst, de, "", i)
			dst.Elements[i] = de
		}
	}
	if y.Props != nil {
		dst.Props = NewProps()
		for k, yv := range y.Props.All() {
			dv := yv.CloneTo(&Node{})
			adopt(dst, dv, k, -1)
			dst.Props.set(k, dv)
		}
	}
	return dst
}

// assignValue copies the value of src (not its properties) into y,
// re-parenting array elements.
func (y *Node) assignValue(src *Node) {
	y.Type = src.Type
	y.Text = src.Text
	y.Date = src.Date
	y.Ref = src.Ref
	y.Elements = nil
	if src.Type == ArrayType {
		y.Elements = make([]*Node, len(src.Elements))
		for i, e := range src.Elements {
			adopt(y, e, "", i)
			y.Elements[i] = e
		}
	}
}

// clearValue makes y bare, keeping its properties.
func (y *Node) clearValue() {
	y.Type = BareType
	y.Text = ""
	y.Date = time.Time{}
	y.Elements = nil
	y.Ref = nil
}

// Root returns the top of the tree holding y.
func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Depth is the number of parent hops from y to its root.
func (y *Node) Depth() int {
	d := 0
	for p := y.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Path returns the path from the root to y.
func (y *Node) Path() Path {
	if y.Parent == nil {
		return nil
	}
	seg := Field(y.ParentField)
	if y.ParentIndex >= 0 {
		seg = Index(y.ParentIndex)
	}
	return y.Parent.Path().Append(seg)
}
