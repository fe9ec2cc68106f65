package ir

import (
	"iter"
	"time"
)

// MaxRefDepth bounds the number of references followed while resolving
// one lookup. Deeper chains, and cycles, read as absent.
const MaxRefDepth = 32

// Find returns the node at p, or nil. References met on the way are
// followed; tombstoned nodes are never returned nor walked through.
func (y *Node) Find(p Path) *Node {
	return find(y, p, 0)
}

func find(y *Node, p Path, depth int) *Node {
	cur := resolve(y, depth)
	for _, seg := range p {
		if cur == nil || cur.Tombstone {
			return nil
		}
		cur = resolve(cur.child(seg), depth)
	}
	if cur == nil || cur.Tombstone {
		return nil
	}
	return cur
}

// Resolve returns the node y refers to when y is a reference node, y
// itself otherwise. It returns nil for dangling or cyclic references.
func (y *Node) Resolve() *Node {
	return resolve(y, 0)
}

func resolve(y *Node, depth int) *Node {
	if y == nil || y.Type != RefType {
		return y
	}
	if depth >= MaxRefDepth {
		return nil
	}
	base := y
	for range y.Ref.Up {
		base = base.Parent
		if base == nil {
			return nil
		}
	}
	return find(base, y.Ref.Path, depth+1)
}

// child returns the structural child for seg, tombstones included.
func (y *Node) child(seg Segment) *Node {
	if seg.IsIndex {
		if y.Type != ArrayType || seg.Index < 0 || seg.Index >= len(y.Elements) {
			return nil
		}
		return y.Elements[seg.Index]
	}
	return y.Props.Get(seg.Field)
}

func (y *Node) Has(p Path) bool {
	return y.Find(p) != nil
}

// TextAt returns the text of the scalar at p.
func (y *Node) TextAt(p Path) (string, bool) {
	n := y.Find(p)
	if n == nil || !n.Type.IsScalar() {
		return "", false
	}
	return n.Text, true
}

// Numeric returns the scalar at p read as a number.
func (y *Node) Numeric(p Path) (float64, bool) {
	v, ok := y.TextAt(p)
	if !ok {
		return 0, false
	}
	f, err := ParseNumber(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bool returns the boolean at p.
func (y *Node) Bool(p Path) (bool, bool) {
	n := y.Find(p)
	if n == nil || n.Type != BoolType {
		return false, false
	}
	return n.Text == "true", true
}

// DateAt returns the date at p.
func (y *Node) DateAt(p Path) (time.Time, bool) {
	n := y.Find(p)
	if n == nil || n.Type != DateType {
		return time.Time{}, false
	}
	return n.Date, true
}

// Array returns the elements of the array at p. Elements may be
// reference nodes; see Resolve.
func (y *Node) Array(p Path) ([]*Node, bool) {
	n := y.Find(p)
	if n == nil || n.Type != ArrayType {
		return nil, false
	}
	res := make([]*Node, len(n.Elements))
	copy(res, n.Elements)
	return res, true
}

// TextArray returns the scalar elements of the array at p as text,
// dropping elements which are not scalars.
func (y *Node) TextArray(p Path) ([]string, bool) {
	elts, ok := y.Array(p)
	if !ok {
		return nil, false
	}
	res := make([]string, 0, len(elts))
	for _, e := range elts {
		e = e.Resolve()
		if e == nil || !e.Type.IsScalar() {
			continue
		}
		res = append(res, e.Text)
	}
	return res, true
}

// NumericArray returns the elements of the array at p which read as
// numbers.
func (y *Node) NumericArray(p Path) ([]float64, bool) {
	elts, ok := y.Array(p)
	if !ok {
		return nil, false
	}
	res := make([]float64, 0, len(elts))
	for _, e := range elts {
		e = e.Resolve()
		if e == nil || !e.Type.IsScalar() {
			continue
		}
		f, err := ParseNumber(e.Text)
		if err != nil {
			continue
		}
		res = append(res, f)
	}
	return res, true
}

// Bare reports whether the node at p exists and has no visible
// properties.
func (y *Node) Bare(p Path) bool {
	n := y.Find(p)
	return n != nil && n.Props.visible() == 0
}

// Tombstoned reports whether p ends at an explicitly removed property.
func (y *Node) Tombstoned(p Path) bool {
	if len(p) == 0 {
		return y.Tombstone
	}
	owner := y.Find(p[:len(p)-1])
	if owner == nil {
		return false
	}
	c := owner.child(p[len(p)-1])
	return c != nil && c.Tombstone
}

// Entries iterates the visible properties of y in order.
func (y *Node) Entries() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for k, v := range y.Props.All() {
			if v.Tombstone {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}
