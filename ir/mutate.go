package ir

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"
)

// Set returns a copy of y in which the node at p holds the value v. Missing
// nodes on the way are created, arrays are padded with empty nodes up to
// the index, and tombstones on the way are cleared. The properties of the
// node at p are kept.
//
// v may be a string, an integer or float, a bool, a time.Time, a
// []string, []int or []float64, a *Node (whose value is copied) or nil,
// which clears the value. Non-finite floats and text which is not valid
// UTF-8, in v or in the names of p, are unsupported.
func (y *Node) Set(p Path, v any) (*Node, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPath
	}
	for _, seg := range p {
		if !seg.IsIndex && !utf8.ValidString(seg.Field) {
			return nil, fmt.Errorf("%w: name %q is not UTF-8", ErrUnsupportedValue, seg.Field)
		}
	}
	val, err := valueNode(v)
	if err != nil {
		return nil, err
	}
	res := y.Clone()
	seg, owner := Build(res).Reach(p)
	dst := owner.child(seg)
	if dst == nil {
		dst = &Node{}
		Build(owner).Put(seg, dst)
	}
	dst.Tombstone = false
	Build(dst).SetValue(val)
	return res, nil
}

// MustSet is like Set but panics on error.
func (y *Node) MustSet(p Path, v any) *Node {
	res, err := y.Set(p, v)
	if err != nil {
		panic(err)
	}
	return res
}

func valueNode(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return &Node{}, nil
	case *Node:
		if err := checkUTF8(x); err != nil {
			return nil, err
		}
		return x.Clone(), nil
	case string:
		if !utf8.ValidString(x) {
			return nil, fmt.Errorf("%w: %q is not UTF-8", ErrUnsupportedValue, x)
		}
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case time.Time:
		return FromDate(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromNumber(fmt.Sprint(x)), nil
	case uint8:
		return FromNumber(fmt.Sprint(x)), nil
	case uint16:
		return FromNumber(fmt.Sprint(x)), nil
	case uint32:
		return FromNumber(fmt.Sprint(x)), nil
	case uint64:
		return FromNumber(fmt.Sprint(x)), nil
	case float32:
		return floatNode(float64(x))
	case float64:
		return floatNode(x)
	case []string:
		elts := make([]*Node, len(x))
		for i, s := range x {
			if !utf8.ValidString(s) {
				return nil, fmt.Errorf("%w: %q is not UTF-8", ErrUnsupportedValue, s)
			}
			elts[i] = FromString(s)
		}
		return FromSlice(elts), nil
	case []int:
		elts := make([]*Node, len(x))
		for i, n := range x {
			elts[i] = FromInt(int64(n))
		}
		return FromSlice(elts), nil
	case []float64:
		elts := make([]*Node, len(x))
		for i, f := range x {
			e, err := floatNode(f)
			if err != nil {
				return nil, err
			}
			elts[i] = e
		}
		return FromSlice(elts), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// floatNode rejects NaN and the infinities, which have no number literal.
func floatNode(f float64) (*Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, f)
	}
	return FromFloat(f), nil
}

// checkUTF8 reports text in y, strings and property names, which is not
// valid UTF-8 and so could not be written back.
func checkUTF8(y *Node) error {
	if y == nil {
		return nil
	}
	if y.Type == StringType && !utf8.ValidString(y.Text) {
		return fmt.Errorf("%w: %q is not UTF-8", ErrUnsupportedValue, y.Text)
	}
	for _, e := range y.Elements {
		if err := checkUTF8(e); err != nil {
			return err
		}
	}
	for k, c := range y.Props.All() {
		if !utf8.ValidString(k) {
			return fmt.Errorf("%w: name %q is not UTF-8", ErrUnsupportedValue, k)
		}
		if err := checkUTF8(c); err != nil {
			return err
		}
	}
	return nil
}

// Delete returns a copy of y without the node at p. Properties are
// removed and array elements are spliced out. If there is nothing at p,
// the copy is returned unchanged.
func (y *Node) Delete(p Path) *Node {
	res := y.Clone()
	if len(p) == 0 {
		return res
	}
	owner := res.walk(p[:len(p)-1])
	if owner == nil {
		return res
	}
	last := p[len(p)-1]
	c := owner.child(last)
	if c == nil || c.Tombstone {
		return res
	}
	Build(owner).Remove(last)
	return res
}

// Unset returns a copy of y in which the property at p is tombstoned, so
// that it reads as absent and is written as -name. When there is no such
// property a tombstone is created, along with any missing parents.
// Array elements cannot carry a tombstone; for a path ending in an index,
// Unset is Delete.
func (y *Node) Unset(p Path) *Node {
	if len(p) == 0 {
		return y.Clone()
	}
	last := p[len(p)-1]
	if last.IsIndex {
		return y.Delete(p)
	}
	res := y.Clone()
	seg, owner := Build(res).Reach(p)
	c := owner.child(seg)
	if c == nil {
		c = &Node{}
		Build(owner).Put(seg, c)
	}
	c.Tombstone = true
	return res
}

// walk follows p structurally, without following references, and returns
// nil if p leads through a reference or a tombstone.
func (y *Node) walk(p Path) *Node {
	cur := y
	for _, seg := range p {
		if cur.Type == RefType || cur.Tombstone {
			return nil
		}
		cur = cur.child(seg)
		if cur == nil {
			return nil
		}
	}
	if cur.Type == RefType || cur.Tombstone {
		return nil
	}
	return cur
}
