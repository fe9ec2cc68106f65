package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"
	"unicode/utf8"
)

// ValueKey is the map key under which ToAny places the value of a node
// which also has properties.
const ValueKey = "="

// ToAny projects y onto plain Go values: nil, string, json.Number, bool,
// time.Time, []any and map[string]any. References project their target
// and tombstones are dropped. A node with both a value and properties
// becomes a map holding the value under ValueKey. A reference back to a
// node which is being projected projects as nil.
func ToAny(y *Node) any {
	return toAny(y, map[*Node]bool{})
}

// toAny projects y; active holds the nodes on the current projection
// stack.
func toAny(y *Node, active map[*Node]bool) any {
	y = y.Resolve()
	if y == nil || y.Tombstone || active[y] {
		return nil
	}
	active[y] = true
	defer delete(active, y)
	var v any
	switch y.Type {
	case StringType:
		v = y.Text
	case NumberType:
		v = json.Number(y.Text)
	case BoolType:
		v = y.Text == "true"
	case DateType:
		v = y.Date
	case ArrayType:
		elts := make([]any, len(y.Elements))
		for i, e := range y.Elements {
			elts[i] = toAny(e, active)
		}
		v = elts
	}
	if y.Props.visible() == 0 {
		return v
	}
	m := make(map[string]any, y.Props.Len()+1)
	for k, c := range y.Entries() {
		m[k] = toAny(c, active)
	}
	if y.HasValue() {
		m[ValueKey] = v
	}
	return m
}

// FromAny builds a tree from the values produced by ToAny or by decoding
// JSON or YAML. Map keys are sorted, since Go maps carry no order.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case map[string]any:
		res := New()
		if val, ok := x[ValueKey]; ok {
			vn, err := FromAny(val)
			if err != nil {
				return nil, err
			}
			if vn.Props.Len() != 0 {
				return nil, fmt.Errorf("%w: %q holds a map", ErrUnsupportedValue, ValueKey)
			}
			Build(res).SetValue(vn)
		}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if k == ValueKey {
				continue
			}
			if !utf8.ValidString(k) {
				return nil, fmt.Errorf("%w: name %q is not UTF-8", ErrUnsupportedValue, k)
			}
			c, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", Field(k), err)
			}
			Build(res).Put(Field(k), c)
		}
		return res, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = e
		}
		return FromAny(m)
	case []any:
		elts := make([]*Node, len(x))
		for i, e := range x {
			c, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			elts[i] = c
		}
		return FromSlice(elts), nil
	case json.Number:
		if _, err := ParseNumber(string(x)); err != nil {
			return nil, err
		}
		return FromNumber(string(x)), nil
	case uint64:
		return FromNumber(strconv.FormatUint(x, 10)), nil
	case time.Time, string, bool, nil, int, int64, float64, float32, int32, uint32:
		return valueNode(x)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
