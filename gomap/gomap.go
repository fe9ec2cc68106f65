// Package gomap maps trees to and from Go values, through their JSON
// projection. Struct fields follow encoding/json tags; a property with
// both a value and properties maps to an object holding the value under
// ir.ValueKey.
package gomap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/parse"
)

var ErrMap = errors.New("gomap error")

// Load parses tagline source and decodes it into p.
func Load(src string, p any) error {
	node, diags := parse.Parse(src)
	if err := diags.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrMap, err)
	}
	return Decode(node, p)
}

// Decode decodes y into p as json.Unmarshal would decode its projection.
func Decode(y *ir.Node, p any) error {
	d, err := MarshalJSON(y)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(d, p); err != nil {
		return fmt.Errorf("%w: %w", ErrMap, err)
	}
	return nil
}

// Encode builds a tree from v as json.Marshal would encode it. v must
// encode as an object.
func Encode(v any) (*ir.Node, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMap, err)
	}
	res, err := UnmarshalJSON(d)
	if err != nil {
		return nil, err
	}
	if res.HasValue() {
		return nil, fmt.Errorf("%w: %T does not encode as an object", ErrMap, v)
	}
	return res, nil
}

// MarshalJSON returns the compact JSON projection of y. A root with no
// properties marshals as an empty object.
func MarshalJSON(y *ir.Node) ([]byte, error) {
	v := ir.ToAny(y)
	if v == nil && y.Parent == nil {
		v = map[string]any{}
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMap, err)
	}
	return d, nil
}

// UnmarshalJSON builds a tree from JSON, keeping numbers as written.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMap, err)
	}
	res, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMap, err)
	}
	return res, nil
}
