// Package patch applies JSON patches (RFC 6902) and JSON merge patches
// (RFC 7386) to trees, through their JSON projection.
//
// Tombstones do not survive a patch, since the projection drops them.
// References are replaced by copies of their targets for the same
// reason.
package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/tagline/debug"
	"github.com/signadot/tagline/gomap"
	"github.com/signadot/tagline/ir"
)

var ErrPatch = errors.New("patch error")

// Apply applies the RFC 6902 patch in ops to root.
func Apply(root *ir.Node, ops []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return through(root, func(d []byte) ([]byte, error) {
		return p.Apply(d)
	})
}

// Merge applies the RFC 7386 merge patch in m to root.
func Merge(root *ir.Node, m []byte) (*ir.Node, error) {
	return through(root, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, m)
	})
}

// Diff returns the merge patch taking a to b.
func Diff(a, b *ir.Node) ([]byte, error) {
	da, err := gomap.MarshalJSON(a)
	if err != nil {
		return nil, err
	}
	db, err := gomap.MarshalJSON(b)
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.CreateMergePatch(da, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return d, nil
}

func through(root *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	d, err := gomap.MarshalJSON(root)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Exec() {
		debug.Logf("patch %s -> %s\n", d, out)
	}
	res, err := gomap.UnmarshalJSON(out)
	if err != nil {
		return nil, err
	}
	if res.HasValue() {
		return nil, fmt.Errorf("%w: result is not an object", ErrPatch)
	}
	res.Prefix = root.Prefix
	return res, nil
}
