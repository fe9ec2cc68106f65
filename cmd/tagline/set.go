package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/parse"
	"github.com/signadot/tagline/token"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	p, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	value := args[1]
	return cfg.eachInput(cc, args[2:], func(name string, root *ir.Node) error {
		res, err := setValue(root, p, value)
		if err != nil {
			return err
		}
		return cfg.write(cc.Out, res)
	})
}

// setValue sets the value written in annotation syntax at p. Property
// paths go through the interpreter, so references in the value are read
// relative to p; paths with indices support plain values only.
func setValue(root *ir.Node, p ir.Path, value string) (*ir.Node, error) {
	if src, ok := assignment(p, value); ok {
		res, diags := parse.Parse(src, parse.Extending(root))
		if err := diags.Err(); err != nil {
			return nil, fmt.Errorf("bad value %q: %w", value, err)
		}
		res.Prefix = root.Prefix
		return res, nil
	}
	v, diags := parse.Parse("# v = " + value)
	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("bad value %q: %w", value, err)
	}
	vn := v.Props.Get("v")
	if hasRef(vn) {
		return nil, fmt.Errorf("references cannot be set at %s", p)
	}
	return root.Set(p, vn)
}

func assignment(p ir.Path, value string) (string, bool) {
	names := make([]string, len(p))
	for i, seg := range p {
		if seg.IsIndex {
			return "", false
		}
		names[i] = token.Name(seg.Field)
	}
	return "# " + strings.Join(names, ".") + " = " + value, true
}

func hasRef(n *ir.Node) bool {
	if n.Type == ir.RefType {
		return true
	}
	for _, e := range n.Elements {
		if hasRef(e) {
			return true
		}
	}
	for _, c := range n.Props.All() {
		if hasRef(c) {
			return true
		}
	}
	return false
}

func unset(cfg *UnsetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unset.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: unset requires a path", cli.ErrUsage)
	}
	p, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", cli.ErrUsage)
	}
	return cfg.eachInput(cc, args[1:], func(name string, root *ir.Node) error {
		if cfg.Remove {
			return cfg.write(cc.Out, root.Delete(p))
		}
		return cfg.write(cc.Out, root.Unset(p))
	})
}
