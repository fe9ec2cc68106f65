package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/format"
	"github.com/signadot/tagline/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return cfg.eachInput(cc, args[1:], func(name string, root *ir.Node) error {
		n := root.Find(p)
		if n == nil {
			return fmt.Errorf("nothing at %s", p)
		}
		return cfg.writeNode(cc.Out, n)
	})
}

// writeNode writes a subtree. Trees holding a value have no tagline form
// and are written as their scalar text or as JSON.
func (cfg *MainConfig) writeNode(w io.Writer, n *ir.Node) error {
	if !n.HasValue() || !cfg.outFormat().IsTagline() {
		return cfg.write(w, n)
	}
	if n.Type.IsScalar() && n.Props.Len() == 0 {
		_, err := fmt.Fprintln(w, n.Text)
		return err
	}
	return encode.Encode(n, w, encode.EncodeFormat(format.JSONFormat))
}
