package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

		"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/patch"
)

func patchMain(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	var p []byte
	if cfg.String {
		p = []byte(args[0])
	} else {
		p, err = readFile(cc, args[0])
		if err != nil {
			return err
		}
	}
	return cfg.eachInput(cc, args[1:], func(name string, root *ir.Node) error {
		var (
			res *ir.Node
			err error
		)
		if cfg.Merge {
			res, err = patch.Merge(root, p)
		} else {
			res, err = patch.Apply(root, p)
		}
		if err != nil {
			return err
		}
		return cfg.write(cc.Out, res)
	})
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	var nodes [2]*ir.Node
	for i, file := range args {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		nodes[i], err = decode(cfg.inFormat(), file, d)
		if err != nil {
			return err
		}
	}
	d, err := patch.Diff(nodes[0], nodes[1])
	if err != nil {
		return err
	}
	if string(d) == "{}" {
		return nil
	}
	// merge patches mark removals with null, which only JSON and YAML
	// carry.
	if cfg.outFormat().IsYAML() {
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return err
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		cc.Out.Write(out)
	} else {
		fmt.Fprintf(cc.Out, "%s\n", d)
	}
	return cli.ExitCodeErr(1)
}
