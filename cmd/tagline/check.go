package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/tagline/format"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/schema"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.SchemaFile != "" && cfg.SchemaName != "" {
		return fmt.Errorf("%w: -s and -n are exclusive", cli.ErrUsage)
	}
	var s *schema.Schema
	switch {
	case cfg.SchemaFile != "":
		s, err = loadSchema(cc, cfg.SchemaFile)
		if err != nil {
			return err
		}
	case cfg.SchemaName != "":
		s = schema.Lookup(cfg.SchemaName)
		if s == nil {
			return fmt.Errorf("%w: no schema named %q", cli.ErrUsage, cfg.SchemaName)
		}
	}
	red := fmt.Sprintf
	if cfg.useColor(cc.Out) {
		red = color.New(color.FgRed).Sprintf
	}
	failed := false
	err = cfg.eachInput(cc, args, func(name string, root *ir.Node) error {
		if s == nil {
			return nil
		}
		for _, e := range s.Validate(root) {
			failed = true
			fmt.Fprintln(cc.Out, red("%s: %s", name, e))
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(cc.Out, red("%s", err))
		failed = true
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// loadSchema reads a tagline schema file and checks it against the
// schema language itself.
func loadSchema(cc *cli.Context, file string) (*schema.Schema, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return nil, err
	}
	root, err := decode(format.TaglineFormat, file, d)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", file, err)
	}
	if errs := schema.Lookup(schema.MetaName).Validate(root); len(errs) != 0 {
		all := make([]error, len(errs))
		for i, e := range errs {
			all[i] = e
		}
		return nil, fmt.Errorf("invalid schema %s: %w", file, errors.Join(all...))
	}
	return schema.New(file, root), nil
}
