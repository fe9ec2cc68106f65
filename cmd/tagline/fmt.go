package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/libdiff"
)

func fmtMain(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Diff && cfg.Check {
		return fmt.Errorf("%w: -d and -l are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	differs := false
	for _, file := range args {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		node, err := decode(cfg.inFormat(), file, d)
		if err != nil {
			return err
		}
		if !cfg.Diff && !cfg.Check {
			if err := cfg.write(cc.Out, node); err != nil {
				return err
			}
			continue
		}
		canon, err := canonical(node)
		if err != nil {
			return err
		}
		if canon == string(d) {
			continue
		}
		differs = true
		if cfg.Check {
			fmt.Fprintln(cc.Out, file)
			continue
		}
		fmt.Fprintf(cc.Out, "--- %s\n+++ %s (canonical)\n", file, file)
		fmt.Fprint(cc.Out, libdiff.Lines(string(d), canon, cfg.useColor(cc.Out)))
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// canonical returns the tagline form of node, preserving its prefix.
func canonical(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
