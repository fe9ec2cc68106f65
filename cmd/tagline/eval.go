package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/query"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args[1:], func(name string, root *ir.Node) error {
		v, err := q.Run(root)
		if err != nil {
			return err
		}
		return writeJSON(cc, v)
	})
}

func writeJSON(cc *cli.Context, v any) error {
	enc := json.NewEncoder(cc.Out)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
