package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: tagline/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: tagline/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tagline").
		WithSynopsis("tagline [opts] command [opts]").
		WithDescription("tagline is a tool for working with tagline annotations.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return taglineMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			UnsetCommand(cfg),
			RmCommand(cfg),
			CheckCommand(cfg),
			EvalCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg),
			ReplCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-d] [-l] [files]").
		WithDescription("write annotations in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtMain(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the node at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set <path> <value> [files]").
		WithDescription("set the value at a path, value written as in an annotation").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func UnsetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnsetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Unset, "unset").
		WithSynopsis("unset [-r] <path> [files]").
		WithDescription("tombstone the property at a path, or with -r remove it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unset(cfg, cc, args)
		})
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnsetConfig{MainConfig: mainCfg, Remove: true}
	return cli.NewCommandAt(&cfg.Unset, "rm").
		WithSynopsis("rm <path> [files]").
		WithDescription("remove the property or array element at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return unset(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-s schema-file | -n name] [files]").
		WithDescription("validate annotations, and with a schema validate them against it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval <expr> [files]").
		WithDescription(evalDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression over annotations.

The properties of the root are variables, and get, has, tombstoned and
text take a path:

  tagline eval 'port > 1024 && has("owner.team")' svc.tl`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-m] [-s] <patchfile> [files]").
		WithDescription("apply a JSON patch, or with -m a JSON merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchMain(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("print the JSON merge patch taking a to b").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Repl, "repl").
		WithAliases("r").
		WithSynopsis("repl [-history file] [file]").
		WithDescription(replDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return repl(cfg, cc, args)
		})
}

const replDescription = `interactively build a tree.

Each line is parsed as annotation statements extending the current tree.
Lines starting with ':' are commands:

  :show        print the tree
  :json        print the tree as JSON
  :get <path>  print the node at path
  :eval <expr> evaluate an expression over the tree
  :reset       start from an empty tree
  :quit        exit`
