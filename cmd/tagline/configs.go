package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	T bool `cli:"name=t aliases=tagline desc='do i/o in tagline'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() format.Format {
	switch {
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.TaglineFormat
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return cfg.flagFormat()
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.flagFormat()
}

// useColor reports whether output to w is coloured: -color when given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d desc='show the difference to the canonical form instead'"`
	Check bool `cli:"name=l desc='list files whose form differs from the canonical one'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type UnsetConfig struct {
	*MainConfig
	Remove bool `cli:"name=r desc='remove rather than tombstone'"`

	Unset *cli.Command
}

type CheckConfig struct {
	*MainConfig
	SchemaFile string `cli:"name=s aliases=schema desc='schema file'"`
	SchemaName string `cli:"name=n aliases=name desc='name of a registered schema'"`

	Check *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m desc='patch is a JSON merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ReplConfig struct {
	*MainConfig
	History string `cli:"name=history desc='history file'"`

	Repl *cli.Command
}
