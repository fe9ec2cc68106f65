package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/format"
	"github.com/signadot/tagline/gomap"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/parse"
	"github.com/signadot/tagline/token"
)

// diagError carries the diagnostics of one input.
type diagError struct {
	name  string
	diags token.Diagnostics
}

func (e *diagError) Error() string {
	lines := make([]string, len(e.diags))
	for i, d := range e.diags {
		lines[i] = fmt.Sprintf("%s:%d:%d: %s (%s)", e.name, d.Line+1, d.Offset+1, d.Message, d.Code)
	}
	return strings.Join(lines, "\n")
}

func (e *diagError) Unwrap() error {
	return parse.ErrParse
}

func readFile(cc *cli.Context, file string) ([]byte, error) {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	return d, nil
}

// decode reads one input in the configured input format.
func decode(f format.Format, name string, d []byte) (*ir.Node, error) {
	var (
		node *ir.Node
		err  error
	)
	switch f {
	case format.JSONFormat:
		node, err = gomap.UnmarshalJSON(d)
	case format.YAMLFormat:
		var v any
		if err = yaml.Unmarshal(d, &v); err == nil {
			node, err = ir.FromAny(v)
		}
	default:
		node, diags := parse.FromLines(splitLines(string(d)))
		if len(diags) != 0 {
			return nil, &diagError{name: name, diags: diags}
		}
		return node, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	if node.HasValue() {
		return nil, fmt.Errorf("error decoding %s: %w", name, encode.ErrRootValue)
	}
	return node, nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// eachInput calls f with each named input, stdin when there are none.
func (cfg *MainConfig) eachInput(cc *cli.Context, files []string, f func(name string, node *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var errs []error
	for _, file := range files {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		node, err := decode(cfg.inFormat(), file, d)
		if err != nil {
			var de *diagError
			if errors.As(err, &de) {
				errs = append(errs, err)
				continue
			}
			return err
		}
		if err := f(file, node); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return errors.Join(errs...)
}

func (cfg *MainConfig) write(w io.Writer, node *ir.Node) error {
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
