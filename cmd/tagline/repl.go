package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/scott-cotton/cli"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/format"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/parse"
	"github.com/signadot/tagline/query"
)

const historyFile = ".tagline_history"

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		return err
	}
	root := ir.New()
	if len(args) > 0 {
		d, err := readFile(cc, args[0])
		if err != nil {
			return err
		}
		root, err = decode(cfg.inFormat(), args[0], d)
		if err != nil {
			return err
		}
	}
	hist := cfg.History
	if hist == "" {
		home, _ := os.UserHomeDir()
		hist = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(hist); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(hist); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	s := &session{cfg: cfg.MainConfig, out: cc.Out, root: root}
	if cfg.useColor(cc.Out) {
		s.red = color.New(color.FgRed).SprintFunc()
	}
	for {
		line, err := ln.Prompt("tagline> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(cc.Out)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if s.do(line) {
			return nil
		}
	}
}

// session is the state of a repl, kept apart from the line editor.
type session struct {
	cfg  *MainConfig
	out  io.Writer
	root *ir.Node
	red  func(...any) string
}

func (s *session) errorf(msg string, args ...any) {
	m := fmt.Sprintf(msg, args...)
	if s.red != nil {
		m = s.red(m)
	}
	fmt.Fprintln(s.out, m)
}

// do runs one line and reports whether the session is over.
func (s *session) do(line string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		next, diags := parse.Parse(line, parse.Extending(s.root))
		for _, d := range diags {
			s.errorf("%d: %s (%s)", d.Offset+1, d.Message, d.Code)
		}
		if len(diags) == 0 {
			s.root = next
		}
		return false
	}
	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "q", "quit":
		return true
	case "show":
		if err := s.cfg.write(s.out, s.root); err != nil {
			s.errorf("%s", err)
		}
	case "json":
		if err := encode.Encode(s.root, s.out, encode.EncodeFormat(format.JSONFormat)); err != nil {
			s.errorf("%s", err)
		}
	case "get":
		p, err := ir.ParsePath(arg)
		if err != nil {
			s.errorf("%s", err)
			break
		}
		n := s.root.Find(p)
		if n == nil {
			s.errorf("nothing at %s", p)
			break
		}
		if err := s.cfg.writeNode(s.out, n); err != nil {
			s.errorf("%s", err)
		}
	case "eval":
		v, err := query.Eval(s.root, arg)
		if err != nil {
			s.errorf("%s", err)
			break
		}
		fmt.Fprintf(s.out, "%v\n", v)
	case "reset":
		s.root = ir.New()
	default:
		s.errorf("unknown command %q, try :show :json :get :eval :reset :quit", cmd)
	}
	return false
}
