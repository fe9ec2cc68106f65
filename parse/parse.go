package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/tagline/debug"
	"github.com/signadot/tagline/interp"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/token"
)

// Parse reads one annotation. See the package documentation.
func Parse(src string, opts ...ParseOption) (*ir.Node, token.Diagnostics) {
	return parse(src, getOpts(opts))
}

// MustParse is like Parse but panics on any diagnostic.
func MustParse(src string, opts ...ParseOption) *ir.Node {
	res, diags := Parse(src, opts...)
	if err := diags.Err(); err != nil {
		panic(fmt.Errorf("%w: %w", ErrParse, err))
	}
	return res
}

// FromLines reads lines in order, each line extending the tree built by
// the previous ones. Diagnostic line numbers are offset by the index of
// the line they come from.
func FromLines(lines []string, opts ...ParseOption) (*ir.Node, token.Diagnostics) {
	o := getOpts(opts)
	var diags token.Diagnostics
	for i, ln := range lines {
		res, ds := parse(ln, o)
		diags = append(diags, ds.Shift(i, 0)...)
		o.extending = res
	}
	if o.extending == nil {
		return ir.New(), diags
	}
	if len(lines) == 0 {
		return o.extending.Clone(), diags
	}
	return o.extending, diags
}

func parse(src string, o *parseOpts) (*ir.Node, token.Diagnostics) {
	prefix, off := SplitPrefix(src)
	body := src[off:]
	stmts, diags := o.grammar.Statements(body)
	if debug.Parse() {
		debug.Logf("parse %q: %d statements %d diagnostics\n", body, len(stmts), len(diags))
		for i := range stmts {
			debug.Logf("\t%s\n", &stmts[i])
		}
	}
	if len(diags) != 0 {
		return fallback(o.extending), diags.Shift(0, off)
	}
	res := interp.Execute(stmts, o.extending)
	// a marker without a space swallows the whole line and is not kept.
	if strings.HasSuffix(prefix, " ") {
		res.Prefix = prefix
	}
	return res, nil
}

func fallback(extending *ir.Node) *ir.Node {
	if extending == nil {
		return ir.New()
	}
	return extending.Clone()
}

// SplitPrefix finds the marker at the start of src. If src, after
// leading blanks, starts with '#', the marker runs up to and including
// the first space; when there is no space the marker is all of src. It
// returns the marker and the offset in src at which the annotation body
// starts.
func SplitPrefix(src string) (string, int) {
	lead := len(src) - len(strings.TrimLeft(src, " \t"))
	if lead == len(src) || src[lead] != '#' {
		return "", 0
	}
	i := strings.IndexByte(src[lead:], ' ')
	if i == -1 {
		return src[lead:], len(src)
	}
	return src[lead : lead+i+1], lead + i + 1
}
