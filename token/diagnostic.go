package token

import (
	"errors"
	"fmt"
)

const (
	CodeSyntax       = "syntax-error"
	CodeUnterminated = "unterminated"
	CodeBadEscape    = "bad-escape"
	CodeBadDate      = "bad-date"
	CodeBadReference = "bad-reference"
)

// Diagnostic describes a problem found while reading annotation source.
// Line and Offset are zero based.
type Diagnostic struct {
	Message string
	Line    int
	Offset  int
	Code    string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s (%s)", d.Line, d.Offset, d.Message, d.Code)
}

type Diagnostics []Diagnostic

// Err returns nil when there are no diagnostics and otherwise all of
// them joined into one error.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	errs := make([]error, len(ds))
	for i := range ds {
		errs[i] = ds[i]
	}
	return errors.Join(errs...)
}

// Shift returns a copy of ds with line numbers moved down by lines.
func (ds Diagnostics) Shift(lines, offset int) Diagnostics {
	if len(ds) == 0 {
		return nil
	}
	res := make(Diagnostics, len(ds))
	for i, d := range ds {
		if d.Line == 0 {
			d.Offset += offset
		}
		d.Line += lines
		res[i] = d
	}
	return res
}
