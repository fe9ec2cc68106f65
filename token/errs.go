package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrBadDate      = errors.New("bad date")
	ErrBadAt        = errors.New("bad @ literal")
	ErrBadReference = errors.New("bad reference")
	ErrUnexpected   = errors.New("unexpected character")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Diagnostic converts the error into a Diagnostic at its position.
func (e *TokenizeErr) Diagnostic() Diagnostic {
	line, col := e.Pos.LineCol()
	return Diagnostic{
		Message: e.Err.Error(),
		Line:    line,
		Offset:  col,
		Code:    codeFor(e.Err),
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrBadReference):
		return CodeBadReference
	case errors.Is(err, ErrUnterminated):
		return CodeUnterminated
	case errors.Is(err, ErrBadEscape), errors.Is(err, ErrBadUnicode):
		return CodeBadEscape
	case errors.Is(err, ErrBadDate):
		return CodeBadDate
	default:
		return CodeSyntax
	}
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
