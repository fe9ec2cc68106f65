package ir

import (
	"errors"
)

var (
	ErrEmptyPath        = errors.New("empty path")
	ErrBadPath          = errors.New("bad path")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrBadNumber        = errors.New("bad number")
)
