// Package format names the output formats a tree can be written in.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TaglineFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":       TaglineFormat,
		"tagline": TaglineFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TaglineFormat:
		return []byte("tagline"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	v, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Format) IsJSON() bool    { return f == JSONFormat }
func (f Format) IsTagline() bool { return f == TaglineFormat }
func (f Format) IsYAML() bool    { return f == YAMLFormat }

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TaglineFormat, YAMLFormat, JSONFormat}
}
