package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/tagline/token"
)

// Segment is one step of a Path: a property name or an array index.
type Segment struct {
	Field   string
	Index   int
	IsIndex bool
}

func Field(name string) Segment {
	return Segment{Field: name}
}

func Index(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return token.Name(s.Field)
}

// Path addresses a node relative to another node.
type Path []Segment

// P builds a Path from strings (property names) and ints (array indices).
// It panics on any other argument type.
func P(segs ...any) Path {
	res := make(Path, len(segs))
	for i, s := range segs {
		switch x := s.(type) {
		case string:
			res[i] = Field(x)
		case int:
			res[i] = Index(x)
		case Segment:
			res[i] = x
		default:
			panic(fmt.Sprintf("path segment of type %T", s))
		}
	}
	return res
}

// String returns the path in kinded form, e.g. a.b[0].`odd name`.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if !s.IsIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Strings returns each segment as a plain string, indices in decimal.
func (p Path) Strings() []string {
	res := make([]string, len(p))
	for i, s := range p {
		if s.IsIndex {
			res[i] = strconv.Itoa(s.Index)
			continue
		}
		res[i] = s.Field
	}
	return res
}

func (p Path) Append(segs ...Segment) Path {
	res := make(Path, 0, len(p)+len(segs))
	res = append(res, p...)
	return append(res, segs...)
}

// ParsePath parses the kinded form produced by Path.String. Dotted numeric
// segments such as "a.0" are property names; indices are written "[0]".
func ParsePath(p string) (Path, error) {
	var res Path
	frag := p
	for len(frag) > 0 {
		var (
			seg Segment
			err error
		)
		switch frag[0] {
		case '[':
			i := strings.IndexByte(frag, ']')
			if i == -1 {
				return nil, fmt.Errorf("%w: expected '[' <index> ']' in %q", ErrBadPath, p)
			}
			index, perr := parseIndex(frag[1:i])
			if perr != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadPath, perr)
			}
			seg = Index(index)
			frag = frag[i+1:]
		case '.':
			if len(res) == 0 {
				return nil, fmt.Errorf("%w: leading '.' in %q", ErrBadPath, p)
			}
			frag = frag[1:]
			fallthrough
		default:
			seg.Field, frag, err = parseField(frag)
			if err != nil {
				return nil, fmt.Errorf("%w: %w in %q", ErrBadPath, err, p)
			}
		}
		res = append(res, seg)
		if len(frag) > 0 && frag[0] != '.' && frag[0] != '[' {
			return nil, fmt.Errorf("%w: expected '.' or '[' in %q", ErrBadPath, p)
		}
	}
	return res, nil
}

func parseIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(u64), nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '`' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			i = len(frag)
		}
		if !token.IsIdent(frag[:i]) {
			return "", "", fmt.Errorf("bad field %q", frag[:i])
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case escaped:
			escaped = false
			res = append(res, c)
		case c == '\\':
			escaped = true
		case c == '`':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for '`'")
}

// Ref is the payload of a reference node: walk Up parents from the
// reference node, then descend Path.
type Ref struct {
	Up   int
	Path Path
}

// String renders the reference with one '^' per hop.
func (r Ref) String() string {
	return strings.Repeat("^", r.Up) + r.Path.String()
}
