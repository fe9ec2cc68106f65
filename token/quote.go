package token

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// IsIdent reports whether v can be written without quotes, that is whether
// it is a non-empty run of [0-9A-Za-z_].
func IsIdent(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if !isIdentByte(v[i]) {
			return false
		}
	}
	return true
}

func isIdentByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '_':
		return true
	}
	return false
}

// IsNumber reports whether v is a complete number literal:
// -?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?
func IsNumber(v string) bool {
	return v != "" && scanNumber([]byte(v)) == len(v)
}

// scanNumber returns the length of the number literal prefix of d, or 0.
func scanNumber(d []byte) int {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	j := digits(d, i)
	if j == i {
		return 0
	}
	i = j
	if i+1 < len(d) && d[i] == '.' {
		if j := digits(d, i+1); j > i+1 {
			i = j
		}
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		k := i + 1
		if k < len(d) && (d[k] == '+' || d[k] == '-') {
			k++
		}
		if j := digits(d, k); j > k {
			i = j
		}
	}
	return i
}

func digits(d []byte, i int) int {
	for i < len(d) && '0' <= d[i] && d[i] <= '9' {
		i++
	}
	return i
}

// QuoteName returns v in backticks, escaping '\' and '`'.
func QuoteName(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('`')
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\\', '`':
			b.WriteByte('\\')
		}
		b.WriteByte(v[i])
	}
	b.WriteByte('`')
	return b.String()
}

// Name returns v bare when it is an identifier and backtick quoted
// otherwise.
func Name(v string) string {
	if IsIdent(v) {
		return v
	}
	return QuoteName(v)
}

// QuoteString returns v in double quotes escaping only '\', '"' and
// newline. Other control characters are written literally.
func QuoteString(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// String returns v bare when it is an identifier which does not read as
// a number, and double quoted otherwise.
func String(v string) string {
	if IsIdent(v) && !IsNumber(v) {
		return v
	}
	return QuoteString(v)
}

// unquote decodes the body of a quoted string whose delimiter is q. d
// starts just after the opening delimiter. It returns the decoded string
// and the number of bytes consumed including the closing delimiter.
func unquote(d []byte, q byte) (string, int, error) {
	var b strings.Builder
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c == q:
			return b.String(), i + 1, nil
		case c == '\\':
			if i+1 >= len(d) {
				return "", i, ErrUnterminated
			}
			n, err := unescape(&b, d[i+1:], q)
			if err != nil {
				return "", i, err
			}
			i += 1 + n
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return "", i, ErrBadUTF8
			}
			b.WriteRune(r)
			i += sz
		}
	}
	return "", i, ErrUnterminated
}

func unescape(b *strings.Builder, d []byte, q byte) (int, error) {
	if q == '`' {
		// names only know how to escape the delimiter and backslash.
		b.WriteByte(d[0])
		return 1, nil
	}
	switch d[0] {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case '\\', '/', '"', '\'':
		b.WriteByte(d[0])
	case 'u':
		if len(d) < 5 {
			return 0, ErrBadUnicode
		}
		r, err := strconv.ParseUint(string(d[1:5]), 16, 32)
		if err != nil {
			return 0, ErrBadUnicode
		}
		b.WriteRune(rune(r))
		return 5, nil
	default:
		return 0, ErrBadEscape
	}
	return 1, nil
}
