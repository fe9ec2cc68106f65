package token

import (
	"bytes"
	"fmt"
)

// Tokenize splits d into tokens. On error the tokens read so far are
// returned together with a *TokenizeErr.
func Tokenize(dst []Token, d []byte) ([]Token, error) {
	posDoc := NewPosDoc(d)
	i := 0
	for i < len(d) {
		c := d[i]
		switch c {
		case ' ', '\t', '\r', '\n':
			i++
			continue
		}
		start := i
		tok := Token{Pos: posDoc.Pos(i)}
		switch c {
		case '{':
			tok.Type = TLCurl
			i++
		case '}':
			tok.Type = TRCurl
			i++
		case '[':
			tok.Type = TLSquare
			i++
		case ']':
			tok.Type = TRSquare
			i++
		case ',':
			tok.Type = TComma
			i++
		case '=':
			tok.Type = TEq
			i++
		case ':':
			tok.Type = TColon
			i++
		case '-':
			tok.Type = TMinus
			i++
		case '.':
			if bytes.HasPrefix(d[i:], []byte("...")) {
				tok.Type = TEllipsis
				i += 3
			} else {
				tok.Type = TDot
				i++
			}
		case '"', '\'':
			v, n, err := unquote(d[i+1:], c)
			if err != nil {
				return dst, NewTokenizeErr(err, posDoc.Pos(i+1+n))
			}
			tok.Type = TString
			tok.Value = v
			i += 1 + n
		case '`':
			v, n, err := unquote(d[i+1:], c)
			if err != nil {
				return dst, NewTokenizeErr(err, posDoc.Pos(i+1+n))
			}
			tok.Type = TName
			tok.Value = v
			i += 1 + n
		case '@':
			n, err := tokenizeAt(&tok, d[i+1:])
			if err != nil {
				return dst, NewTokenizeErr(err, posDoc.Pos(i))
			}
			i += 1 + n
		case '$':
			n, err := tokenizeRef(&tok, d[i+1:])
			if err != nil {
				return dst, NewTokenizeErr(err, posDoc.Pos(i))
			}
			i += 1 + n
		default:
			if !isIdentByte(c) {
				return dst, UnexpectedErr(fmt.Sprintf("%q", c), posDoc.Pos(i))
			}
			tok.Type, i = tokenizeWord(d, i)
		}
		tok.Bytes = d[start:i]
		dst = append(dst, tok)
	}
	return dst, nil
}

// tokenizeWord reads an identifier or a number starting at i.
func tokenizeWord(d []byte, i int) (TokenType, int) {
	m := i
	for m < len(d) && isIdentByte(d[m]) {
		m++
	}
	n := i + scanNumber(d[i:])
	switch {
	case n == i:
		return TIdent, m
	case n == m:
		return TNumber, n
	case n > m && (n == len(d) || !isIdentByte(d[n])):
		return TNumber, n
	default:
		return TIdent, m
	}
}

func tokenizeAt(tok *Token, d []byte) (int, error) {
	for _, kw := range []struct {
		text string
		typ  TokenType
	}{{"true", TTrue}, {"false", TFalse}} {
		if bytes.HasPrefix(d, []byte(kw.text)) && (len(d) == len(kw.text) || !isIdentByte(d[len(kw.text)])) {
			tok.Type = kw.typ
			tok.Value = kw.text
			return len(kw.text), nil
		}
	}
	if len(d) == 0 || d[0] < '0' || d[0] > '9' {
		return 0, ErrBadAt
	}
	n := 0
	for n < len(d) && isDateByte(d[n]) {
		n++
	}
	v := string(d[:n])
	if _, err := ParseDate(v); err != nil {
		return 0, err
	}
	tok.Type = TDate
	tok.Value = v
	return n, nil
}

func isDateByte(c byte) bool {
	switch c {
	case '-', ':', '.', '+':
		return true
	}
	return isIdentByte(c)
}

func tokenizeRef(tok *Token, d []byte) (int, error) {
	if len(d) == 0 || d[0] != '(' {
		return 0, ErrBadReference
	}
	inName := false
	for i := 1; i < len(d); i++ {
		switch d[i] {
		case '\\':
			if inName {
				i++
			}
		case '`':
			inName = !inName
		case ')':
			if inName {
				continue
			}
			tok.Type = TRef
			tok.Value = string(d[1:i])
			return i + 1, nil
		case '\n':
			return 0, fmt.Errorf("%w: %w", ErrBadReference, ErrUnterminated)
		}
	}
	return 0, fmt.Errorf("%w: %w", ErrBadReference, ErrUnterminated)
}
