package token

import (
	"fmt"
)

type TokenType int

const (
	TIdent TokenType = iota
	TNumber
	TString
	TName
	TTrue
	TFalse
	TDate
	TRef
	TEq
	TColon
	TDot
	TMinus
	TEllipsis
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:    "TIdent",
		TNumber:   "TNumber",
		TString:   "TString",
		TName:     "TName",
		TTrue:     "TTrue",
		TFalse:    "TFalse",
		TDate:     "TDate",
		TRef:      "TRef",
		TEq:       "TEq",
		TColon:    "TColon",
		TDot:      "TDot",
		TMinus:    "TMinus",
		TEllipsis: "TEllipsis",
		TComma:    "TComma",
		TLCurl:    "TLCurl",
		TRCurl:    "TRCurl",
		TLSquare:  "TLSquare",
		TRSquare:  "TRSquare",
	}[t]
}

// Token is one lexical element. Bytes holds the raw source text; Value
// holds the decoded text for strings and backtick names, the literal
// without '@' for dates, and the text between the parentheses for
// references.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
	Value string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the decoded text of the token.
func (t *Token) String() string {
	switch t.Type {
	case TString, TName, TDate, TRef:
		return t.Value
	default:
		return string(t.Bytes)
	}
}

// End is the offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}
