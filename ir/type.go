package ir

import "fmt"

type Type int

const (
	BareType Type = iota
	StringType
	NumberType
	BoolType
	DateType
	ArrayType
	RefType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		BareType:   "Bare",
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Bool",
		DateType:   "Date",
		ArrayType:  "Array",
		RefType:    "Ref",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Bare":   BareType,
		"String": StringType,
		"Number": NumberType,
		"Bool":   BoolType,
		"Date":   DateType,
		"Array":  ArrayType,
		"Ref":    RefType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		BareType,
		StringType,
		NumberType,
		BoolType,
		DateType,
		ArrayType,
		RefType,
	}
}

// IsScalar reports whether nodes of type t carry their value in Text.
func (t Type) IsScalar() bool {
	switch t {
	case StringType, NumberType, BoolType, DateType:
		return true
	default:
		return false
	}
}
