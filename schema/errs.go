package schema

import (
	"fmt"
	"strings"
)

const (
	CodeMissingRequired = "missing-required"
	CodeWrongType       = "wrong-type"
	CodeUnknownProperty = "unknown-property"
	CodeInvalidSchema   = "invalid-schema"
)

// Error is one validation problem. Path leads from the data root to the
// property concerned; array indices appear in decimal.
type Error struct {
	Message string
	Path    []string
	Code    string
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s (%s)", strings.Join(e.Path, "."), e.Message, e.Code)
}
