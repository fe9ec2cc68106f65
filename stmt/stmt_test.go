package stmt

import (
	"testing"

	"github.com/signadot/tagline/ir"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		s    Statement
		want string
	}{
		{
			name: "set",
			s:    Statement{Kind: SetEq, Path: ir.P("a", "b"), Value: Scalar(ir.FromString("x"))},
			want: `setEq a.b String("x")`,
		},
		{
			name: "array",
			s: Statement{Kind: SetEq, Path: ir.P("a"), Value: Array(
				Element{Value: Scalar(ir.FromNumber("1"))},
				Element{Properties: []Statement{{Kind: Define, Path: ir.P("b")}}},
				Element{Value: Ref(1, ir.P("c")), Properties: []Statement{}},
			)},
			want: `setEq a [Number("1"), {1}, $(^c){0}]`,
		},
		{
			name: "props",
			s: Statement{
				Kind:          UpdateProperties,
				Path:          ir.P("a"),
				PreserveValue: true,
				Properties:    []Statement{{Kind: ClearAll}, {Kind: Define, Path: ir.P("b"), Deleted: true}},
			},
			want: "updateProperties a +value { clearAll define b deleted }",
		},
		{
			name: "unknown kind",
			s:    Statement{Kind: Kind(9)},
			want: "Kind(9)",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.String(); got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}
