package parse

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/stmt"
	"github.com/signadot/tagline/token"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "# \n"},
		{"#", "# \n"},
		{"#nospace", "# \n"},
		{"# a", "# a\n"},
		{"  # a = 1", "# a = 1\n"},
		{"#(docs) summary = \"hello there\"", "#(docs) summary = \"hello there\"\n"},
		{"## a", "## a\n"},
		{"a b", "# a b\n"},
		{"# a=1, b=2", "# a = 1 b = 2\n"},
		{"# `odd key` = 'single'", "# `odd key` = single\n"},
		{"# a.0.b", "# a.0.b\n"},
		{"# a.1.5 = x", "# a.1.5 = x\n"},
		{"# a = [1, 2,]", "# a = [1, 2]\n"},
		{"# a = []", "# a = []\n"},
		{"# s = \"line\\nbreak\"", "# s = \"line\\nbreak\"\n"},
		{"# s = \"\\u0041\"", "# s = A\n"},
		{"# d = @2024-01-15T10:30:00Z", "# d = @2024-01-15T10:30:00Z\n"},
		{"# n = 1.5e3 m = -0.25", "# n = 1.5e3 m = -0.25\n"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, diags := Parse(tc.in)
			if len(diags) != 0 {
				t.Fatal(diags.Err())
			}
			if s := encode.String(got); s != tc.want {
				t.Errorf("got %q want %q", s, tc.want)
			}
		})
	}
}

func TestParseTombstone(t *testing.T) {
	got := MustParse("x -x.y")
	want := ir.New().WithProp("x", ir.New().WithProp("y", &ir.Node{Tombstone: true}))
	if !ir.Equal(want, got) {
		t.Errorf("got %s", encode.String(got))
	}
}

func TestParsePreserveValue(t *testing.T) {
	got := MustParse("a=1 a=...{b}")
	want := ir.New().WithProp("a", ir.FromNumber("1").WithProp("b", ir.New()))
	if !ir.Equal(want, got) {
		t.Errorf("got %s", encode.String(got))
	}
}

func TestParseDiagnostics(t *testing.T) {
	tests := []struct {
		in     string
		line   int
		offset int
		code   string
	}{
		{"a = ", 0, 4, token.CodeSyntax},
		{"# a = ", 0, 6, token.CodeSyntax},
		{"# a = (", 0, 6, token.CodeSyntax},
		{"# a = \"open", 0, 11, token.CodeUnterminated},
		{"# a = \"\\q\"", 0, 7, token.CodeBadEscape},
		{"# a = @2024-13-45", 0, 6, token.CodeBadDate},
		{"# a = $(b", 0, 6, token.CodeBadReference},
		{"# a { b", 0, 7, token.CodeSyntax},
		{"# a = [1 2]", 0, 9, token.CodeSyntax},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			base := MustParse("# keep = 1")
			got, diags := Parse(tc.in, Extending(base))
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics", len(diags))
			}
			d := diags[0]
			if d.Line != tc.line || d.Offset != tc.offset || d.Code != tc.code {
				t.Errorf("got %+v", d)
			}
			if s := encode.String(got); s != "# keep = 1\n" {
				t.Errorf("result %q", s)
			}
			if got == base {
				t.Error("result aliases extending")
			}
		})
	}
}

func TestFromLines(t *testing.T) {
	got, diags := FromLines([]string{
		"# a = 1",
		"# b { c }",
		"# a = (",
		"# -b.c d",
	})
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	if diags[0].Line != 2 || diags[0].Offset != 6 {
		t.Errorf("diagnostic at %d:%d", diags[0].Line, diags[0].Offset)
	}
	if s := encode.String(got); s != "# a = 1 b { -c } d\n" {
		t.Errorf("got %q", s)
	}
}

func TestFromLinesExtending(t *testing.T) {
	base := MustParse("# a = 1")
	got, diags := FromLines(nil, Extending(base))
	if len(diags) != 0 || !ir.Equal(base, got) || got == base {
		t.Error("empty fold does not copy extending")
	}
	got, _ = FromLines([]string{"# b"}, Extending(base))
	if s := encode.String(got); s != "# a = 1 b\n" {
		t.Errorf("got %q", s)
	}
}

type fixedGrammar []stmt.Statement

func (g fixedGrammar) Statements(string) ([]stmt.Statement, token.Diagnostics) {
	return g, nil
}

func TestWithGrammar(t *testing.T) {
	g := fixedGrammar{{Kind: stmt.SetEq, Path: ir.P("x"), Value: stmt.Scalar(ir.FromString("y"))}}
	got := MustParse("# anything at all", WithGrammar(g))
	if s := encode.String(got); s != "# x = y\n" {
		t.Errorf("got %q", s)
	}
}

func TestSplitPrefix(t *testing.T) {
	tests := []struct {
		in     string
		prefix string
		off    int
	}{
		{"a", "", 0},
		{"# a", "# ", 2},
		{"  # a", "# ", 4},
		{"#(docs) a", "#(docs) ", 8},
		{"#", "#", 1},
		{"", "", 0},
	}
	for _, tc := range tests {
		prefix, off := SplitPrefix(tc.in)
		if diff := cmp.Diff([]any{tc.prefix, tc.off}, []any{prefix, off}); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range roundTripSeeds {
		t.Run(in, func(t *testing.T) {
			checkRoundTrip(t, in)
		})
	}
}

var roundTripSeeds = []string{
	"# a b c",
	"# a.b.c = [{ d = 1 }]",
	"# a = 1 { b } c { d = x -e f.g }",
	"# a = [x { y = 1 }, { z }, {}, $(a), [1, 2]]",
	"# a = \"two words\" b = '' c = \"tab\there\"",
	"# `a b`.`c\\`d` = e",
	"# x { y = $(^z) z = $(x) w = $(^^x.z) }",
	"# d = @2024-01-15 t = @true f = @false n = -1.5e-3",
	"#(docs) a=1 a=...{b} a {c} -a.b",
	"# 0.1 = 2 k.1.5",
	"# a b -... c",
}

func checkRoundTrip(t *testing.T, in string) {
	t.Helper()
	y, diags := Parse(in)
	if len(diags) != 0 {
		t.Fatalf("%q: %v", in, diags.Err())
	}
	s1 := encode.String(y)
	y2, diags := Parse(s1)
	if len(diags) != 0 {
		t.Fatalf("reparse %q: %v", s1, diags.Err())
	}
	if s2 := encode.String(y2); s1 != s2 {
		t.Errorf("not a fixpoint:\n%q\n%q", s1, s2)
	}
}

func TestSetRoundTrip(t *testing.T) {
	y := ir.New()
	for _, set := range []struct {
		p string
		v any
	}{
		{"s", `say "hi"\there`},
		{"nl", "two\nlines\ttab"},
		{"uni", "héllo, 世界"},
		{"id", "true"},
		{"digits", "0123"},
		{"`odd name`", "x"},
		{"`tick\\`q`", "y"},
		{"`名前`", 1},
		{"f", 0.1},
		{"big", 1e21},
		{"neg", -3.5},
		{"i", -42},
		{"b", false},
		{"d", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"arr", []string{"a b", "", "c"}},
		{"fs", []float64{1.5, -2}},
		{"a.b[2]", "padded"},
		{"empty", nil},
	} {
		p, err := ir.ParsePath(set.p)
		if err != nil {
			t.Fatalf("%s: %v", set.p, err)
		}
		y = y.MustSet(p, set.v)
	}
	s1 := encode.String(y)
	y2, diags := Parse(s1)
	if len(diags) != 0 {
		t.Fatalf("reparse %q: %v", s1, diags.Err())
	}
	if s2 := encode.String(y2); s1 != s2 {
		t.Errorf("not a fixpoint:\n%q\n%q", s1, s2)
	}
	if !ir.Equal(y, y2) {
		t.Errorf("tree changed through %q", s1)
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, s := range roundTripSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		y, diags := Parse(in)
		if len(diags) != 0 {
			return
		}
		s1 := encode.String(y)
		y2, diags := Parse(s1)
		if len(diags) != 0 {
			t.Fatalf("reparse %q: %v", s1, diags.Err())
		}
		if s2 := encode.String(y2); s1 != s2 {
			t.Errorf("not a fixpoint:\n%q\n%q", s1, s2)
		}
	})
}
