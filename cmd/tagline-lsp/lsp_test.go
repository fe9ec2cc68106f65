package main

import (
	"bytes"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/schema"
)

func pos(line, char uint32) protocol.Position {
	return protocol.Position{Line: line, Character: char}
}

func rng(line, from, to uint32) protocol.Range {
	return protocol.Range{Start: pos(line, from), End: pos(line, to)}
}

func TestAnalyzeParseError(t *testing.T) {
	doc := analyze("file:///x.tl", "# a = 1\n# b = [\n", "")
	if doc.node != nil {
		t.Error("a document with errors has no tree")
	}
	want := []protocol.Diagnostic{{
		Range:    rng(1, 7, 8),
		Severity: protocol.DiagnosticSeverityError,
		Code:     "syntax-error",
		Source:   lsName,
		Message:  "expected ']' before end of input",
	}}
	if diff := cmp.Diff(want, doc.diags); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestAnalyzeSchema(t *testing.T) {
	if schema.Lookup("lsp-svc") == nil {
		if _, err := loadSchema("lsp-svc", "# required: { name=string port=number }"); err != nil {
			t.Fatal(err)
		}
	}
	doc := analyze("file:///x.tl", "# name = 1 port = x\n", "lsp-svc")
	want := []protocol.Diagnostic{
		{
			Range:    rng(0, 2, 6),
			Severity: protocol.DiagnosticSeverityWarning,
			Code:     "wrong-type",
			Source:   "lsp-svc",
			Message:  "expected string, got number",
		},
		{
			Range:    rng(0, 11, 15),
			Severity: protocol.DiagnosticSeverityWarning,
			Code:     "wrong-type",
			Source:   "lsp-svc",
			Message:  "expected number, got string",
		},
	}
	if diff := cmp.Diff(want, doc.diags); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if doc := analyze("file:///x.tl", "# name = n port = 1\n", "lsp-svc"); len(doc.diags) != 0 {
		t.Errorf("got %v", doc.diags)
	}
}

func TestAnalyzeSchemaDocument(t *testing.T) {
	doc := analyze("file:///s"+schemaSuffix, "# requried: { a=string }\n", "")
	if len(doc.diags) == 0 {
		t.Fatal("expected schema language problems")
	}
	for _, d := range doc.diags {
		if d.Source != schema.MetaName {
			t.Errorf("source %q", d.Source)
		}
	}
}

func TestLoadSchemaError(t *testing.T) {
	if _, err := loadSchema("broken", "# required: {"); err == nil {
		t.Error("expected an error")
	}
}

func offsetOf(content string, p protocol.Position) int {
	off := 0
	for range p.Line {
		l := lineOf(content[off:], 0)
		off += len(l) + 1
	}
	return off + byteOffset(lineOf(content, int(p.Line)), p.Character)
}

func TestFormatEdits(t *testing.T) {
	for _, src := range []string{
		"# a=1\n# b { c=2 }\n",
		"#  `a b` = 'x'\n",
		"# a = 1 b.c = 2\n",
	} {
		doc := analyze("file:///x.tl", src, "")
		edits := formatEdits(doc)
		sort.Slice(edits, func(i, j int) bool {
			return offsetOf(src, edits[i].Range.Start) > offsetOf(src, edits[j].Range.Start)
		})
		got := src
		for _, e := range edits {
			got = got[:offsetOf(src, e.Range.Start)] + e.NewText + got[offsetOf(src, e.Range.End):]
		}
		var buf bytes.Buffer
		if err := encode.Encode(doc.node, &buf); err != nil {
			t.Fatal(err)
		}
		if want := buf.String(); got != want {
			t.Errorf("%q: got %q want %q", src, got, want)
		}
	}
	if edits := formatEdits(analyze("file:///x.tl", "# a = [", "")); edits != nil {
		t.Errorf("got %v", edits)
	}
}

func TestCompletions(t *testing.T) {
	doc := analyze("file:///x.tl", "# a.b = 1 c = x\n", "")
	labels := func(items []protocol.CompletionItem) []string {
		res := []string{}
		for _, it := range items {
			res = append(res, it.Label)
		}
		return res
	}
	if diff := cmp.Diff([]string{"a", "a.b", "c"}, labels(completions(doc, "# d = $(", nil))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"@true", "@false"}, labels(completions(doc, "# d = @", nil))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	s := schema.New("c", analyze("file:///c.tl", "# required: { a=tag port=number } optional: { `x y`=string }", "").node)
	if diff := cmp.Diff([]string{"port", "`x y`"}, labels(completions(doc, "# ", s))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLineTokens(t *testing.T) {
	got := lineTokens(3, "# a.b = [x, 1] { c = @true } d = $(a)")
	tok := func(start, length uint32, typ int) semToken {
		return semToken{line: 3, start: start, length: length, typ: typ}
	}
	want := []semToken{
		tok(0, 2, semComment),
		tok(2, 1, semProperty),
		tok(4, 1, semProperty),
		tok(6, 1, semOperator),
		tok(9, 1, semString),
		tok(12, 1, semNumber),
		tok(17, 1, semProperty),
		tok(19, 1, semOperator),
		tok(21, 5, semKeyword),
		tok(29, 1, semProperty),
		tok(31, 1, semOperator),
		tok(33, 4, semVariable),
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(semToken{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeSemantic(t *testing.T) {
	got := encodeSemantic([]semToken{
		{line: 0, start: 0, length: 2, typ: semComment},
		{line: 0, start: 2, length: 1, typ: semProperty},
		{line: 2, start: 4, length: 3, typ: semNumber},
	})
	want := []uint32{
		0, 0, 2, semComment, 0,
		0, 2, 1, semProperty, 0,
		2, 4, 3, semNumber, 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPositions(t *testing.T) {
	l := "aé😀b"
	if got := character(l, 7); got != 4 {
		t.Errorf("character: got %d", got)
	}
	if got := byteOffset(l, 4); got != 7 {
		t.Errorf("byteOffset: got %d", got)
	}
	if diff := cmp.Diff(pos(1, 1), positionOf("x\nab", 3)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := lineOf("a\r\nb\nc", 0); got != "a" {
		t.Errorf("lineOf: got %q", got)
	}
}

func TestHover(t *testing.T) {
	doc := analyze("file:///x.tl", "# a = 1 r = $(a) n = 1.5", "")
	text, r := hoverAt(doc, 0, 13)
	if diff := cmp.Diff("**Reference** `a`\n\n**Type:** Number\n\n**Value:** `1`", text); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rng(0, 12, 16), r); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if text, _ := hoverAt(doc, 0, 22); text != "**Number** `1.5` (1.5)" {
		t.Errorf("got %q", text)
	}
	if text, _ := hoverAt(doc, 0, 2); text != "" {
		t.Errorf("got %q", text)
	}
	if got := refHover(doc.node, "^^x"); got != "**Reference** 2 levels up to `x`" {
		t.Errorf("got %q", got)
	}
}
