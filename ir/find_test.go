package ir

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func sample() *Node {
	return New().
		WithProp("name", FromString("svc")).
		WithProp("port", FromNumber("8080")).
		WithProp("on", FromBool(true)).
		WithProp("since", must(FromDateLiteral("2024-01-15"))).
		WithProp("tags", FromSlice([]*Node{FromString("a"), FromNumber("2"), FromString("b")})).
		WithProp("nums", FromSlice([]*Node{FromNumber("1.5"), FromString("x"), FromNumber("-2")})).
		WithProp("gone", &Node{Tombstone: true}).
		WithProp("owner", New().WithProp("team", FromString("infra")))
}

func must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}

func TestAccessors(t *testing.T) {
	y := sample()
	if v, ok := y.TextAt(P("name")); !ok || v != "svc" {
		t.Errorf("Text name = %q %t", v, ok)
	}
	if v, ok := y.Numeric(P("port")); !ok || v != 8080 {
		t.Errorf("Numeric port = %v %t", v, ok)
	}
	if _, ok := y.Numeric(P("name")); ok {
		t.Error("Numeric name ok")
	}
	if v, ok := y.Bool(P("on")); !ok || !v {
		t.Errorf("Bool on = %t %t", v, ok)
	}
	if v, ok := y.DateAt(P("since")); !ok || !v.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateAt since = %v %t", v, ok)
	}
	if v, ok := y.TextAt(P("owner", "team")); !ok || v != "infra" {
		t.Errorf("Text owner.team = %q %t", v, ok)
	}
	if _, ok := y.TextAt(P("owner")); ok {
		t.Error("Text owner ok")
	}
	if v, ok := y.TextAt(P("tags", 1)); !ok || v != "2" {
		t.Errorf("Text tags[1] = %q %t", v, ok)
	}
	if y.Has(P("tags", 3)) || y.Has(P("name", 0)) || y.Has(P("tags", "x")) {
		t.Error("Has out of range")
	}
	ts, ok := y.TextArray(P("tags"))
	if !ok {
		t.Fatal("TextArray")
	}
	if diff := cmp.Diff([]string{"a", "2", "b"}, ts); diff != "" {
		t.Errorf("TextArray (-want +got):\n%s", diff)
	}
	ns, ok := y.NumericArray(P("nums"))
	if !ok {
		t.Fatal("NumericArray")
	}
	if diff := cmp.Diff([]float64{1.5, -2}, ns); diff != "" {
		t.Errorf("NumericArray (-want +got):\n%s", diff)
	}
	if _, ok := y.Array(P("name")); ok {
		t.Error("Array name ok")
	}
	if !y.Bare(P("name")) || y.Bare(P("owner")) || y.Bare(P("missing")) {
		t.Error("Bare")
	}
}

func TestTombstoneReads(t *testing.T) {
	y := sample()
	if y.Has(P("gone")) {
		t.Error("tombstone is visible")
	}
	if !y.Tombstoned(P("gone")) {
		t.Error("Tombstoned gone")
	}
	if y.Tombstoned(P("name")) || y.Tombstoned(P("missing")) {
		t.Error("Tombstoned on live or missing path")
	}
	y.Props.Get("owner").Tombstone = true
	if y.Has(P("owner", "team")) {
		t.Error("found through tombstone")
	}
	var keys []string
	for k := range y.Entries() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"name", "port", "on", "since", "tags", "nums"}, keys); diff != "" {
		t.Errorf("Entries (-want +got):\n%s", diff)
	}
}

func TestReferences(t *testing.T) {
	// a { b = 1 c = $(a.b) d = $(^b) } e = $(a.c) f = $(^^x) g = $(g)
	a := New().
		WithProp("b", FromNumber("1")).
		WithProp("c", FromRef(2, P("a", "b"))).
		WithProp("d", FromRef(1, P("b")))
	y := New().
		WithProp("a", a).
		WithProp("e", FromRef(1, P("a", "c"))).
		WithProp("f", FromRef(2, P("x"))).
		WithProp("g", FromRef(1, P("g")))

	for _, p := range []Path{P("a", "c"), P("a", "d"), P("e")} {
		if v, ok := y.TextAt(p); !ok || v != "1" {
			t.Errorf("%s = %q %t", p, v, ok)
		}
	}
	if y.Has(P("f")) {
		t.Error("dangling reference found")
	}
	if y.Has(P("g")) {
		t.Error("cyclic reference found")
	}

	// the clone resolves within itself
	c := y.Clone()
	c.Props.Get("a").Props.Get("b").Text = "2"
	if v, _ := c.TextAt(P("e")); v != "2" {
		t.Errorf("clone e = %q", v)
	}
	if v, _ := y.TextAt(P("e")); v != "1" {
		t.Errorf("original e = %q", v)
	}
}

func TestForwardReference(t *testing.T) {
	// a = $(b) b = x
	y := New().
		WithProp("a", FromRef(1, P("b"))).
		WithProp("b", FromString("x"))
	if v, ok := y.TextAt(P("a")); !ok || v != "x" {
		t.Errorf("a = %q %t", v, ok)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"same", sample(), sample(), true},
		{"nil props vs empty", New(), &Node{Props: NewProps()}, true},
		{"text", FromString("a"), FromString("b"), false},
		{"kind", FromString("1"), FromNumber("1"), false},
		{"order",
			New().WithProp("a", New()).WithProp("b", New()),
			New().WithProp("b", New()).WithProp("a", New()),
			false},
		{"tombstone", New().WithProp("a", New()), New().WithProp("a", &Node{Tombstone: true}), false},
		{"refs", FromRef(1, P("a")), FromRef(2, P("a")), false},
		{"elements", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("got %t", got)
			}
		})
	}
}
