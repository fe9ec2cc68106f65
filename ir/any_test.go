package ir

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	y := sample().WithProp("ref", FromRef(1, P("owner")))
	y.Props.Get("name").WithProp("k", New())
	got := ToAny(y)
	want := map[string]any{
		"name":  map[string]any{"=": "svc", "k": nil},
		"port":  json.Number("8080"),
		"on":    true,
		"since": time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		"tags":  []any{"a", json.Number("2"), "b"},
		"nums":  []any{json.Number("1.5"), "x", json.Number("-2")},
		"owner": map[string]any{"team": "infra"},
		"ref":   map[string]any{"team": "infra"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToAnyCycle(t *testing.T) {
	tests := []struct {
		name string
		y    *Node
		want any
	}{
		{
			name: "self",
			// a { b = $(a) }
			y:    New().WithProp("a", New().WithProp("b", FromRef(2, P("a")))),
			want: map[string]any{"a": map[string]any{"b": nil}},
		},
		{
			name: "twice",
			// a { x = $(a) y = $(a) }
			y: New().WithProp("a", New().
				WithProp("x", FromRef(2, P("a"))).
				WithProp("y", FromRef(2, P("a")))),
			want: map[string]any{"a": map[string]any{"x": nil, "y": nil}},
		},
		{
			name: "array",
			// a = [$(a), 1]
			y:    New().WithProp("a", FromSlice([]*Node{FromRef(2, P("a")), FromInt(1)})),
			want: map[string]any{"a": []any{nil, json.Number("1")}},
		},
		{
			name: "shared",
			// a { b = $(a) } c = $(a)
			y: New().
				WithProp("a", New().WithProp("b", FromRef(2, P("a")))).
				WithProp("c", FromRef(1, P("a"))),
			want: map[string]any{
				"a": map[string]any{"b": nil},
				"c": map[string]any{"b": nil},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ToAny(tc.y)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromAny(t *testing.T) {
	in := map[string]any{
		"b": []any{"x", json.Number("1"), true, nil},
		"a": map[string]any{"=": "v", "c": float64(2)},
	}
	got, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got.Props.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v, _ := got.TextAt(P("a")); v != "v" {
		t.Errorf("a = %q", v)
	}
	if v, _ := got.Numeric(P("a", "c")); v != 2 {
		t.Errorf("a.c = %v", v)
	}
	if n := got.Find(P("b", 1)); n == nil || n.Type != NumberType {
		t.Error("b[1] is not a number")
	}
	proj := ToAny(got).(map[string]any)
	if diff := cmp.Diff(in["b"], proj["b"]); diff != "" {
		t.Errorf("projection (-want +got):\n%s", diff)
	}
	if _, err := FromAny(map[string]any{"x": struct{}{}}); err == nil {
		t.Error("expected error")
	}
}
