package gomap

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tagline/encode"
	"github.com/signadot/tagline/parse"
)

type owner struct {
	Team  string `json:"team"`
	Oncall bool  `json:"oncall"`
}

type service struct {
	Name    string    `json:"name"`
	Port    int       `json:"port"`
	Ratio   float64   `json:"ratio,omitempty"`
	Tags    []string  `json:"tags"`
	Owner   *owner    `json:"owner,omitempty"`
	Release time.Time `json:"release"`
}

func TestLoad(t *testing.T) {
	var got service
	err := Load("# name = svc port = 8080 tags = [a, b] owner { team = infra oncall = @true } release = @2024-05-01 -ratio", &got)
	if err != nil {
		t.Fatal(err)
	}
	want := service{
		Name:    "svc",
		Port:    8080,
		Tags:    []string{"a", "b"},
		Owner:   &owner{Team: "infra", Oncall: true},
		Release: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	var s service
	for _, src := range []string{
		"# name = [",
		"# port = x",
	} {
		if err := Load(src, &s); !errors.Is(err, ErrMap) {
			t.Errorf("%q: got %v", src, err)
		}
	}
}

func TestEncode(t *testing.T) {
	got, err := Encode(service{Name: "svc", Port: 1, Tags: []string{}, Owner: &owner{Team: "x"}})
	if err != nil {
		t.Fatal(err)
	}
	want := `# name = svc owner { oncall = @false team = x } port = 1 release = "0001-01-01T00:00:00Z" tags = []` + "\n"
	if diff := cmp.Diff(want, encode.String(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := Encode([]int{1}); !errors.Is(err, ErrMap) {
		t.Errorf("got %v", err)
	}
}

func TestJSON(t *testing.T) {
	y := parse.MustParse("# a = 1.50 { b = x } c = [@true, $(a.b)]")
	d, err := MarshalJSON(y)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"a":{"=":1.50,"b":"x"},"c":[true,"x"]}`, string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	back, err := UnmarshalJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("# a = 1.50 { b = x } c = [@true, x]\n", encode.String(back)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if d, _ := MarshalJSON(parse.MustParse("")); string(d) != "{}" {
		t.Errorf("got %s", d)
	}
}
