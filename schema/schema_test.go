package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tagline/ir"
	"github.com/signadot/tagline/parse"
)

type result struct {
	Code string
	Path []string
}

func results(errs []*Error) []result {
	res := []result{}
	for _, e := range errs {
		res = append(res, result{Code: e.Code, Path: e.Path})
	}
	return res
}

func TestMissingRequired(t *testing.T) {
	s := parse.MustParse("# required: { name=string age=number }")
	got := results(Validate(ir.New(), s))
	want := []result{
		{CodeMissingRequired, []string{"name"}},
		{CodeMissingRequired, []string{"age"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestArrayOfTags(t *testing.T) {
	data := parse.MustParse("# items=[{size=10 color=red},{size=bad color=blue}]")
	s := parse.MustParse(`# required: { items="tag[]" { required: { size=number color=string } } }`)
	got := results(Validate(data, s))
	want := []result{{CodeWrongType, []string{"items", "1", "size"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestArrayOfCustomType(t *testing.T) {
	data := parse.MustParse("# items=[{size=10 color=red},{size=bad color=blue}]")
	s := parse.MustParse(`# required: { items="item[]" } types: { item: { required: { size=number color=string } } }`)
	got := results(Validate(data, s))
	want := []result{{CodeWrongType, []string{"items", "1", "size"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	schema := `# required: { name=string port: { type=number } }` +
		` optional: { tags="string[]" on=boolean since=date owner=person meta=any misc }` +
		` types: { person: { required: { email=string } optional: { phone } } }`
	tests := []struct {
		name string
		data string
		want []result
	}{
		{"ok", "# name=svc port=80", nil},
		{"all optional", "# name=svc port=80 tags=[a, b] on=@true since=@2024-01-15 owner.email=x meta=[1, a] misc { x }", nil},
		{"empty array", "# name=svc port=80 tags=[]", nil},
		{"wrong scalar", "# name=svc port=eighty", []result{{CodeWrongType, []string{"port"}}}},
		{"mixed array", "# name=svc port=80 tags=[a, 1]", []result{{CodeWrongType, []string{"tags"}}}},
		{"tag for string", "# name { x } port=80", []result{{CodeWrongType, []string{"name"}}}},
		{"unknown", "# name=svc port=80 extra nested.x", []result{
			{CodeUnknownProperty, []string{"extra"}},
			{CodeUnknownProperty, []string{"nested"}},
		}},
		{"custom type", "# name=svc port=80 owner { phone=1 }", []result{
			{CodeMissingRequired, []string{"owner", "email"}},
		}},
		{"custom unknown", "# name=svc port=80 owner { email=e x }", []result{
			{CodeUnknownProperty, []string{"owner", "x"}},
		}},
		{"custom wrong type", "# name=svc port=80 owner=bob", []result{
			{CodeWrongType, []string{"owner"}},
		}},
		{"tombstone is missing", "# name=svc port=80 -name", []result{
			{CodeMissingRequired, []string{"name"}},
		}},
		{"reference", "# name=$(alias) port=80 alias=x", []result{
			{CodeUnknownProperty, []string{"alias"}},
		}},
		{"siblings continue", "# name=1 port=x", []result{
			{CodeWrongType, []string{"name"}},
			{CodeWrongType, []string{"port"}},
		}},
	}
	s := New("test", parse.MustParse(schema))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := results(s.Validate(parse.MustParse(tc.data)))
			want := tc.want
			if want == nil {
				want = []result{}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestInvalidSchema(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		data   string
		want   []result
	}{
		{"unknown type stops descent",
			`# required: { a="thing" { required: { b=string } } c=string }`,
			"# a { x } c=1",
			[]result{
				{CodeInvalidSchema, []string{"a"}},
				{CodeWrongType, []string{"c"}},
			}},
		{"type not a name",
			`# required: { a: { type=[x] } }`,
			"# a=1",
			[]result{{CodeInvalidSchema, []string{"a"}}}},
		{"section not a block",
			`# required=1`,
			"# a",
			[]result{
				{CodeInvalidSchema, nil},
				{CodeUnknownProperty, []string{"a"}},
			}},
		{"allow unknown",
			`# required: { a } allowUnknown=@true`,
			"# a b c",
			[]result{}},
		{"nested allow unknown",
			`# required: { a { required: { b } allowUnknown=@true } }`,
			"# a { b c }",
			[]result{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := results(Validate(parse.MustParse(tc.data), parse.MustParse(tc.schema)))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestInfer(t *testing.T) {
	for src, want := range map[string]string{
		"# v=x":          TypeString,
		"# v=1":          TypeNumber,
		"# v=@false":     TypeBoolean,
		"# v=@2024":      TypeDate,
		"# v":            TypeTag,
		"# v { a }":      TypeTag,
		"# v=[]":         "any[]",
		"# v=[a, b]":     "string[]",
		"# v=[a, 1]":     "mixed[]",
		"# v=[[1], [2]]": "number[][]",
		"# v=[{a}, {}]":  "tag[]",
		"# v=$(w) w=[1]": "number[]",
		"# v=[$(v)]":     "any[]",
		"# v=[$(v), 1]":  "mixed[]",
	} {
		if got := Infer(parse.MustParse(src).Find(ir.P("v"))); got != want {
			t.Errorf("%s: got %s want %s", src, got, want)
		}
	}
}

func TestCyclicData(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		schema string
		want   []result
	}{
		{
			name:   "array holding itself",
			data:   "# a = [$(a)]",
			schema: "# required: { a=string }",
			want:   []result{{CodeWrongType, []string{"a"}}},
		},
		{
			name:   "recursive type",
			data:   "# a { b = $(a) }",
			schema: "# required: { a=t } types: { t: { optional: { b=t } } }",
			want:   []result{},
		},
		{
			name:   "recursive type with error",
			data:   "# a { b = $(a) c = 1 }",
			schema: "# required: { a=t } types: { t: { optional: { b=t } } }",
			want:   []result{{CodeUnknownProperty, []string{"a", "c"}}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := results(Validate(parse.MustParse(tc.data), parse.MustParse(tc.schema)))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestMetaSchema(t *testing.T) {
	meta := Lookup(MetaName)
	if meta == nil {
		t.Fatal("meta schema not registered")
	}
	good := parse.MustParse(`# required: { a=string } types: { t: { optional: { x } } } allowUnknown=@false`)
	if errs := meta.Validate(good); len(errs) != 0 {
		t.Errorf("got %v", errs)
	}
	bad := parse.MustParse(`# requried: { a=string } allowUnknown=yes`)
	got := results(meta.Validate(bad))
	want := []result{
		{CodeWrongType, []string{"allowUnknown"}},
		{CodeUnknownProperty, []string{"requried"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := Register(New(MetaName, ir.New())); err == nil {
		t.Error("registered twice")
	}
	if _, ok := All()[MetaName]; !ok {
		t.Error("All misses the meta schema")
	}
}
