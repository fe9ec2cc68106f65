package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEdits(t *testing.T) {
	tests := []struct {
		from, to string
	}{
		{"", ""},
		{"# a=1", "# a = 1\n"},
		{"# a = 1 b { c=2 }", "# a = 1 b.c = 2\n"},
		{"#  x", "# x\n"},
		{"# é = 1", "# `é` = 1\n"},
		{"keep\nme\n", "keep\nyou\n"},
	}
	for _, tc := range tests {
		t.Run(tc.from, func(t *testing.T) {
			edits := Edits(tc.from, tc.to)
			if got := Apply(tc.from, edits); got != tc.to {
				t.Errorf("got %q want %q (edits %v)", got, tc.to, edits)
			}
			for i := 1; i < len(edits); i++ {
				if edits[i].Start < edits[i-1].End {
					t.Errorf("overlapping edits %v", edits)
				}
			}
		})
	}
}

func TestEditsEqual(t *testing.T) {
	if edits := Edits("# a = 1\n", "# a = 1\n"); len(edits) != 0 {
		t.Errorf("got %v", edits)
	}
}

func TestLines(t *testing.T) {
	got := Lines("# a = 1\n# b = 2\n", "# a = 1\n# b = 3\n", false)
	want := " # a = 1\n-# b = 2\n+# b = 3\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := Lines("x\n", "x\n", false); got != "" {
		t.Errorf("got %q", got)
	}
}
