// Package libdiff computes differences between source texts, for
// showing reformatting and for editor text edits.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Edit replaces the bytes [Start, End) of a source with Text.
type Edit struct {
	Start, End int
	Text       string
}

// Edits returns the edits taking from to to, in increasing order of
// Start and never overlapping.
func Edits(from, to string) []Edit {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, strings.Contains(from, "\n"))
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var (
		res []Edit
		cur *Edit
		fi  int
	)
	flush := func() {
		if cur != nil {
			res = append(res, *cur)
			cur = nil
		}
	}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			flush()
			fi += len(diff.Text)
		case diffpatch.DiffDelete:
			if cur == nil {
				cur = &Edit{Start: fi, End: fi}
			}
			fi += len(diff.Text)
			cur.End = fi
		case diffpatch.DiffInsert:
			if cur == nil {
				cur = &Edit{Start: fi, End: fi}
			}
			cur.Text += diff.Text
		}
	}
	flush()
	return res
}

// Apply applies edits, as returned by Edits, to src.
func Apply(src string, edits []Edit) string {
	b := &strings.Builder{}
	at := 0
	for _, e := range edits {
		b.WriteString(src[at:e.Start])
		b.WriteString(e.Text)
		at = e.End
	}
	b.WriteString(src[at:])
	return b.String()
}
