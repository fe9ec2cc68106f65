package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines writes a line oriented difference of from and to, with removed
// lines marked '-', added ones '+' and unchanged ones ' '. It returns ""
// when from and to are equal.
func Lines(from, to string, colored bool) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = color.New(color.FgRed).SprintFunc()
		ins = color.New(color.FgGreen).SprintFunc()
	}
	out := &strings.Builder{}
	for _, diff := range diffs {
		for _, line := range splitLines(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffDelete:
				out.WriteString(del("-" + line))
			case diffpatch.DiffInsert:
				out.WriteString(ins("+" + line))
			default:
				out.WriteString(" " + line)
			}
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// splitLines splits text after each newline, dropping a final empty
// line.
func splitLines(text string) []string {
	res := strings.SplitAfter(text, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	for i := range res {
		res[i] = strings.TrimSuffix(res[i], "\n")
	}
	return res
}
