package render

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/specialistvlad/pathtree/internal/tree"
)

// Diff writes a line diff between the text renderings of two trees. Added
// lines start with "+ ", removed lines with "- " and unchanged lines with two
// spaces. It reports whether anything changed.
func Diff(w io.Writer, before, after *tree.Node) (bool, error) {
	var a, b bytes.Buffer
	if err := Text(&a, before, false); err != nil {
		return false, err
	}
	if err := Text(&b, after, false); err != nil {
		return false, err
	}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a.String(), b.String())
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	bw := bufio.NewWriter(w)
	changed := false
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, changed = "+ ", true
		case diffmatchpatch.DiffDelete:
			prefix, changed = "- ", true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprint(bw, prefix, line)
		}
	}
	return changed, bw.Flush()
}
