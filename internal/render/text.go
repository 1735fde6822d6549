package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/specialistvlad/pathtree/internal/tree"
)

type palette struct {
	name func(a ...any) string
	attr func(a ...any) string
	meta func(a ...any) string
	edge func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		name: mk(color.FgCyan, color.Bold),
		attr: mk(color.FgYellow),
		meta: mk(color.FgBlue),
		edge: mk(color.FgHiBlack),
	}
}

// Text writes the tree as an indented outline:
//
//	/
//	└── Request #id [string(12) mandatory=M]
//	    ├── Date
//	    └── Time
func Text(w io.Writer, root *tree.Node, colorize bool) error {
	bw := bufio.NewWriter(w)
	p := newPalette(colorize)
	writeLine(bw, p, "", root)
	writeChildren(bw, p, "", root)
	return bw.Flush()
}

func writeChildren(w *bufio.Writer, p palette, indent string, n *tree.Node) {
	children := n.Children()
	for i, c := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}
		writeLine(w, p, indent+p.edge(branch), c)
		writeChildren(w, p, indent+p.edge(next), c)
	}
}

func writeLine(w *bufio.Writer, p palette, prefix string, n *tree.Node) {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(p.name(n.Name()))
	for _, a := range n.Attributes() {
		sb.WriteString(" ")
		sb.WriteString(p.attr("#" + a.Name))
	}
	if m, ok := n.Meta(); ok {
		if s := m.String(); s != "" {
			sb.WriteString(" ")
			sb.WriteString(p.meta("[" + s + "]"))
		}
	}
	fmt.Fprintln(w, sb.String())
}
