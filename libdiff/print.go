package libdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/tilde-format/tilde/encode"
	"github.com/signadot/tilde-format/tilde/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Print writes changes in a line oriented form. Added and removed nodes
// are shown in Tilde notation and text changes as inline character diffs.
func Print(w io.Writer, changes []Change, colored bool) error {
	add, del, mod := fmt.Sprint, fmt.Sprint, fmt.Sprint
	if colored {
		add = color.New(color.FgGreen).Sprint
		del = color.New(color.FgRed).Sprint
		mod = color.New(color.FgYellow).Sprint
	}
	buf := &bytes.Buffer{}
	for _, c := range changes {
		switch c.Kind {
		case Added:
			fmt.Fprintf(buf, "%s %s\n", add("+"), c.Path)
			if err := printNode(buf, c.To, add("+ ")); err != nil {
				return err
			}
		case Removed:
			fmt.Fprintf(buf, "%s %s\n", del("-"), c.Path)
			if err := printNode(buf, c.From, del("- ")); err != nil {
				return err
			}
		case Changed:
			fmt.Fprintf(buf, "%s %s\n", mod("~"), c.Path)
			for _, td := range c.Texts {
				fmt.Fprintf(buf, "  [%d] %s\n", td.Index, TextString(td.Diffs, colored))
			}
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func printNode(buf *bytes.Buffer, n *ir.Node, prefix string) error {
	d := &bytes.Buffer{}
	if err := encode.Encode([]*ir.Node{n}, d); err != nil {
		return err
	}
	for _, ln := range strings.SplitAfter(strings.TrimSuffix(d.String(), "\n"), "\n") {
		buf.WriteString(prefix)
		buf.WriteString(strings.TrimRight(ln, "\n"))
		buf.WriteByte('\n')
	}
	return nil
}

// TextString renders a text diff inline, deletions as [-x-] and
// insertions as {+y+} unless colored.
func TextString(diffs []diffpatch.Diff, colored bool) string {
	if colored {
		return diffpatch.New().DiffPrettyText(diffs)
	}
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		default:
			b.WriteString(d.Text)
		}
	}
	return strings.NewReplacer("\r", `\r`, "\n", `\n`).Replace(b.String())
}
