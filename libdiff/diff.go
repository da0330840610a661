package libdiff

import (
	"github.com/signadot/tilde-format/tilde/debug"
	"github.com/signadot/tilde-format/tilde/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return "<unknown change>"
	}
}

// Change is one difference between two trees. From is nil for added nodes
// and To is nil for removed ones.
type Change struct {
	Kind  Kind
	Path  string
	From  *ir.Node
	To    *ir.Node
	Texts []TextDiff
}

// Diff returns the changes turning from into to, in document order.
func Diff(from, to []*ir.Node) []Change {
	var res []Change
	diffNodes(from, to, nil, &res)
	if debug.Diff() {
		debug.Logf("diff: %d changes\n", len(res))
	}
	return res
}

// diffNodes matches two sibling lists by name, as a diff of the sequences
// of names.
func diffNodes(from, to []*ir.Node, names []string, res *[]Change) {
	m := map[string]rune{}
	fromRunes := nameRunes(m, from)
	toRunes := nameRunes(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				f := from[fi]
				*res = append(*res, Change{Kind: Removed, Path: path(names, f), From: f})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				t := to[ti]
				*res = append(*res, Change{Kind: Added, Path: path(names, t), To: t})
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				diffNode(from[fi], to[ti], names, res)
				fi++
				ti++
			}
		}
	}
}

func diffNode(from, to *ir.Node, names []string, res *[]Change) {
	texts := diffTexts(from.Text, to.Text)
	if len(texts) != 0 {
		*res = append(*res, Change{
			Kind:  Changed,
			Path:  path(names, from),
			From:  from,
			To:    to,
			Texts: texts,
		})
	}
	diffNodes(from.Value, to.Value, append(names[:len(names):len(names)], from.Name), res)
}

func nameRunes(m map[string]rune, nodes []*ir.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		r, ok := m[n.Name]
		if !ok {
			r = rune(len(m))
			m[n.Name] = r
		}
		rs[i] = r
	}
	return rs
}

func path(names []string, n *ir.Node) string {
	return ir.PathString(append(names[:len(names):len(names)], n.Name))
}
