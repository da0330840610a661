package tree

import "github.com/signadot/tilde-format/tilde/ir"

// Export converts the tree built so far to its public form.
//
// Each key group becomes one node. Its text is the non-empty text of each
// member in order, and its children are the exported children of each
// member in order.
func (b *Builder) Export() []*ir.Node {
	return b.export(&b.root)
}

func (b *Builder) export(g *group) []*ir.Node {
	res := make([]*ir.Node, 0, len(g.keys))
	for i, key := range g.keys {
		out := &ir.Node{Name: key}
		for _, j := range g.members[i] {
			n := &b.nodes[j]
			if n.text != "" {
				out.Text = append(out.Text, n.text)
			}
			out.Value = append(out.Value, b.export(&n.children)...)
		}
		res = append(res, out)
	}
	return res
}
