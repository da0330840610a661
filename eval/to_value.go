package eval

import "github.com/signadot/tilde-format/tilde/ir"

// ToAny converts n to plain maps and slices for use in expressions.
func ToAny(n *ir.Node) map[string]any {
	text := make([]any, len(n.Text))
	for i, t := range n.Text {
		text[i] = t
	}
	children := make([]any, len(n.Value))
	for i, c := range n.Value {
		children[i] = ToAny(c)
	}
	return map[string]any{
		"name":     n.Name,
		"text":     text,
		"children": children,
	}
}
