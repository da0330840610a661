package eval

import (
	"slices"

	"github.com/signadot/tilde-format/tilde/ir"
)

type Env = map[string]any

// NodeEnv returns the environment of n, where names holds the names from
// the top level down to n.
func NodeEnv(names []string, n *ir.Node) Env {
	children := make([]string, len(n.Value))
	for i, c := range n.Value {
		children[i] = c.Name
	}
	text := n.Text
	if text == nil {
		text = []string{}
	}
	return Env{
		"name":     n.Name,
		"text":     text,
		"path":     ir.PathString(names),
		"depth":    len(names) - 1,
		"children": children,
		"hastext": func(s string) bool {
			return slices.Contains(n.Text, s)
		},
		"child": func(name string) any {
			c := n.Child(name)
			if c == nil {
				return nil
			}
			return ToAny(c)
		},
	}
}

// typeEnv fixes the types of the environment at compile time.
var typeEnv = NodeEnv([]string{""}, &ir.Node{})
