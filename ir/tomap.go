package ir

import "strings"

// ToMap maps each text bearing node to its text values, keyed by the names
// from the top level down to the node joined with sep.
//
// Distinct nodes whose joined paths collide are not distinguished: the
// later node in document order wins.
func ToMap(nodes []*Node, sep string) map[string][]string {
	res := map[string][]string{}
	Walk(nodes, func(names []string, n *Node) bool {
		if len(n.Text) != 0 {
			res[strings.Join(names, sep)] = n.Text
		}
		return true
	})
	return res
}
