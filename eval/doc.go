// Package eval selects nodes of Tilde trees with expr-lang expressions.
//
// An expression is evaluated once per node with the environment
//
//	name      string    the node name
//	text      []string  the node texts
//	path      string    the node path, as in $.a.b
//	depth     int       0 for top level nodes
//	children  []string  the names of the children
//	hastext(s)          whether s is one of the texts
//	child(name)         the first child with that name, or nil
//
// and the document level functions getpath(path) and listpath(path).
// Children and path results are maps with keys name, text and children.
package eval
