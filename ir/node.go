package ir

// Node is one named element of a parsed document.
//
// Text holds the non-empty text values recorded for the name, in order.
// Value holds the children.
type Node struct {
	Name  string   `json:"name" yaml:"name"`
	Text  []string `json:"text,omitempty" yaml:"text,omitempty"`
	Value []*Node  `json:"value,omitempty" yaml:"value,omitempty"`
}

func New(name string, text ...string) *Node {
	n := &Node{Name: name}
	if len(text) != 0 {
		n.Text = text
	}
	return n
}

// WithValue appends children to n and returns n.
func (n *Node) WithValue(children ...*Node) *Node {
	n.Value = append(n.Value, children...)
	return n
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{Name: n.Name}
	if n.Text != nil {
		res.Text = append([]string{}, n.Text...)
	}
	if n.Value != nil {
		res.Value = CloneAll(n.Value)
	}
	return res
}

func CloneAll(nodes []*Node) []*Node {
	res := make([]*Node, len(nodes))
	for i, n := range nodes {
		res[i] = n.Clone()
	}
	return res
}

// Child returns the first child named name.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Value {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Walk visits nodes depth first in document order. names holds the names
// from the top level down to and including n. If f returns false the
// children of n are skipped.
func Walk(nodes []*Node, f func(names []string, n *Node) bool) {
	walk(nodes, nil, f)
}

func walk(nodes []*Node, names []string, f func([]string, *Node) bool) {
	for _, n := range nodes {
		path := append(names[:len(names):len(names)], n.Name)
		if !f(path, n) {
			continue
		}
		walk(n.Value, path, f)
	}
}

// Count returns the number of nodes in the document.
func Count(nodes []*Node) int {
	c := 0
	Walk(nodes, func([]string, *Node) bool {
		c++
		return true
	})
	return c
}
