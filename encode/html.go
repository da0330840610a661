package encode

import (
	"io"
	"strings"

	"github.com/signadot/tilde-format/tilde/ir"
)

// HTMLConverter renders trees as HTML. Children whose names are HTML
// attributes of their parent element become attributes rather than
// elements.
type HTMLConverter struct {
	globals  map[string]bool
	events   map[string]bool
	elements map[string]map[string]bool
}

var defaultHTML = NewHTMLConverter()

func NewHTMLConverter() *HTMLConverter {
	c := &HTMLConverter{
		globals:  set(globalAttrs),
		events:   set(eventHandlerAttrs),
		elements: make(map[string]map[string]bool, len(elementAttrs)),
	}
	for elt, attrs := range elementAttrs {
		c.elements[elt] = set(attrs)
	}
	return c
}

func set(xs []string) map[string]bool {
	res := make(map[string]bool, len(xs))
	for _, x := range xs {
		res[x] = true
	}
	return res
}

// IsAttr reports whether name is a global, event handler or data
// attribute.
func (c *HTMLConverter) IsAttr(name string) bool {
	return c.globals[name] || c.events[name] || strings.HasPrefix(name, dataAttrPrefix)
}

// IsElementAttr reports whether name is an attribute specific to element.
// The element name is not case sensitive.
func (c *HTMLConverter) IsElementAttr(element, name string) bool {
	return c.elements[strings.ToLower(element)][name]
}

// isElement reports names which are elements under parent although they
// are also attribute names.
func isElement(parent, name string) bool {
	return parent == "head" && name == "title"
}

func (c *HTMLConverter) Convert(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	return c.convert(nodes, w, newEncState(opts))
}

func (c *HTMLConverter) convert(nodes []*ir.Node, w io.Writer, es *EncState) error {
	buf := &strings.Builder{}
	for _, n := range nodes {
		c.node(buf, n, es)
	}
	return writeString(w, buf.String())
}

func (c *HTMLConverter) node(buf *strings.Builder, n *ir.Node, es *EncState) {
	for _, t := range n.Text {
		addTag(buf, n.Name, t, es)
	}
	attrs := &strings.Builder{}
	children := &strings.Builder{}
	for _, child := range n.Value {
		if (c.IsAttr(child.Name) && !isElement(n.Name, child.Name)) || c.IsElementAttr(n.Name, child.Name) {
			addAttr(attrs, child.Name, child.Text, es)
			continue
		}
		c.node(children, child, es)
	}
	if attrs.Len() == 0 && children.Len() == 0 {
		return
	}
	addTagWithAttrs(buf, n.Name, attrs.String(), children.String(), es)
}
