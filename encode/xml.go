package encode

import (
	"io"
	"strings"

	"github.com/signadot/tilde-format/tilde/ir"
	"golang.org/x/net/html"
)

// EncodeXML writes nodes as XML elements.
//
// Each text of a node becomes an element of the node's name, and a node
// with children gets one more element wrapping them.
func EncodeXML(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	return encodeXML(nodes, w, newEncState(opts))
}

func encodeXML(nodes []*ir.Node, w io.Writer, es *EncState) error {
	buf := &strings.Builder{}
	for _, n := range nodes {
		xmlNode(buf, n, es)
	}
	return writeString(w, buf.String())
}

func xmlNode(buf *strings.Builder, n *ir.Node, es *EncState) {
	for _, t := range n.Text {
		addTag(buf, n.Name, t, es)
	}
	if len(n.Value) == 0 {
		return
	}
	children := &strings.Builder{}
	for _, c := range n.Value {
		xmlNode(children, c, es)
	}
	if children.Len() == 0 {
		return
	}
	addTagWithAttrs(buf, n.Name, "", children.String(), es)
}

func startTag(buf *strings.Builder, name, attrs string, es *EncState) {
	buf.WriteString(es.color(TagColor, "<"+name))
	buf.WriteString(attrs)
	buf.WriteString(es.color(TagColor, ">"))
}

func endTag(buf *strings.Builder, name string, es *EncState) {
	buf.WriteString(es.color(TagColor, "</"+name+">"))
}

func addTag(buf *strings.Builder, name, text string, es *EncState) {
	startTag(buf, name, "", es)
	buf.WriteString(es.color(TextColor, escapeText(text, es)))
	endTag(buf, name, es)
}

// addTagWithAttrs writes an element whose content is already rendered.
func addTagWithAttrs(buf *strings.Builder, name, attrs, content string, es *EncState) {
	startTag(buf, name, attrs, es)
	buf.WriteString(content)
	endTag(buf, name, es)
}

// addAttr writes name="v0 v1 ..." with a leading space.
func addAttr(buf *strings.Builder, name string, values []string, es *EncState) {
	buf.WriteByte(' ')
	buf.WriteString(es.color(AttrColor, name))
	buf.WriteString(`="`)
	buf.WriteString(es.color(TextColor, escapeText(strings.Join(values, " "), es)))
	buf.WriteByte('"')
}

func escapeText(s string, es *EncState) string {
	if !es.escape {
		return s
	}
	return html.EscapeString(s)
}
