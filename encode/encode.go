package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tilde-format/tilde/format"
	"github.com/signadot/tilde-format/tilde/ir"
	"github.com/signadot/tilde-format/tilde/token"
)

type EncState struct {
	depth  int
	indent int
	escape bool
	header []string
	sep    string

	format format.Format
	Color  func(ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2, sep: "."}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

// Encode writes nodes to w, by default in Tilde notation.
func Encode(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.TildeFormat:
		return encodeTilde(nodes, w, es)
	case format.JSONFormat:
		return encodeJSON(nodes, w, es)
	case format.YAMLFormat:
		return encodeYAML(nodes, w, es)
	case format.XMLFormat:
		return encodeXML(nodes, w, es)
	case format.HTMLFormat:
		return defaultHTML.convert(nodes, w, es)
	case format.MapFormat:
		return encodeMap(nodes, w, es)
	default:
		return fmt.Errorf("%w: unknown format %d", ErrEncoding, es.format)
	}
}

func encodeTilde(nodes []*ir.Node, w io.Writer, es *EncState) error {
	for _, h := range es.header {
		if strings.ContainsAny(h, "\r\n") {
			return fmt.Errorf("%w: line break in header line %q", ErrUnencodable, h)
		}
		if err := writeString(w, es.color(HeaderColor, "#"+h)+"\n"); err != nil {
			return err
		}
	}
	for _, n := range nodes {
		if err := encodeNode(n, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeNode(n *ir.Node, w io.Writer, es *EncState) error {
	key, err := escapeKey(n.Name, es)
	if err != nil {
		return err
	}
	line := es.color(OffsetColor, fmt.Sprintf("%x", es.depth)) + es.color(SepColor, "~") + key
	if len(n.Text) == 0 {
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
	} else {
		line += es.color(SepColor, ":")
		for i, text := range n.Text {
			if i > 0 {
				line = es.color(MarkerColor, "+")
			}
			if err := writeString(w, line+encodeText(text, es)+"\n"); err != nil {
				return err
			}
		}
	}
	es.depth++
	defer func() { es.depth-- }()
	for _, c := range n.Value {
		if err := encodeNode(c, w, es); err != nil {
			return err
		}
	}
	return nil
}

func escapeKey(key string, es *EncState) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrUnencodable)
	}
	if strings.ContainsAny(key, "\r\n") {
		return "", fmt.Errorf("%w: line break in key %q", ErrUnencodable, key)
	}
	buf := &strings.Builder{}
	start := 0
	for i, r := range key {
		if r != token.Colon && r != token.Backslash {
			continue
		}
		buf.WriteString(es.color(KeyColor, key[start:i]))
		buf.WriteString(es.color(EscapeColor, string([]rune{token.Backslash, r})))
		start = i + 1
	}
	buf.WriteString(es.color(KeyColor, key[start:]))
	return buf.String(), nil
}

// encodeText renders the lines of text after the first with '|' markers,
// keeping each line break as is.
func encodeText(text string, es *EncState) string {
	lines, breaks := token.SplitLines(text)
	buf := &strings.Builder{}
	buf.WriteString(es.color(TextColor, lines[0]))
	for i, brk := range breaks {
		buf.WriteString(brk)
		buf.WriteString(es.color(MarkerColor, "|"))
		buf.WriteString(es.color(TextColor, lines[i+1]))
	}
	return buf.String()
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
