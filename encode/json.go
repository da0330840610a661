package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/tilde-format/tilde/format"
	"github.com/signadot/tilde-format/tilde/ir"
)

func encodeJSON(nodes []*ir.Node, w io.Writer, es *EncState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", es.indent))
	enc.SetEscapeHTML(false)
	if nodes == nil {
		nodes = []*ir.Node{}
	}
	if err := enc.Encode(nodes); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func encodeYAML(nodes []*ir.Node, w io.Writer, es *EncState) error {
	if nodes == nil {
		nodes = []*ir.Node{}
	}
	return marshalYAML(nodes, w, es)
}

// encodeMap writes the flattened path to text map as YAML.
func encodeMap(nodes []*ir.Node, w io.Writer, es *EncState) error {
	return marshalYAML(ir.ToMap(nodes, es.sep), w, es)
}

func marshalYAML(v any, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(v,
		yaml.Indent(es.indent),
		yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d))
}

// Decode reads a node list written in the JSON or YAML format.
func Decode(d []byte, f format.Format) ([]*ir.Node, error) {
	var nodes []*ir.Node
	switch f {
	case format.JSONFormat:
		dec := json.NewDecoder(bytes.NewReader(d))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
		}
	case format.YAMLFormat:
		if err := yaml.UnmarshalWithOptions(d, &nodes, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
		}
	default:
		return nil, fmt.Errorf("%w: cannot decode %s", ErrDecoding, f)
	}
	for _, n := range nodes {
		if err := checkDecoded(n); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func checkDecoded(n *ir.Node) error {
	if n == nil {
		return fmt.Errorf("%w: null node", ErrDecoding)
	}
	for _, c := range n.Value {
		if err := checkDecoded(c); err != nil {
			return err
		}
	}
	return nil
}
