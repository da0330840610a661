package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/tilde-format/tilde/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	e := doc.scan.entryAt(int(params.Position.Line) + 1)
	if e == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(doc, e),
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: uint32(e.row - 1)},
			End:   protocol.Position{Line: uint32(e.lastRow - 1), Character: uint32(doc.lineLen(e.lastRow))},
		},
	}, nil
}

func buildHoverText(doc *document, e *entry) string {
	var parts []string
	if e.path == nil {
		parts = append(parts, fmt.Sprintf("**Dropped:** `%s` at offset %x", e.key, e.offset))
	} else {
		parts = append(parts, fmt.Sprintf("**Path:** `%s`", ir.PathString(e.path)))
	}
	for i, text := range e.texts {
		if text == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("**Text %d:**\n```\n%s\n```", i, shorten(text)))
	}
	if e.path == nil {
		return strings.Join(parts, "\n\n")
	}
	if n, err := ir.GetPath(doc.nodes, ir.PathString(e.path)); err == nil {
		parts = append(parts, fmt.Sprintf("**Node:** %d texts, %d children", len(n.Text), len(n.Value)))
	}
	return strings.Join(parts, "\n\n")
}

func shorten(s string) string {
	r := []rune(s)
	if len(r) > 200 {
		return string(r[:200]) + "..."
	}
	return s
}
