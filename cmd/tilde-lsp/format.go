package main

import (
	"bytes"
	"context"

	"github.com/signadot/tilde-format/tilde/encode"
	"go.lsp.dev/protocol"
)

// Formatting re-encodes the document with minimal offsets. Documents with
// errors or dropped entries are left alone.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	if len(doc.scan.errs) != 0 || len(doc.scan.drops) != 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc.nodes, &buf, encode.EncodeHeader(doc.header)); err != nil {
		return nil, nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(len(doc.lines)),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
