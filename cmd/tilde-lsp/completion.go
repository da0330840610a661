package main

import (
	"context"
	"fmt"

	"github.com/signadot/tilde-format/tilde/ir"
	"github.com/signadot/tilde-format/tilde/token"
	"go.lsp.dev/protocol"
)

// Completion suggests the offsets which attach at the cursor, when the
// cursor follows nothing but hex digits at the start of a line.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	row := int(params.Position.Line) + 1
	col := int(params.Position.Character)
	if row <= len(doc.header) {
		return nil, nil
	}
	var line []rune
	if row <= len(doc.lines) {
		line = []rune(doc.lines[row-1])
	}
	if col > len(line) {
		col = len(line)
	}
	for _, r := range line[:col] {
		if !token.IsHex(r) {
			return nil, nil
		}
	}
	return &protocol.CompletionList{
		Items: offsetCompletions(doc.scan.pathBefore(row)),
	}, nil
}

// offsetCompletions returns an item for each offset which attaches after
// an entry at path.
func offsetCompletions(path []string) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(path)+1)
	for o := len(path); o >= 0; o-- {
		label := fmt.Sprintf("%x~", o)
		detail := "top level"
		if o > 0 {
			detail = "under " + ir.PathString(path[:o])
		}
		items = append(items, protocol.CompletionItem{
			Label:      label,
			Kind:       protocol.CompletionItemKindValue,
			Detail:     detail,
			InsertText: label,
			SortText:   fmt.Sprintf("%08d", len(path)-o),
		})
	}
	return items
}
