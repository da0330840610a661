package main

import (
	"context"
	"sort"

	"go.lsp.dev/protocol"
)

// tokenTypes is the semantic token legend. Headers are comments, offsets
// numbers, '~' and ':' operators, keys properties, continuation markers
// keywords and texts strings.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

func (doc *document) spans() []span {
	res := make([]span, 0, len(doc.header)+len(doc.scan.spans))
	for i := range doc.header {
		if n := doc.lineLen(i + 1); n > 0 {
			res = append(res, span{row: i + 1, col: 1, n: n, typ: protocol.SemanticTokenComment})
		}
	}
	res = append(res, doc.scan.spans...)
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].row != res[j].row {
			return res[i].row < res[j].row
		}
		return res[i].col < res[j].col
	})
	return res
}

// collectSemanticTokens encodes the spans within rows [from, to] relative
// to each other.
func collectSemanticTokens(doc *document, from, to int) []uint32 {
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, sp := range doc.spans() {
		if sp.row < from || sp.row > to || sp.n <= 0 {
			continue
		}
		line, char := uint32(sp.row-1), uint32(sp.col-1)
		deltaLine := line - prevLine
		deltaChar := char
		if deltaLine == 0 {
			deltaChar = char - prevChar
		}
		tokens = append(tokens, deltaLine, deltaChar, uint32(sp.n), typeMap[sp.typ], 0)
		prevLine, prevChar = line, char
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc, 1, len(doc.lines)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	from, to := int(params.Range.Start.Line)+1, int(params.Range.End.Line)+1
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc, from, to),
	}, nil
}
