package main

import (
	"errors"
	"slices"

	"github.com/signadot/tilde-format/tilde/parse"
	"github.com/signadot/tilde-format/tilde/token"
	"github.com/signadot/tilde-format/tilde/tree"
	"go.lsp.dev/protocol"
)

// entry is one line entry of a document with its continuation lines.
type entry struct {
	row, lastRow int
	offset       int
	key          string
	texts        []string
	// path holds the names from the top level down to the entry, nil if
	// the entry was dropped.
	path []string
}

// dropped is an entry which could not be attached, with its row.
type dropped struct {
	tree.Drop
	row int
}

// span is a semantic token. row and col are 1-based.
type span struct {
	row, col, n int
	typ         protocol.SemanticTokenTypes
}

// scanner records where the parser found offsets, keys, markers and texts
// while building the tree.
type scanner struct {
	*tree.Builder

	p   *parse.Parser
	cur rune

	entries []*entry
	spans   []span
	errs    []*token.SyntaxError
	drops   []dropped

	stack    []string
	keyStart int
	keyEnd   int
	text     []rune
	run      span
	marked   token.Pos
}

func scan(name, content string) *scanner {
	s := &scanner{Builder: tree.NewBuilder()}
	s.OnDrop = func(d tree.Drop) {
		row := s.last().row
		if n := len(s.drops); n != 0 && s.drops[n-1].row == row {
			return
		}
		s.drops = append(s.drops, dropped{Drop: d, row: row})
	}
	s.p = parse.NewParser(s, parse.ParseFilename(name))
	for _, r := range content {
		s.cur = r
		s.p.Accept(r)
	}
	s.cur = token.EOF
	s.p.Finish()
	return s
}

func (s *scanner) last() *entry {
	return s.entries[len(s.entries)-1]
}

func (s *scanner) touch() {
	if len(s.entries) != 0 {
		s.last().lastRow = s.p.Row()
	}
}

func (s *scanner) BeginKey(offset int) {
	row, col := s.p.Row(), s.p.Col()
	s.spans = append(s.spans,
		span{row: row, col: 1, n: col - 2, typ: protocol.SemanticTokenNumber},
		span{row: row, col: col - 1, n: 1, typ: protocol.SemanticTokenOperator})
	s.entries = append(s.entries, &entry{row: row, lastRow: row, offset: offset})
	s.keyStart, s.keyEnd = col, col-1
	s.Builder.BeginKey(offset)
}

func (s *scanner) KeyChar(r rune) {
	s.keyEnd = s.p.Col()
	s.last().key += string(r)
	s.Builder.KeyChar(r)
}

func (s *scanner) EndKey() {
	e := s.last()
	if s.keyEnd >= s.keyStart {
		s.spans = append(s.spans, span{row: e.row, col: s.keyStart, n: s.keyEnd - s.keyStart + 1, typ: protocol.SemanticTokenProperty})
	}
	if s.cur == token.Colon {
		s.spans = append(s.spans, span{row: e.row, col: s.p.Col(), n: 1, typ: protocol.SemanticTokenOperator})
	}
	if e.offset <= len(s.stack) {
		s.stack = append(s.stack[:e.offset], e.key)
		e.path = slices.Clone(s.stack)
	}
	s.Builder.EndKey()
}

func (s *scanner) BeginText() {
	s.text = s.text[:0]
	s.run = span{}
	s.Builder.BeginText()
}

func (s *scanner) TextChar(r rune) {
	row, col := s.p.Row(), s.p.Col()
	s.touch()
	s.text = append(s.text, r)
	s.Builder.TextChar(r)
	if s.cur == token.Vertical && r != token.Vertical {
		s.marker(row, col)
		return
	}
	if s.run.n == 0 || s.run.row != row {
		s.flush()
		s.run = span{row: row, col: col, typ: protocol.SemanticTokenString}
	}
	s.run.n = col - s.run.col + 1
}

func (s *scanner) NextArraySlot() {
	s.touch()
	s.endText()
	s.marker(s.p.Row(), s.p.Col())
	s.Builder.NextArraySlot()
}

func (s *scanner) EndText() {
	s.endText()
	s.Builder.EndText()
}

func (s *scanner) endText() {
	s.flush()
	e := s.last()
	e.texts = append(e.texts, string(s.text))
	s.text = s.text[:0]
}

func (s *scanner) Error(row, col int, err error) {
	var se *token.SyntaxError
	if errors.As(err, &se) {
		s.errs = append(s.errs, se)
	}
	s.Builder.Error(row, col, err)
}

// marker records a continuation marker once per position.
func (s *scanner) marker(row, col int) {
	pos := token.Pos{Row: row, Col: col}
	if s.marked == pos {
		return
	}
	s.marked = pos
	s.flush()
	s.spans = append(s.spans, span{row: row, col: col, n: 1, typ: protocol.SemanticTokenKeyword})
}

func (s *scanner) flush() {
	if s.run.n > 0 {
		s.spans = append(s.spans, s.run)
	}
	s.run = span{}
}

// entryAt returns the entry covering the 1-based row, or nil.
func (s *scanner) entryAt(row int) *entry {
	i, found := slices.BinarySearchFunc(s.entries, row, func(e *entry, row int) int {
		return e.row - row
	})
	if !found {
		i--
	}
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	if e := s.entries[i]; row <= e.lastRow {
		return e
	}
	return nil
}

// pathBefore returns the path of the last attached entry before row.
func (s *scanner) pathBefore(row int) []string {
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.row >= row || e.path == nil {
			continue
		}
		return e.path
	}
	return nil
}

var _ parse.Handler = (*scanner)(nil)
