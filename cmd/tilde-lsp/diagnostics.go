package main

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/signadot/tilde-format/tilde/debug"
	"github.com/signadot/tilde-format/tilde/ir"
	"github.com/signadot/tilde-format/tilde/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	lines   []string
	header  []string
	nodes   []*ir.Node
	scan    *scanner
}

func newDocument(uri, content string, version int32) *document {
	s := scan(uri, content)
	lines, _ := token.SplitLines(content)
	return &document{
		uri:     uri,
		content: content,
		version: version,
		lines:   lines,
		header:  s.p.Header(),
		nodes:   s.Export(),
		scan:    s,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	diagnostics := validateDocument(doc)
	if debug.Parse() {
		debug.Logf("lsp: %s version %d: %d diagnostics\n", uri, doc.version, len(diagnostics))
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument turns syntax errors and dropped entries into
// diagnostics.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, se := range doc.scan.errs {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    pointRange(se.Pos.Row, se.Pos.Col),
			Severity: protocol.DiagnosticSeverityError,
			Message:  se.Err.Error(),
			Source:   lsName,
		})
	}
	for _, d := range doc.scan.drops {
		row := d.row
		msg := fmt.Sprintf("%q at offset %x is not attached", d.Key, d.Offset)
		if d.Last >= 0 {
			msg += fmt.Sprintf(": offsets after an entry at offset %x can be at most %x", d.Last, d.Last+1)
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(row - 1)},
				End:   protocol.Position{Line: uint32(row - 1), Character: uint32(doc.lineLen(row))},
			},
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  msg,
			Source:   lsName,
		})
	}
	return diagnostics
}

// lineLen returns the number of characters on a 1-based row.
func (doc *document) lineLen(row int) int {
	if row < 1 || row > len(doc.lines) {
		return 0
	}
	return len([]rune(doc.lines[row-1]))
}

// pointRange converts a 1-based row and column to a one character range.
func pointRange(row, col int) protocol.Range {
	line, char := uint32(max(row-1, 0)), uint32(max(col-1, 0))
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: char},
		End:   protocol.Position{Line: line, Character: char + 1},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change.Range, change.Text)
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange applies an incremental change, or replaces the content when
// the change has no range.
func applyChange(content string, rng protocol.Range, text string) string {
	if rng.Start == (protocol.Position{}) && rng.End == (protocol.Position{}) {
		return text
	}
	runes := []rune(content)
	start := lineColToOffset(content, int(rng.Start.Line), int(rng.Start.Character))
	end := lineColToOffset(content, int(rng.End.Line), int(rng.End.Character))
	if start > end || end > len(runes) {
		return content
	}
	return string(runes[:start]) + text + string(runes[end:])
}

// lineColToOffset returns the rune offset of a 0-based line and character.
// Lines break on LF, CR and the CR/LF pairs accepted by the parser.
func lineColToOffset(content string, line, col int) int {
	lines, breaks := token.SplitLines(content)
	off := 0
	for i := 0; i < line; i++ {
		if i >= len(breaks) {
			return off + utf8.RuneCountInString(lines[i])
		}
		off += utf8.RuneCountInString(lines[i]) + utf8.RuneCountInString(breaks[i])
	}
	return off + min(col, utf8.RuneCountInString(lines[line]))
}
