package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tilde-format/tilde/token"
	"github.com/signadot/tilde-format/tilde/tree"
	"go.lsp.dev/protocol"
)

const testDoc = "#hdr\n0~a:x\n1~b:y\n|z\n+w\n0~c\n2~d:q\nx"

func TestScanEntries(t *testing.T) {
	s := scan("t.tilde", testDoc)
	want := []*entry{
		{row: 2, lastRow: 2, offset: 0, key: "a", texts: []string{"x"}, path: []string{"a"}},
		{row: 3, lastRow: 5, offset: 1, key: "b", texts: []string{"y\nz", "w"}, path: []string{"a", "b"}},
		{row: 6, lastRow: 6, offset: 0, key: "c", texts: []string{""}, path: []string{"c"}},
		{row: 7, lastRow: 7, offset: 2, key: "d", texts: []string{"q"}},
	}
	if diff := cmp.Diff(want, s.entries, cmp.AllowUnexported(entry{})); diff != "" {
		t.Errorf("entries (-want +got):\n%s", diff)
	}
	wantDrops := []dropped{{Drop: tree.Drop{Entry: 4, Offset: 2, Key: "d", Text: "q", Last: 0}, row: 7}}
	if diff := cmp.Diff(wantDrops, s.drops, cmp.AllowUnexported(dropped{})); diff != "" {
		t.Errorf("drops (-want +got):\n%s", diff)
	}
	if len(s.errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(s.errs))
	}
	se := s.errs[0]
	if se.Pos != (token.Pos{Row: 8, Col: 1}) || !errors.Is(se, token.ErrMarker) || se.Filename != "t.tilde" {
		t.Errorf("unexpected error %v", se)
	}
	if diff := cmp.Diff([]string{"hdr"}, s.p.Header()); diff != "" {
		t.Errorf("header (-want +got):\n%s", diff)
	}
}

func TestScanSpans(t *testing.T) {
	const (
		n = protocol.SemanticTokenNumber
		o = protocol.SemanticTokenOperator
		p = protocol.SemanticTokenProperty
		s = protocol.SemanticTokenString
		k = protocol.SemanticTokenKeyword
	)
	want := []span{
		{2, 1, 1, n}, {2, 2, 1, o}, {2, 3, 1, p}, {2, 4, 1, o}, {2, 5, 1, s},
		{3, 1, 1, n}, {3, 2, 1, o}, {3, 3, 1, p}, {3, 4, 1, o}, {3, 5, 1, s},
		{4, 1, 1, k}, {4, 2, 1, s},
		{5, 1, 1, k}, {5, 2, 1, s},
		{6, 1, 1, n}, {6, 2, 1, o}, {6, 3, 1, p},
		{7, 1, 1, n}, {7, 2, 1, o}, {7, 3, 1, p}, {7, 4, 1, o}, {7, 5, 1, s},
	}
	got := scan("", testDoc).spans
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(span{})); diff != "" {
		t.Errorf("spans (-want +got):\n%s", diff)
	}
}

func TestScanEscapedKeyAndPipeText(t *testing.T) {
	got := scan("", "0~a\\:b:c|d").spans
	want := []span{
		{1, 1, 1, protocol.SemanticTokenNumber},
		{1, 2, 1, protocol.SemanticTokenOperator},
		{1, 3, 4, protocol.SemanticTokenProperty},
		{1, 7, 1, protocol.SemanticTokenOperator},
		{1, 8, 3, protocol.SemanticTokenString},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(span{})); diff != "" {
		t.Errorf("spans (-want +got):\n%s", diff)
	}
}

func TestEntryAt(t *testing.T) {
	s := scan("", testDoc)
	for _, tc := range []struct {
		row int
		key string
	}{
		{1, ""}, {2, "a"}, {3, "b"}, {4, "b"}, {5, "b"}, {6, "c"}, {7, "d"}, {8, ""},
	} {
		e := s.entryAt(tc.row)
		key := ""
		if e != nil {
			key = e.key
		}
		if key != tc.key {
			t.Errorf("row %d: got %q want %q", tc.row, key, tc.key)
		}
	}
}

func TestPathBefore(t *testing.T) {
	s := scan("", testDoc)
	for _, tc := range []struct {
		row  int
		want []string
	}{
		{2, nil},
		{3, []string{"a"}},
		{6, []string{"a", "b"}},
		{7, []string{"c"}},
		{8, []string{"c"}},
	} {
		if diff := cmp.Diff(tc.want, s.pathBefore(tc.row)); diff != "" {
			t.Errorf("row %d (-want +got):\n%s", tc.row, diff)
		}
	}
}
