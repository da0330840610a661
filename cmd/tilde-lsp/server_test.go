package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func TestValidateDocument(t *testing.T) {
	doc := newDocument("t.tilde", testDoc, 1)
	got := validateDocument(doc)
	if len(got) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(got))
	}
	if got[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("got severity %v", got[0].Severity)
	}
	if diff := cmp.Diff(pointRange(8, 1), got[0].Range); diff != "" {
		t.Errorf("error range (-want +got):\n%s", diff)
	}
	warn := got[1]
	if warn.Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("got severity %v", warn.Severity)
	}
	wantRange := protocol.Range{
		Start: protocol.Position{Line: 6},
		End:   protocol.Position{Line: 6, Character: 5},
	}
	if diff := cmp.Diff(wantRange, warn.Range); diff != "" {
		t.Errorf("drop range (-want +got):\n%s", diff)
	}
	if want := `"d" at offset 2 is not attached: offsets after an entry at offset 0 can be at most 1`; warn.Message != want {
		t.Errorf("got message %q", warn.Message)
	}
}

func TestSemanticTokens(t *testing.T) {
	doc := newDocument("", "#h\n0~a:x", 1)
	want := []uint32{
		0, 0, 2, 0, 0,
		1, 0, 1, 3, 0,
		0, 1, 1, 4, 0,
		0, 1, 1, 5, 0,
		0, 1, 1, 4, 0,
		0, 1, 1, 2, 0,
	}
	if diff := cmp.Diff(want, collectSemanticTokens(doc, 1, len(doc.lines))); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
	want = []uint32{0, 0, 2, 0, 0}
	if diff := cmp.Diff(want, collectSemanticTokens(doc, 1, 1)); diff != "" {
		t.Errorf("range tokens (-want +got):\n%s", diff)
	}
}

func TestHoverText(t *testing.T) {
	doc := newDocument("", testDoc, 1)
	got := buildHoverText(doc, doc.scan.entryAt(4))
	want := "**Path:** `$.a.b`\n\n" +
		"**Text 0:**\n```\ny\nz\n```\n\n" +
		"**Text 1:**\n```\nw\n```\n\n" +
		"**Node:** 2 texts, 0 children"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	got = buildHoverText(doc, doc.scan.entryAt(7))
	want = "**Dropped:** `d` at offset 2\n\n**Text 0:**\n```\nq\n```"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestOffsetCompletions(t *testing.T) {
	items := offsetCompletions([]string{"a", "b"})
	var labels, details []string
	for _, it := range items {
		labels = append(labels, it.Label)
		details = append(details, it.Detail)
	}
	if diff := cmp.Diff([]string{"2~", "1~", "0~"}, labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"under $.a.b", "under $.a", "top level"}, details); diff != "" {
		t.Errorf("details (-want +got):\n%s", diff)
	}
}

func TestApplyChange(t *testing.T) {
	content := "0~a:x\n1~b:y"
	rng := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 2},
		End:   protocol.Position{Line: 1, Character: 3},
	}
	if got := applyChange(content, rng, "c"); got != "0~a:x\n1~c:y" {
		t.Errorf("got %q", got)
	}
	if got := applyChange(content, protocol.Range{}, "0~z"); got != "0~z" {
		t.Errorf("got %q", got)
	}
}

func TestApplyChangeLineBreaks(t *testing.T) {
	rng := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 2},
		End:   protocol.Position{Line: 1, Character: 3},
	}
	tests := []struct {
		in, want string
	}{
		{"0~a:x\r1~b:y", "0~a:x\r1~c:y"},
		{"0~a:x\r\n1~b:y", "0~a:x\r\n1~c:y"},
		{"0~a:x\n\r1~b:y", "0~a:x\n\r1~c:y"},
		{"0~é:x\n1~b:y", "0~é:x\n1~c:y"},
	}
	for _, tc := range tests {
		if got := applyChange(tc.in, rng, "c"); got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
}
