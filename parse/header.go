package parse

import "strings"

// Header collects the '#' lines preceding the body of a document.
type Header struct {
	lines []string
	buf   strings.Builder
}

func (h *Header) pre() {
	h.buf.Reset()
}

func (h *Header) accept(r rune) {
	h.buf.WriteRune(r)
}

func (h *Header) empty() bool {
	return h.buf.Len() == 0
}

func (h *Header) post() {
	h.lines = append(h.lines, h.buf.String())
	h.buf.Reset()
}

func (h *Header) reset() {
	h.lines = nil
	h.buf.Reset()
}

// Lines returns the header lines without their leading '#'.
func (h *Header) Lines() []string {
	return h.lines
}
