package parse

import (
	"github.com/signadot/tilde-format/tilde/token"
	"github.com/signadot/tilde-format/tilde/tree"
)

type parseOpts struct {
	header   *[]string
	onError  func(*token.SyntaxError)
	onDrop   func(tree.Drop)
	filename string
	strict   bool
}

type ParseOption func(*parseOpts)

// ParseHeader stores the header lines of the document in h.
func ParseHeader(h *[]string) ParseOption {
	return func(o *parseOpts) { o.header = h }
}

func ParseErrorFunc(f func(*token.SyntaxError)) ParseOption {
	return func(o *parseOpts) { o.onError = f }
}

// ParseDropFunc calls f for every entry whose offset does not resolve to a
// parent.
func ParseDropFunc(f func(tree.Drop)) ParseOption {
	return func(o *parseOpts) { o.onDrop = f }
}

// ParseFilename names the input in syntax errors.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParseStrict makes any syntax error fatal.
func ParseStrict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}
