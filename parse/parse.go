package parse

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/signadot/tilde-format/tilde/ir"
	"github.com/signadot/tilde-format/tilde/token"
	"github.com/signadot/tilde-format/tilde/tree"
)

func Parse(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	return ParseSeq(func(yield func(rune) bool) {
		for _, r := range string(d) {
			if !yield(r) {
				return
			}
		}
	}, opts...)
}

func ParseString(s string, opts ...ParseOption) ([]*ir.Node, error) {
	return ParseReader(strings.NewReader(s), opts...)
}

// ParseReader parses the runes read from r. A read error other than
// io.EOF is returned without nodes.
func ParseReader(r io.Reader, opts ...ParseOption) ([]*ir.Node, error) {
	br := bufio.NewReader(r)
	var readErr error
	nodes, err := ParseSeq(func(yield func(rune) bool) {
		for {
			c, _, err := br.ReadRune()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr = err
				}
				return
			}
			if !yield(c) {
				return
			}
		}
	}, opts...)
	if readErr != nil {
		return nil, readErr
	}
	return nodes, err
}

// ParseSeq parses a sequence of runes and builds the tree.
//
// Syntax errors do not stop parsing: the nodes built from the well formed
// lines are returned together with an ErrorList, unless ParseStrict was
// given.
func ParseSeq(seq iter.Seq[rune], opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	var errs ErrorList
	b := tree.NewBuilder()
	b.OnDrop = pOpts.onDrop
	b.OnError = func(_, _ int, err error) {
		var se *token.SyntaxError
		if !errors.As(err, &se) {
			return
		}
		errs = append(errs, se)
		if pOpts.onError != nil {
			pOpts.onError(se)
		}
	}
	p := NewParser(b, opts...)
	for r := range seq {
		p.Accept(r)
	}
	p.Finish()
	if pOpts.header != nil {
		*pOpts.header = p.Header()
	}
	if len(errs) == 0 {
		return b.Export(), nil
	}
	if pOpts.strict {
		return nil, errs
	}
	return b.Export(), errs
}
