package parse

import (
	"fmt"

	"github.com/signadot/tilde-format/tilde/debug"
	"github.com/signadot/tilde-format/tilde/token"
)

// Parser is a Tilde state machine fed one character at a time.
//
// Each character is processed completely, including all Handler calls,
// before Accept returns. Syntax errors are reported to the Handler and the
// offending line is skipped. After the end of input, signalled by
// [Parser.Finish], the parser may be reused for another input.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	h        Handler
	filename string

	state    state
	row, col int
	newline  token.Newline
	brk      []rune
	offset   token.Offset
	header   Header
	started  bool
	textRow  int
	fromText bool
}

func NewParser(h Handler, opts ...ParseOption) *Parser {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &Parser{h: h, filename: pOpts.filename}
	p.reset()
	return p
}

// Header returns the header lines of the current or last input.
func (p *Parser) Header() []string {
	return p.header.Lines()
}

// Row returns the 1-based row of the last accepted character.
func (p *Parser) Row() int {
	return p.row
}

// Col returns the 1-based column of the last accepted character.
func (p *Parser) Col() int {
	return p.col
}

// Reset abandons the current input.
func (p *Parser) Reset() {
	p.reset()
	p.header.reset()
}

// AcceptString feeds every character of s.
func (p *Parser) AcceptString(s string) {
	for _, r := range s {
		p.Accept(r)
	}
}

// Finish signals the end of input.
func (p *Parser) Finish() {
	p.Accept(token.EOF)
}

// Accept feeds one character, or [token.EOF] to end the input.
func (p *Parser) Accept(r rune) {
	if !p.started {
		p.started = true
		p.header.reset()
	}
	if ev := p.newline.Accept(r); len(ev) != 0 {
		p.row++
		p.col = 0
		p.brk = append(p.brk[:0], ev...)
	}
	p.col++
	if debug.Parse() {
		debug.Logf("parse: %s %s at %d:%d\n", p.state, token.RuneString(r), p.row, p.col)
	}
	p.dispatch(r)
}

func (p *Parser) dispatch(r rune) {
	switch p.state {
	case statePreHeader:
		p.preHeader(r)
	case stateHeader:
		p.headerChar(r)
	case stateHeaderNewline:
		p.headerNewline(r)
	case statePreOffset:
		p.preOffset(r)
	case stateOffset:
		p.offsetChar(r)
	case stateOffsetError, stateKeyError:
		p.resync(r)
	case statePreKey:
		p.preKey(r)
	case stateKey:
		p.key(r)
	case stateKeyEscaped:
		p.keyEscaped(r)
	case statePreText:
		p.preText(r)
	case stateText:
		p.text(r)
	case stateTextNewline:
		p.textNewline(r)
	default:
		panic(p.state)
	}
}

func (p *Parser) reset() {
	p.state = statePreHeader
	p.row = 1
	p.col = 0
	p.newline.Reset()
	p.offset.Reset()
	p.started = false
	p.fromText = false
}

func (p *Parser) error(err error) {
	se := token.NewSyntaxError(err, p.row, p.col)
	se.Filename = p.filename
	if debug.Parse() {
		debug.Logf("parse: error %v\n", se)
	}
	p.h.Error(p.row, p.col, se)
}

func (p *Parser) preHeader(r rune) {
	switch {
	case r == token.NumberSign:
		p.header.pre()
		p.state = stateHeader
	case token.IsNewline(r):
		p.error(fmt.Errorf("%w: empty line before content", token.ErrPlacement))
		p.state = statePreOffset
		p.preOffset(r)
	default:
		p.state = statePreOffset
		p.preOffset(r)
	}
}

func (p *Parser) headerChar(r rune) {
	switch {
	case r == token.NumberSign && p.header.empty():
	case token.IsNewline(r):
		p.header.post()
		p.state = stateHeaderNewline
	case r == token.EOF:
		p.header.post()
		p.reset()
	default:
		p.header.accept(r)
	}
}

// headerNewline skips blank lines between and after header lines.
func (p *Parser) headerNewline(r rune) {
	switch {
	case token.IsNewline(r):
	case r == token.NumberSign:
		p.header.pre()
		p.state = stateHeader
	case r == token.EOF:
		p.reset()
	default:
		p.state = statePreOffset
		p.preOffset(r)
	}
}

func (p *Parser) preOffset(r rune) {
	fromText := p.fromText
	p.fromText = false
	switch {
	case token.IsHex(r):
		p.offset.Pre()
		p.offset.Accept(r)
		p.state = stateOffset
	case token.IsNewline(r):
	case r == token.EOF:
		p.reset()
	default:
		kind := token.ErrOffset
		if fromText || r == token.Vertical || r == token.Plus {
			kind = token.ErrMarker
		}
		p.error(fmt.Errorf("%w: unexpected %s at line start", kind, token.RuneString(r)))
		p.state = stateOffsetError
	}
}

func (p *Parser) offsetChar(r rune) {
	switch {
	case token.IsHex(r):
		p.offset.Accept(r)
	case r == token.Tilde:
		if err := p.offset.Post(); err != nil {
			p.error(err)
			p.state = stateOffsetError
			return
		}
		p.state = statePreKey
	case token.IsNewline(r):
		p.error(fmt.Errorf("%w: line break in offset", token.ErrPlacement))
		p.state = statePreOffset
	case r == token.EOF:
		p.reset()
	default:
		p.error(fmt.Errorf("%w: unexpected %s in offset", token.ErrOffset, token.RuneString(r)))
		p.state = stateOffsetError
	}
}

// resync skips the rest of a malformed line.
func (p *Parser) resync(r rune) {
	switch {
	case token.IsNewline(r):
		p.state = statePreOffset
	case r == token.EOF:
		p.reset()
	}
}

func (p *Parser) preKey(r rune) {
	switch {
	case r == token.Colon:
		p.error(fmt.Errorf("%w: empty key", token.ErrPlacement))
		p.state = stateKeyError
	case token.IsNewline(r):
		p.error(fmt.Errorf("%w: line break before key", token.ErrPlacement))
		p.state = statePreOffset
	case r == token.EOF:
		p.error(fmt.Errorf("%w: end of input before key", token.ErrPlacement))
		p.reset()
	default:
		p.h.BeginKey(p.offset.Number())
		p.state = stateKey
		p.key(r)
	}
}

func (p *Parser) key(r rune) {
	switch {
	case r == token.Colon:
		p.h.EndKey()
		p.state = statePreText
	case r == token.Backslash:
		p.state = stateKeyEscaped
	case token.IsNewline(r):
		p.emptyEntry()
		p.state = statePreOffset
	case r == token.EOF:
		p.emptyEntry()
		p.reset()
	default:
		p.h.KeyChar(r)
	}
}

// emptyEntry closes a key which ended without ':'.
func (p *Parser) emptyEntry() {
	p.h.EndKey()
	p.h.BeginText()
	p.h.EndText()
}

// keyEscaped takes the character after '\' literally, except that a line
// break cancels the escape and ends the key.
func (p *Parser) keyEscaped(r rune) {
	p.state = stateKey
	if token.IsNewline(r) || r == token.EOF {
		p.key(r)
		return
	}
	p.h.KeyChar(r)
}

func (p *Parser) preText(r rune) {
	p.h.BeginText()
	p.state = stateText
	p.text(r)
}

func (p *Parser) text(r rune) {
	switch {
	case token.IsNewline(r):
		p.textRow = p.row
		p.state = stateTextNewline
	case r == token.EOF:
		p.h.EndText()
		p.reset()
	default:
		p.h.TextChar(r)
	}
}

// textNewline looks past the line break ending a text line for a
// continuation marker.
func (p *Parser) textNewline(r rune) {
	switch {
	case r == token.Space:
	case token.IsNewline(r):
		if p.row == p.textRow {
			// second half of a CR/LF pair
			return
		}
		p.h.EndText()
		p.state = statePreOffset
		p.preOffset(r)
	case r == token.Vertical:
		for _, b := range p.brk {
			p.h.TextChar(b)
		}
		p.state = stateText
	case r == token.Plus:
		p.h.NextArraySlot()
		p.state = stateText
	case r == token.EOF:
		p.h.EndText()
		p.reset()
	default:
		p.h.EndText()
		p.state = statePreOffset
		p.fromText = true
		p.preOffset(r)
	}
}
