package parse

// Handler receives the events of a [Parser].
//
// BeginKey precedes the KeyChar calls and EndKey of an entry, EndKey
// precedes BeginText, and every BeginText is followed by an EndText, also
// at the end of input and when a malformed line is skipped.
// NextArraySlot ends the current text and starts another one for the same
// key and offset.
type Handler interface {
	BeginKey(offset int)
	KeyChar(r rune)
	EndKey()
	BeginText()
	TextChar(r rune)
	NextArraySlot()
	EndText()
	// Error reports a recoverable syntax error. err is a
	// *token.SyntaxError.
	Error(row, col int, err error)
}
