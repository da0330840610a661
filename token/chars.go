package token

const (
	CR         = '\r'
	LF         = '\n'
	NumberSign = '#'
	Tilde      = '~'
	Colon      = ':'
	Vertical   = '|'
	Plus       = '+'
	Space      = ' '
	Backslash  = '\\'

	// EOF is the end of stream sentinel. It is not a valid character so
	// inputs containing NUL are read as text.
	EOF rune = -1
)

func IsNewline(r rune) bool {
	return r == CR || r == LF
}

func IsHex(r rune) bool {
	switch {
	case '0' <= r && r <= '9':
		return true
	case 'a' <= r && r <= 'f':
		return true
	case 'A' <= r && r <= 'F':
		return true
	}
	return false
}
