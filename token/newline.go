package token

// Newline recognizes line break events in a stream of characters.
//
// A break is one of CR, LF, CRLF or LFCR. Since a lone CR may still be
// followed by its LF partner, an event is only known to be complete when
// the following character arrives, so Accept reports the characters of the
// event that the given character completes.
type Newline struct {
	pending [2]rune
	n       int
	out     [2]rune
}

// Accept feeds r and returns the characters of the newline event completed
// by r, or nil.  The returned slice is only valid until the next call.
//
// A pending CR or LF is completed by any character other than its partner.
// A pending pair is completed by any character at all, so LF CR LF CR gives
// two events of two characters each.
func (nl *Newline) Accept(r rune) []rune {
	switch nl.n {
	case 0:
		nl.restart(r)
		return nil
	case 1:
		if IsNewline(r) && r != nl.pending[0] {
			nl.pending[1] = r
			nl.n = 2
			return nil
		}
		nl.out[0] = nl.pending[0]
		nl.restart(r)
		return nl.out[:1]
	default:
		nl.out[0], nl.out[1] = nl.pending[0], nl.pending[1]
		nl.restart(r)
		return nl.out[:2]
	}
}

// Pending reports whether a line break has been seen but not yet reported.
func (nl *Newline) Pending() bool {
	return nl.n != 0
}

func (nl *Newline) Reset() {
	nl.n = 0
}

func (nl *Newline) restart(r rune) {
	nl.n = 0
	if IsNewline(r) {
		nl.pending[0] = r
		nl.n = 1
	}
}
