package token

import "strconv"

// RuneString renders r for trace output.
func RuneString(r rune) string {
	if r == EOF {
		return "EOF"
	}
	return strconv.QuoteRune(r)
}
