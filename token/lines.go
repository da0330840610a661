package token

import "strings"

// SplitLines splits s into lines using the same break rules as [Newline].
// breaks[i] holds the exact characters between lines[i] and lines[i+1], so
// len(lines) == len(breaks)+1.
func SplitLines(s string) (lines, breaks []string) {
	nl := &Newline{}
	cur := &strings.Builder{}
	flush := func(ev []rune) {
		lines = append(lines, cur.String())
		breaks = append(breaks, string(ev))
		cur.Reset()
	}
	for _, r := range s {
		if ev := nl.Accept(r); len(ev) != 0 {
			flush(ev)
		}
		if !IsNewline(r) {
			cur.WriteRune(r)
		}
	}
	if ev := nl.Accept(EOF); len(ev) != 0 {
		flush(ev)
	}
	lines = append(lines, cur.String())
	return lines, breaks
}
