// Package token provides the lexical building blocks of the Tilde notation.
//
// [Newline] normalizes CR, LF, CRLF and LFCR line breaks into newline
// events, reporting the exact characters that made up each event.
//
// [Offset] accumulates the hexadecimal offset prefix of an entry line and
// enforces that offsets never skip past the available depth.
//
// Syntax errors found by the parser are reported as [SyntaxError] values
// wrapping one of the sentinel kinds [ErrDepth], [ErrOffset], [ErrPlacement]
// or [ErrMarker].
package token
