// Package debug provides tracing controlled by environment variables.
//
//	TILDE_DEBUG_PARSE  parser state transitions, one line per character
//	TILDE_DEBUG_BUILD  tree builder attachments
//	TILDE_DEBUG_DROP   entries dropped for lack of a parent
//	TILDE_DEBUG_EVAL   selection expressions
//	TILDE_DEBUG_PATCH  json patches
//	TILDE_DEBUG_DIFF   tree diffs
//
// Output goes to stderr.
package debug
