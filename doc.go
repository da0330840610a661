// Package tilde provides high level operations on Tilde documents:
// structural matching, expression based selection, JSON patching and
// diffing.
//
// Documents are parsed with [github.com/signadot/tilde-format/tilde/parse]
// and written with [github.com/signadot/tilde-format/tilde/encode].
package tilde
