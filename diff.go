package tilde

import (
	"github.com/signadot/tilde-format/tilde/ir"
	"github.com/signadot/tilde-format/tilde/libdiff"
)

// Diff returns the changes turning from into to.
func Diff(from, to []*ir.Node) []libdiff.Change {
	return libdiff.Diff(from, to)
}
