// Package libdiff compares Tilde trees.
//
// Nodes are matched by name level by level. Unmatched nodes are reported
// as added or removed, and matched nodes whose texts differ are reported
// as changed with a character level diff of each text.
//
// # Related Packages
//
//   - github.com/sergi/go-diff/diffmatchpatch - text diffs
//   - github.com/signadot/tilde-format/tilde/ir - Tree representation
package libdiff
