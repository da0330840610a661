// Package tree rebuilds the nested structure of a Tilde document from the
// flat stream of entries produced by the parser.
//
// Each entry carries an offset. An entry at offset 0 is a top level node.
// An entry at offset o > 0 is attached relative to the most recently
// attached node: as its child when o is one more than its offset, and
// otherwise as a sibling of its nearest ancestor at offset o. Entries for
// which no such ancestor exists are dropped and reported as a [Drop].
//
// [Builder.Export] converts the result to []*ir.Node.
package tree
