// Package parse parses Tilde text.
//
// # Usage
//
//	nodes, err := parse.Parse(data)
//	if err != nil {
//	    // err is an ErrorList of recoverable syntax errors, nodes
//	    // holds everything that could be parsed.
//	}
//
//	// collect header lines
//	var header []string
//	nodes, err = parse.Parse(data, parse.ParseHeader(&header))
//
// [Parser] is the underlying character at a time state machine. It emits
// events to a [Handler], normally a tree.Builder.
//
// # Related Packages
//
//   - github.com/signadot/tilde-format/tilde/ir - public tree value
//   - github.com/signadot/tilde-format/tilde/tree - tree reconstruction
//   - github.com/signadot/tilde-format/tilde/encode - encode trees
package parse
