// Package ir provides the public tree value produced by parsing Tilde text.
//
// A document is a []*Node. Each node has a name, the text values recorded
// for that name, and its children in document order.
//
// # Paths
//
// Nodes are addressed with paths such as
//
//	$.b.a.a       // the a under the a under the top level b
//	$.a[1]        // the second top level node named a
//	$..a          // every node named a
//	$.'x.y'       // a name containing a '.'
//
// # Map conversion
//
// [ToMap] flattens a document into a map from joined name paths to text
// values.
package ir
