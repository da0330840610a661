// Package encode renders Tilde trees.
//
// # Usage
//
//	nodes, err := parse.ParseString("0~a:b\n1~c:d\n")
//	if err != nil {
//	    return err
//	}
//	// back to Tilde notation
//	err = encode.Encode(nodes, os.Stdout)
//
//	// as XML, HTML, JSON, YAML or a flattened map
//	err = encode.Encode(nodes, os.Stdout, encode.EncodeFormat(format.XMLFormat))
//	err = encode.NewHTMLConverter().Convert(nodes, os.Stdout)
//
// Encoding in Tilde notation is the inverse of parsing for the trees the
// parser produces.
//
// # Related Packages
//
//   - github.com/signadot/tilde-format/tilde/ir - Tree representation
//   - github.com/signadot/tilde-format/tilde/parse - Parse text to trees
package encode
