// Package format names the output formats of Tilde documents.
//
// # Usage
//
//	f, err := format.ParseFormat("xml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f.Suffix()) // .xml
//
// # Related Packages
//
//   - github.com/signadot/tilde-format/tilde/encode - Encode trees in a format
package format
