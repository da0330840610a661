package tilde

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/tilde-format/tilde/debug"
	"github.com/signadot/tilde-format/tilde/encode"
	"github.com/signadot/tilde-format/tilde/format"
	"github.com/signadot/tilde-format/tilde/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to the JSON form of doc, a list of
// objects with keys name, text and value. For example
//
//	[{"op": "add", "path": "/0/text/-", "value": "x"}]
//
// appends the text x to the first top level node.
func Patch(doc []*ir.Node, patch []byte) ([]*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if doc == nil {
		doc = []*ir.Node{}
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch: applying %d ops to %s\n", len(ops), debug.Tilde(doc))
	}
	res, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	nodes, err := encode.Decode(res, format.JSONFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: result is not a document: %w", ErrPatch, err)
	}
	return nodes, nil
}
