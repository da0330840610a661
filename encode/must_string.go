package encode

import (
	"bytes"

	"github.com/signadot/tilde-format/tilde/ir"
)

func MustString(nodes []*ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(nodes, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
