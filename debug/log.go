package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/tilde-format/tilde/encode"
	"github.com/signadot/tilde-format/tilde/ir"
)

type JSON any

// Tilde renders nodes in Tilde notation when formatted.
type Tilde []*ir.Node

func (t Tilde) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t, buf); err != nil {
		return fmt.Sprintf("[raw []*ir.Node] %v", []*ir.Node(t))
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, map[string][]string, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = Tilde{x}.String()
		case []*ir.Node:
			args[i] = Tilde(x).String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
