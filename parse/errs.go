package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/tilde-format/tilde/token"
)

// ErrorList holds the syntax errors of one input in order of occurrence.
type ErrorList []*token.SyntaxError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "%d syntax errors:", len(l))
	for _, e := range l {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}

func (l ErrorList) Unwrap() []error {
	res := make([]error, len(l))
	for i, e := range l {
		res[i] = e
	}
	return res
}
