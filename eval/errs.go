package eval

import "errors"

var (
	ErrCompile = errors.New("cannot compile expression")
	ErrEval    = errors.New("evaluation error")
)
