package ir

import (
	"errors"
	"fmt"
)

var (
	ErrPath     = errors.New("bad path")
	ErrPathGet  = fmt.Errorf("%w: wildcard in get", ErrPath)
	ErrNotFound = errors.New("not found")
)
