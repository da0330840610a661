package tilde

import "errors"

var ErrPatch = errors.New("cannot patch")
