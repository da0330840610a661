package libdiff

import "errors"

var ErrPatch = errors.New("cannot patch")
