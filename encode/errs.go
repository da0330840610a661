package encode

import (
	"errors"
	"fmt"
)

var (
	ErrEncoding    = errors.New("encoding error")
	ErrUnencodable = fmt.Errorf("%w: unencodable", ErrEncoding)
	ErrDecoding    = errors.New("decoding error")
)
