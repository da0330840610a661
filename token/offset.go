package token

import (
	"fmt"
	"strconv"
)

// Offset tracks the offset prefix of entry lines.
//
// The available depth starts at 0 and after accepting offset o becomes
// max(available, o+1). An offset larger than the available depth is
// rejected.
type Offset struct {
	available int
	number    int
	digits    []byte
}

// Pre starts a new offset.
func (o *Offset) Pre() {
	o.digits = o.digits[:0]
}

// Accept appends a hexadecimal digit.
func (o *Offset) Accept(r rune) {
	o.digits = append(o.digits, byte(r))
}

// Post parses the accumulated digits. On success the value becomes the
// current offset and the available depth is raised.
func (o *Offset) Post() error {
	n, err := strconv.ParseUint(string(o.digits), 16, strconv.IntSize-1)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOffset, o.digits, err)
	}
	if int(n) > o.available {
		return fmt.Errorf("%w: offset %x exceeds available depth %x", ErrDepth, n, o.available)
	}
	o.number = int(n)
	o.available = max(o.available, o.number+1)
	return nil
}

// Number is the last accepted offset.
func (o *Offset) Number() int {
	return o.number
}

// Available is the largest offset that would currently be accepted.
func (o *Offset) Available() int {
	return o.available
}

func (o *Offset) Reset() {
	o.available = 0
	o.number = 0
	o.digits = o.digits[:0]
}
