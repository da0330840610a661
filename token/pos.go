package token

import "fmt"

// Pos is a 1-based row and column.
type Pos struct {
	Row int
	Col int
}

func (p Pos) LineCol() (int, int) {
	return p.Row, p.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("line=%d, col=%d", p.Row, p.Col)
}
