package model

import "fmt"

// RowCol is a zero-indexed coordinate of a cell in the rendered grid.
type RowCol struct {
	Row int
	Col int
}

func (p RowCol) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Shape holds the row and column counts of a grid.
type Shape struct {
	Rows int
	Cols int
}

func (s Shape) CountRows() int {
	return s.Rows
}

func (s Shape) CountColumns() int {
	return s.Cols
}
