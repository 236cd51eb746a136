package grid

import (
	"iter"

	"github.com/dasdy/tabstyle/model"
)

// Entity is a logical selection of cells which expands to concrete
// coordinates once the grid dimensions are known. Expansion is row-major
// and positions outside the grid are never produced.
type Entity interface {
	Iter(rows, cols int) iter.Seq[model.RowCol]
}

// Global selects every cell.
type Global struct{}

// Row selects every cell of one row.
type Row int

// Column selects every cell of one column.
type Column int

// Cell selects a single cell.
type Cell model.RowCol

func (Global) Iter(rows, cols int) iter.Seq[model.RowCol] {
	return func(yield func(model.RowCol) bool) {
		for row := range rows {
			for col := range cols {
				if !yield(model.RowCol{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

func (r Row) Iter(rows, cols int) iter.Seq[model.RowCol] {
	return func(yield func(model.RowCol) bool) {
		if r < 0 || int(r) >= rows {
			return
		}

		for col := range cols {
			if !yield(model.RowCol{Row: int(r), Col: col}) {
				return
			}
		}
	}
}

func (c Column) Iter(rows, cols int) iter.Seq[model.RowCol] {
	return func(yield func(model.RowCol) bool) {
		if c < 0 || int(c) >= cols {
			return
		}

		for row := range rows {
			if !yield(model.RowCol{Row: row, Col: int(c)}) {
				return
			}
		}
	}
}

func (c Cell) Iter(rows, cols int) iter.Seq[model.RowCol] {
	return func(yield func(model.RowCol) bool) {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return
		}

		yield(model.RowCol(c))
	}
}
