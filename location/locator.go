package location

import (
	"iter"

	"github.com/dasdy/tabstyle/grid"
)

// Locator is a factory for objects that find things in a table.
type Locator struct{}

// Content locates cells whose text equals text.
func (Locator) Content(text string) ByContent {
	return ByContent{text: text}
}

// Column locates columns whose header equals name.
func (Locator) Column(name string) ByColumnName {
	return ByColumnName{name: name}
}

type ByContent struct {
	text string
}

func (b ByContent) Cells(records grid.Records) iter.Seq[grid.Entity] {
	return func(yield func(grid.Entity) bool) {
		rows, cols := records.CountRows(), records.CountColumns()

		for row := range rows {
			for col := range cols {
				if records.Cell(row, col) != b.text {
					continue
				}

				if !yield(grid.Cell{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// ByColumnName treats the first row as the header.
type ByColumnName struct {
	name string
}

func (b ByColumnName) Cells(records grid.Records) iter.Seq[grid.Entity] {
	return func(yield func(grid.Entity) bool) {
		if records.CountRows() == 0 {
			return
		}

		for col := range records.CountColumns() {
			if records.Cell(0, col) != b.name {
				continue
			}

			if !yield(grid.Column(col)) {
				return
			}
		}
	}
}
