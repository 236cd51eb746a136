package grid

// Dimensions is anything that knows the row and column counts of a grid.
type Dimensions interface {
	CountRows() int
	CountColumns() int
}

// Records is the tabular data a configuration is applied to.
type Records interface {
	Dimensions
	Cell(row, col int) string
}

// StringRecords is a row-major table of cell texts. Rows may be ragged;
// missing cells read as empty strings.
type StringRecords [][]string

func (r StringRecords) CountRows() int {
	return len(r)
}

func (r StringRecords) CountColumns() int {
	cols := 0
	for _, row := range r {
		cols = max(cols, len(row))
	}

	return cols
}

func (r StringRecords) Cell(row, col int) string {
	if row < 0 || row >= len(r) || col < 0 || col >= len(r[row]) {
		return ""
	}

	return r[row][col]
}
