package settings

import (
	"iter"

	"github.com/dasdy/tabstyle/grid"
)

// CellOption changes the configuration of the cells selected by an entity.
type CellOption interface {
	ChangeCell(records grid.Records, cfg *grid.Config, entity grid.Entity)
}

// TableOption changes the configuration of a whole table.
type TableOption interface {
	ChangeTable(records grid.Records, cfg *grid.Config)
}

// Object locates entities within records.
type Object interface {
	Cells(records grid.Records) iter.Seq[grid.Entity]
}

type entityObject struct {
	entity grid.Entity
}

func (o entityObject) Cells(grid.Records) iter.Seq[grid.Entity] {
	return func(yield func(grid.Entity) bool) {
		yield(o.entity)
	}
}

func All() Object {
	return entityObject{grid.Global{}}
}

func Row(i int) Object {
	return entityObject{grid.Row(i)}
}

func Column(i int) Object {
	return entityObject{grid.Column(i)}
}

func Cell(row, col int) Object {
	return entityObject{grid.Cell{Row: row, Col: col}}
}

// Modifier applies cell options to every entity of an object.
type Modifier struct {
	object  Object
	options []CellOption
}

func Modify(obj Object) Modifier {
	return Modifier{object: obj}
}

// With returns a copy of m with the options appended.
func (m Modifier) With(opts ...CellOption) Modifier {
	m.options = append(append([]CellOption(nil), m.options...), opts...)

	return m
}

func (m Modifier) ChangeTable(records grid.Records, cfg *grid.Config) {
	for entity := range m.object.Cells(records) {
		for _, opt := range m.options {
			opt.ChangeCell(records, cfg, entity)
		}
	}
}
