package border

import (
	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/model"
)

// Apply merges desc into cfg at every position the entity selects.
func Apply(desc grid.Border[grid.Color], entity grid.Entity, dims grid.Dimensions, cfg *grid.Config) {
	for pos := range entity.Iter(dims.CountRows(), dims.CountColumns()) {
		applyAt(cfg, pos, desc)
	}
}

// ApplyAll merges desc into cfg at every position of the grid.
func ApplyAll(desc grid.Border[grid.Color], dims grid.Dimensions, cfg *grid.Config) {
	rows, cols := dims.CountRows(), dims.CountColumns()

	for row := range rows {
		for col := range cols {
			applyAt(cfg, model.RowCol{Row: row, Col: col}, desc)
		}
	}
}

func applyAt(cfg *grid.Config, pos model.RowCol, desc grid.Border[grid.Color]) {
	cfg.SetBorderColor(pos, desc)
}

// ChangeCell applies the builder's colors to the cells selected by entity.
func (b Builder[T, B, L, R]) ChangeCell(records grid.Records, cfg *grid.Config, entity grid.Entity) {
	Apply(b.inner, entity, records, cfg)
}

// ChangeTable applies the builder's colors to every cell of the table.
func (b Builder[T, B, L, R]) ChangeTable(records grid.Records, cfg *grid.Config) {
	ApplyAll(b.inner, records, cfg)
}

// Descriptor is a finished set of border colors usable as a table or cell option.
type Descriptor grid.Border[grid.Color]

func (d Descriptor) ChangeCell(records grid.Records, cfg *grid.Config, entity grid.Entity) {
	Apply(grid.Border[grid.Color](d), entity, records, cfg)
}

func (d Descriptor) ChangeTable(records grid.Records, cfg *grid.Config) {
	ApplyAll(grid.Border[grid.Color](d), records, cfg)
}
