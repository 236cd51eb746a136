package grid_test

import (
	"slices"
	"testing"

	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/model"
	"github.com/stretchr/testify/assert"
)

func TestEntityIter(t *testing.T) {
	tests := []struct {
		name   string
		entity grid.Entity
		rows   int
		cols   int
		want   []model.RowCol
	}{
		{
			name:   "global covers the grid row by row",
			entity: grid.Global{},
			rows:   2,
			cols:   2,
			want:   []model.RowCol{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
		},
		{
			name:   "global on an empty grid",
			entity: grid.Global{},
			rows:   0,
			cols:   3,
		},
		{
			name:   "row",
			entity: grid.Row(1),
			rows:   2,
			cols:   3,
			want:   []model.RowCol{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
		},
		{
			name:   "row beyond the data",
			entity: grid.Row(5),
			rows:   2,
			cols:   3,
		},
		{
			name:   "negative row",
			entity: grid.Row(-1),
			rows:   2,
			cols:   3,
		},
		{
			name:   "column",
			entity: grid.Column(2),
			rows:   2,
			cols:   3,
			want:   []model.RowCol{{Row: 0, Col: 2}, {Row: 1, Col: 2}},
		},
		{
			name:   "column beyond the data",
			entity: grid.Column(3),
			rows:   2,
			cols:   3,
		},
		{
			name:   "cell",
			entity: grid.Cell{Row: 1, Col: 0},
			rows:   2,
			cols:   3,
			want:   []model.RowCol{{Row: 1, Col: 0}},
		},
		{
			name:   "cell beyond the data",
			entity: grid.Cell{Row: 2, Col: 0},
			rows:   2,
			cols:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(tt.entity.Iter(tt.rows, tt.cols))

			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("stops when the consumer stops", func(t *testing.T) {
		var got []model.RowCol

		for pos := range (grid.Global{}).Iter(3, 3) {
			got = append(got, pos)
			if len(got) == 2 {
				break
			}
		}

		assert.Len(t, got, 2)
	})
}

func TestStringRecords(t *testing.T) {
	records := grid.StringRecords{
		{"name", "city"},
		{"alice"},
		{"bob", "paris", "extra"},
	}

	assert.Equal(t, 3, records.CountRows())
	assert.Equal(t, 3, records.CountColumns())
	assert.Equal(t, "paris", records.Cell(2, 1))
	assert.Empty(t, records.Cell(1, 1))
	assert.Empty(t, records.Cell(7, 0))
	assert.Empty(t, records.Cell(0, -1))
	assert.Equal(t, 0, grid.StringRecords{}.CountColumns())
}
