package settings_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/dasdy/tabstyle/border"
	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/model"
	"github.com/dasdy/tabstyle/settings"
	"github.com/stretchr/testify/assert"
)

// slots spells out a border by the colors of its present slots.
type slots = map[grid.Slot]grid.Color

// recordingOption remembers every entity it was applied to.
type recordingOption struct {
	entities *[]grid.Entity
}

func (o recordingOption) ChangeCell(_ grid.Records, _ *grid.Config, entity grid.Entity) {
	*o.entities = append(*o.entities, entity)
}

func TestObjects(t *testing.T) {
	records := grid.StringRecords{{"a"}}

	tests := []struct {
		name   string
		object settings.Object
		want   grid.Entity
	}{
		{"all", settings.All(), grid.Global{}},
		{"row", settings.Row(3), grid.Row(3)},
		{"column", settings.Column(1), grid.Column(1)},
		{"cell", settings.Cell(2, 4), grid.Cell{Row: 2, Col: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []grid.Entity{tt.want}, slices.Collect(tt.object.Cells(records)))
		})
	}
}

func TestModify(t *testing.T) {
	records := grid.StringRecords{{"a", "b"}, {"c", "d"}}

	t.Run("applies every option to the object", func(t *testing.T) {
		cfg := grid.NewConfig()

		settings.Modify(settings.Row(1)).
			With(border.New().Top(grid.Color("9"))).
			With(border.New().Bottom(grid.Color("12"))).
			ChangeTable(records, cfg)

		assert.Equal(t, map[model.RowCol]grid.Border[grid.Color]{
			{Row: 1, Col: 0}: grid.BorderOf(slots{grid.SlotTop: "9", grid.SlotBottom: "12"}),
			{Row: 1, Col: 1}: grid.BorderOf(slots{grid.SlotTop: "9", grid.SlotBottom: "12"}),
		}, maps.Collect(cfg.BorderColors()))
	})

	t.Run("with does not share options between copies", func(t *testing.T) {
		var first, second []grid.Entity

		base := settings.Modify(settings.Cell(0, 0))
		a := base.With(recordingOption{&first})
		b := base.With(recordingOption{&second})

		a.ChangeTable(records, grid.NewConfig())

		assert.Len(t, first, 1)
		assert.Empty(t, second)

		b.ChangeTable(records, grid.NewConfig())

		assert.Len(t, second, 1)
	})
}
