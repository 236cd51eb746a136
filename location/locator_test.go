package location_test

import (
	"slices"
	"testing"

	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/location"
	"github.com/stretchr/testify/assert"
)

var records = grid.StringRecords{
	{"name", "city", "name"},
	{"alice", "paris", "x"},
	{"bob", "paris"},
}

func TestByContent(t *testing.T) {
	t.Run("finds every matching cell", func(t *testing.T) {
		got := slices.Collect(location.Locator{}.Content("paris").Cells(records))

		assert.Equal(t, []grid.Entity{grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 2, Col: 1}}, got)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, slices.Collect(location.Locator{}.Content("london").Cells(records)))
	})

	t.Run("missing cells match the empty string", func(t *testing.T) {
		got := slices.Collect(location.Locator{}.Content("").Cells(records))

		assert.Equal(t, []grid.Entity{grid.Cell{Row: 2, Col: 2}}, got)
	})
}

func TestByColumnName(t *testing.T) {
	t.Run("finds every column with the header", func(t *testing.T) {
		got := slices.Collect(location.Locator{}.Column("name").Cells(records))

		assert.Equal(t, []grid.Entity{grid.Column(0), grid.Column(2)}, got)
	})

	t.Run("only the header row is searched", func(t *testing.T) {
		assert.Empty(t, slices.Collect(location.Locator{}.Column("alice").Cells(records)))
	})

	t.Run("empty records", func(t *testing.T) {
		assert.Empty(t, slices.Collect(location.Locator{}.Column("name").Cells(grid.StringRecords{})))
	})
}
