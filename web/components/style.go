package components

import (
	"fmt"
	"strings"

	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/model"
	"github.com/dasdy/tabstyle/table"
)

const defaultBorder = "1px solid #808080"

// CellStyle is the inline CSS for one cell. CSS has no notion of a colored
// corner, so only sides are translated.
func CellStyle(b grid.Border[grid.Color]) string {
	sides := []struct {
		property string
		slot     grid.Slot
	}{
		{"border-top", grid.SlotTop},
		{"border-bottom", grid.SlotBottom},
		{"border-left", grid.SlotLeft},
		{"border-right", grid.SlotRight},
	}

	parts := make([]string, 0, len(sides)+1)
	parts = append(parts, "padding: 0 0.5em")

	for _, side := range sides {
		value := defaultBorder

		c, _ := b.Get(side.slot)
		if css, ok := CSSColor(c); ok {
			value = "1px solid " + css
		}

		parts = append(parts, fmt.Sprintf("%s: %s", side.property, value))
	}

	return strings.Join(parts, "; ")
}

func cellStyle(t *table.Table, row, col int) string {
	colors, _ := t.Config().BorderColor(model.RowCol{Row: row, Col: col})

	return CellStyle(colors)
}
