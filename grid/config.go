package grid

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/dasdy/tabstyle/model"
)

// Config is the styling configuration shared by everything applied to a table.
// It is not safe for concurrent use; callers must hold exclusive access while
// applying options to it.
type Config struct {
	borders      lipgloss.Border
	borderColors map[model.RowCol]Border[Color]
}

func NewConfig() *Config {
	return &Config{
		borders:      lipgloss.NormalBorder(),
		borderColors: make(map[model.RowCol]Border[Color]),
	}
}

// Borders returns the glyph set used when rendering.
func (c *Config) Borders() lipgloss.Border {
	return c.borders
}

func (c *Config) SetBorders(b lipgloss.Border) {
	c.borders = b
}

// SetBorderColor merges the present attributes of b into the colors stored
// at pos. Attributes absent from b keep their previous value.
func (c *Config) SetBorderColor(pos model.RowCol, b Border[Color]) {
	if b.IsEmpty() {
		return
	}

	c.borderColors[pos] = c.borderColors[pos].Merge(b)
}

// BorderColor returns the colors stored at pos.
func (c *Config) BorderColor(pos model.RowCol) (Border[Color], bool) {
	b, ok := c.borderColors[pos]

	return b, ok
}

func (c *Config) RemoveBorderColor(pos model.RowCol) {
	delete(c.borderColors, pos)
}

// Len is the number of positions holding border colors.
func (c *Config) Len() int {
	return len(c.borderColors)
}

// BorderColors iterates over stored colors in row-major order.
func (c *Config) BorderColors() iter.Seq2[model.RowCol, Border[Color]] {
	positions := slices.SortedFunc(maps.Keys(c.borderColors), func(a, b model.RowCol) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})

	return func(yield func(model.RowCol, Border[Color]) bool) {
		for _, pos := range positions {
			if !yield(pos, c.borderColors[pos]) {
				return
			}
		}
	}
}
