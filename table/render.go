package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/model"
)

// Render draws the table with box-drawing borders, one space of padding on
// each side of a cell. Border glyphs are colored from the configuration
// through r, or lipgloss' default renderer when r is nil. Newlines inside
// cells are rendered as spaces.
func (t *Table) Render(r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	rows, cols := t.records.CountRows(), t.records.CountColumns()
	if rows == 0 || cols == 0 {
		return ""
	}

	p := painter{renderer: r, styles: make(map[grid.Color]lipgloss.Style)}
	widths := t.columnWidths()

	lines := make([]string, 0, 2*rows+1)
	for line := 0; line <= rows; line++ {
		lines = append(lines, t.horizontalLine(&p, line, widths))
		if line < rows {
			lines = append(lines, t.dataLine(&p, line, widths))
		}
	}

	return strings.Join(lines, "\n")
}

type painter struct {
	renderer *lipgloss.Renderer
	styles   map[grid.Color]lipgloss.Style
}

func (p *painter) paint(s string, c grid.Color) string {
	if c == "" {
		return s
	}

	style, ok := p.styles[c]
	if !ok {
		style = p.renderer.NewStyle().Foreground(c)
		p.styles[c] = style
	}

	return style.Render(s)
}

func cellText(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

func (t *Table) columnWidths() []int {
	widths := make([]int, t.records.CountColumns())
	for row := range t.records.CountRows() {
		for col := range widths {
			widths[col] = max(widths[col], ansi.StringWidth(cellText(t.records.Cell(row, col))))
		}
	}

	return widths
}

// horizontalLine draws the border line above row `line`; line == rows is the bottom border.
func (t *Table) horizontalLine(p *painter, line int, widths []int) string {
	bs := t.cfg.Borders()
	rows, cols := t.records.CountRows(), len(widths)

	fill := bs.Top
	if line == rows {
		fill = bs.Bottom
	}

	var b strings.Builder
	for vline := 0; vline <= cols; vline++ {
		b.WriteString(p.paint(intersectionGlyph(bs, line, vline, rows, cols), t.intersectionColor(line, vline)))

		if vline < cols {
			b.WriteString(p.paint(strings.Repeat(fill, widths[vline]+2), t.horizontalColor(line, vline)))
		}
	}

	return b.String()
}

func (t *Table) dataLine(p *painter, row int, widths []int) string {
	bs := t.cfg.Borders()
	cols := len(widths)

	var b strings.Builder
	for vline := 0; vline <= cols; vline++ {
		glyph := bs.Left
		if vline == cols {
			glyph = bs.Right
		}

		b.WriteString(p.paint(glyph, t.verticalColor(row, vline)))

		if vline < cols {
			text := cellText(t.records.Cell(row, vline))
			b.WriteString(" ")
			b.WriteString(text)
			b.WriteString(strings.Repeat(" ", widths[vline]-ansi.StringWidth(text)+1))
		}
	}

	return b.String()
}

func intersectionGlyph(bs lipgloss.Border, line, vline, rows, cols int) string {
	left, middle, right := bs.MiddleLeft, bs.Middle, bs.MiddleRight

	switch line {
	case 0:
		left, middle, right = bs.TopLeft, bs.MiddleTop, bs.TopRight
	case rows:
		left, middle, right = bs.BottomLeft, bs.MiddleBottom, bs.BottomRight
	}

	switch vline {
	case 0:
		return left
	case cols:
		return right
	default:
		return middle
	}
}

type lookup struct {
	row, col int
	slot     grid.Slot
}

// color returns the first present slot among the candidates. A present
// empty color wins over later candidates and renders uncolored.
func (t *Table) color(candidates ...lookup) grid.Color {
	rows, cols := t.records.CountRows(), t.records.CountColumns()

	for _, l := range candidates {
		if l.row < 0 || l.col < 0 || l.row >= rows || l.col >= cols {
			continue
		}

		b, _ := t.cfg.BorderColor(model.RowCol{Row: l.row, Col: l.col})
		if c, ok := b.Get(l.slot); ok {
			return c
		}
	}

	return ""
}

// A line shared by two cells takes the color of the cell below (or right of) it first.

func (t *Table) horizontalColor(line, col int) grid.Color {
	return t.color(
		lookup{line, col, grid.SlotTop},
		lookup{line - 1, col, grid.SlotBottom},
	)
}

func (t *Table) verticalColor(row, vline int) grid.Color {
	return t.color(
		lookup{row, vline, grid.SlotLeft},
		lookup{row, vline - 1, grid.SlotRight},
	)
}

func (t *Table) intersectionColor(line, vline int) grid.Color {
	return t.color(
		lookup{line, vline, grid.SlotTopLeft},
		lookup{line, vline - 1, grid.SlotTopRight},
		lookup{line - 1, vline, grid.SlotBottomLeft},
		lookup{line - 1, vline - 1, grid.SlotBottomRight},
	)
}
