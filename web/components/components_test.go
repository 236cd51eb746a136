package components_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/dasdy/tabstyle/border"
	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/settings"
	"github.com/dasdy/tabstyle/table"
	"github.com/dasdy/tabstyle/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSSColor(t *testing.T) {
	tests := []struct {
		name  string
		color grid.Color
		want  string
		ok    bool
	}{
		{name: "hex", color: "#FF8800", want: "#ff8800", ok: true},
		{name: "short hex", color: "#abc", want: "#abc", ok: true},
		{name: "system color", color: "9", want: "#ff0000", ok: true},
		{name: "black", color: "0", want: "#000000", ok: true},
		{name: "cube red", color: "196", want: "#ff0000", ok: true},
		{name: "cube mix", color: "110", want: "#87afd7", ok: true},
		{name: "darkest gray", color: "232", want: "#080808", ok: true},
		{name: "lightest gray", color: "255", want: "#eeeeee", ok: true},
		{name: "empty", color: "", ok: false},
		{name: "out of range", color: "256", ok: false},
		{name: "name", color: "red", ok: false},
		{name: "bad hex", color: "#12345", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := components.CSSColor(tt.color)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellStyle(t *testing.T) {
	t.Run("uncolored sides use the default border", func(t *testing.T) {
		style := components.CellStyle(grid.Border[grid.Color]{})

		assert.Equal(t, 4, strings.Count(style, "1px solid #808080"))
	})

	t.Run("sides are translated, corners ignored", func(t *testing.T) {
		style := components.CellStyle(border.TopLeft(border.New().Top("9").Left("#00ff00"), "13").Descriptor())

		assert.Contains(t, style, "border-top: 1px solid #ff0000")
		assert.Contains(t, style, "border-left: 1px solid #00ff00")
		assert.Contains(t, style, "border-bottom: 1px solid #808080")
		assert.NotContains(t, style, "#ff00ff")
	})
}

func TestTable(t *testing.T) {
	tbl := table.New([][]string{{"name", "city"}, {"alice", "paris"}}).
		Modify(settings.Cell(1, 1), border.New().Right("11"))

	var buf bytes.Buffer

	require.NoError(t, components.Table(tbl).Render(context.Background(), &buf))

	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<table class="tabstyle"`))
	assert.Equal(t, 2, strings.Count(out, "<tr>"))
	assert.Equal(t, 2, strings.Count(out, "<th "))
	assert.Equal(t, 2, strings.Count(out, "<td "))
	assert.Equal(t, 1, strings.Count(out, "border-right: 1px solid #ffff00"))
	assert.Contains(t, out, ">paris</td>")
}

func TestPage(t *testing.T) {
	t.Run("wraps the body", func(t *testing.T) {
		body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<p>hi</p>")

			return err
		})

		var buf bytes.Buffer

		require.NoError(t, components.Page("a & b", body).Render(context.Background(), &buf))

		assert.Contains(t, buf.String(), "<title>a &amp; b</title>")
		assert.Contains(t, buf.String(), "<p>hi</p></body></html>")
	})

	t.Run("propagates body errors", func(t *testing.T) {
		expected := errors.New("boom")
		body := templ.ComponentFunc(func(context.Context, io.Writer) error {
			return expected
		})

		err := components.Page("t", body).Render(context.Background(), io.Discard)

		require.ErrorIs(t, err, expected)
	})
}
