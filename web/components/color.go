package components

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dasdy/tabstyle/grid"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// xterm's 16 system colors.
var systemColors = [16]string{
	"#000000", "#800000", "#008000", "#808000", "#000080", "#800080", "#008080", "#c0c0c0",
	"#808080", "#ff0000", "#00ff00", "#ffff00", "#0000ff", "#ff00ff", "#00ffff", "#ffffff",
}

var cubeLevels = [6]int{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// CSSColor converts a lipgloss color (hex or ANSI 0-255) to a CSS hex color.
func CSSColor(c grid.Color) (string, bool) {
	s := strings.TrimSpace(string(c))

	if hexColor.MatchString(s) {
		return strings.ToLower(s), true
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}

	switch {
	case n < 16:
		return systemColors[n], true
	case n < 232:
		n -= 16

		return fmt.Sprintf("#%02x%02x%02x", cubeLevels[n/36], cubeLevels[(n/6)%6], cubeLevels[n%6]), true
	default:
		gray := 8 + 10*(n-232)

		return fmt.Sprintf("#%02x%02x%02x", gray, gray, gray), true
	}
}
