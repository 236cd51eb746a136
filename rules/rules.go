package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dasdy/tabstyle/border"
	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/location"
	"github.com/dasdy/tabstyle/settings"
	"github.com/dasdy/tabstyle/table"
)

var ErrInvalidTarget = errors.New("invalid target")

// Rule colors the borders of the cells a target expression selects.
// Colors are applied on top of the named preset, Fill first.
type Rule struct {
	Target string `mapstructure:"target"`
	Preset string `mapstructure:"preset"`
	Fill   string `mapstructure:"fill"`

	Top         string `mapstructure:"top"`
	Bottom      string `mapstructure:"bottom"`
	Left        string `mapstructure:"left"`
	Right       string `mapstructure:"right"`
	TopLeft     string `mapstructure:"top_left"`
	TopRight    string `mapstructure:"top_right"`
	BottomLeft  string `mapstructure:"bottom_left"`
	BottomRight string `mapstructure:"bottom_right"`
}

// PresetSource resolves named border colors.
type PresetSource interface {
	Load(name string) (grid.Border[grid.Color], error)
}

// explicit holds the slots the rule names. Flags and config keys cannot tell
// an empty value from a missing one, so empty strings are left out.
func (r Rule) explicit() grid.Border[grid.Color] {
	colors := map[grid.Slot]string{
		grid.SlotTop:         r.Top,
		grid.SlotBottom:      r.Bottom,
		grid.SlotLeft:        r.Left,
		grid.SlotRight:       r.Right,
		grid.SlotTopLeft:     r.TopLeft,
		grid.SlotTopRight:    r.TopRight,
		grid.SlotBottomLeft:  r.BottomLeft,
		grid.SlotBottomRight: r.BottomRight,
	}

	var b grid.Border[grid.Color]

	for slot, c := range colors {
		if c != "" {
			b = b.With(slot, grid.Color(c))
		}
	}

	return b
}

// Descriptor resolves the colors of the rule. presets may be nil when the rule names none.
func (r Rule) Descriptor(presets PresetSource) (grid.Border[grid.Color], error) {
	base := grid.Border[grid.Color]{}

	if r.Preset != "" {
		if presets == nil {
			return base, fmt.Errorf("preset %q requested but no preset storage is configured", r.Preset)
		}

		preset, err := presets.Load(r.Preset)
		if err != nil {
			return base, fmt.Errorf("could not load preset %q: %w", r.Preset, err)
		}

		base = preset
	}

	if r.Fill != "" {
		base = base.Merge(border.Filled(grid.Color(r.Fill)).Descriptor())
	}

	staged, err := border.StagedFrom(base).SetAll(r.explicit())
	if err != nil {
		return base, fmt.Errorf("rule for %q: %w", r.Target, err)
	}

	return staged.Descriptor(), nil
}

// ParseTarget understands:
//
//	all | row:N | column:N | col:N | cell:R,C | content:TEXT | header:NAME
func ParseTarget(expr string) (settings.Object, error) {
	kind, arg, hasArg := strings.Cut(strings.TrimSpace(expr), ":")

	switch strings.ToLower(kind) {
	case "", "all":
		if hasArg {
			break
		}

		return settings.All(), nil
	case "row":
		n, err := parseIndex(arg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidTarget, expr, err)
		}

		return settings.Row(n), nil
	case "column", "col":
		n, err := parseIndex(arg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidTarget, expr, err)
		}

		return settings.Column(n), nil
	case "cell":
		rowArg, colArg, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("%w %q: expected cell:ROW,COL", ErrInvalidTarget, expr)
		}

		row, err := parseIndex(rowArg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidTarget, expr, err)
		}

		col, err := parseIndex(colArg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidTarget, expr, err)
		}

		return settings.Cell(row, col), nil
	case "content":
		return location.Locator{}.Content(arg), nil
	case "header":
		return location.Locator{}.Column(arg), nil
	}

	return nil, fmt.Errorf("%w %q", ErrInvalidTarget, expr)
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad index: %w", err)
	}

	if n < 0 {
		return 0, fmt.Errorf("negative index %d", n)
	}

	return n, nil
}

// Apply resolves and applies every rule in order. Nothing is applied if any rule is invalid.
func Apply(t *table.Table, rules []Rule, presets PresetSource) error {
	modifiers := make([]settings.TableOption, 0, len(rules))

	for i, r := range rules {
		obj, err := ParseTarget(r.Target)
		if err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}

		desc, err := r.Descriptor(presets)
		if err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}

		modifiers = append(modifiers, settings.Modify(obj).With(border.Descriptor(desc)))
	}

	t.With(modifiers...)

	return nil
}
