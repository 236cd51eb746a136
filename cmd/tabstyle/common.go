package tabstyle

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dasdy/tabstyle/db"
	"github.com/dasdy/tabstyle/grid"
	"github.com/dasdy/tabstyle/rules"
	"github.com/dasdy/tabstyle/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	storagePath string
	flagRule    rules.Rule
)

func addStorageFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./presets.sqlite",
		"Path to the sqlite file holding border presets")
}

func addColorFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&flagRule.Fill, "fill", "", "color for every side and corner")
	flags.StringVar(&flagRule.Top, "top", "", "top border color")
	flags.StringVar(&flagRule.Bottom, "bottom", "", "bottom border color")
	flags.StringVar(&flagRule.Left, "left", "", "left border color")
	flags.StringVar(&flagRule.Right, "right", "", "right border color")
	flags.StringVar(&flagRule.TopLeft, "top-left", "", "top left corner color, needs top and left")
	flags.StringVar(&flagRule.TopRight, "top-right", "", "top right corner color, needs top and right")
	flags.StringVar(&flagRule.BottomLeft, "bottom-left", "", "bottom left corner color, needs bottom and left")
	flags.StringVar(&flagRule.BottomRight, "bottom-right", "", "bottom right corner color, needs bottom and right")
}

func addRuleFlags(cmd *cobra.Command) {
	addColorFlags(cmd)
	addStorageFlag(cmd)

	cmd.Flags().StringVarP(&flagRule.Target, "target", "t", "all",
		"cells to color: all, row:N, column:N, cell:R,C, content:TEXT or header:NAME")
	cmd.Flags().StringVarP(&flagRule.Preset, "preset", "p", "", "named preset to start from")
}

func hasFlagRule() bool {
	r := flagRule
	r.Target = ""

	return r != rules.Rule{}
}

// lazyPresets opens the preset storage only once a rule asks for a preset.
type lazyPresets struct {
	path  string
	store *db.SQLiteStorage
}

func (p *lazyPresets) Load(name string) (grid.Border[grid.Color], error) {
	if p.store == nil {
		store, err := db.NewStorageFromPath(p.path)
		if err != nil {
			return grid.Border[grid.Color]{}, err
		}

		p.store = store
	}

	return p.store.Load(name)
}

func (p *lazyPresets) Close() {
	if p.store != nil {
		p.store.Close()
	}
}

// configuredRules returns the [[rule]] sections of the config followed by the rule given by flags.
func configuredRules() ([]rules.Rule, error) {
	var result []rules.Rule

	if err := viper.UnmarshalKey("rule", &result); err != nil {
		return nil, fmt.Errorf("could not read rules from config: %w", err)
	}

	if hasFlagRule() {
		result = append(result, flagRule)
	}

	return result, nil
}

func readTable(path string) (*table.Table, error) {
	var r io.Reader = os.Stdin

	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %s: %w", path, err)
		}
		defer file.Close()

		r = file
	}

	return table.FromCSV(r)
}

// loadStyledTable reads the CSV at path and applies every configured rule to it.
func loadStyledTable(path string) (*table.Table, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	ruleSet, err := configuredRules()
	if err != nil {
		return nil, err
	}

	presets := &lazyPresets{path: storagePath}
	defer presets.Close()

	if err := rules.Apply(t, ruleSet, presets); err != nil {
		return nil, err
	}

	shape := t.Shape()
	slog.DebugContext(logCtx, "Styled table",
		"path", path,
		"rows", shape.Rows,
		"cols", shape.Cols,
		"rules", len(ruleSet),
		"styled_cells", t.Config().Len())

	return t, nil
}
