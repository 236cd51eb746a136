package tabstyle

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dasdy/tabstyle/web/components"
	"github.com/spf13/cobra"
)

var format string

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Print a CSV file as a table with colored borders",
	Long: `Read FILE (or stdin when FILE is "-") as CSV, apply the configured rules and
the rule given by flags, and print the result as text or HTML.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadStyledTable(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		switch format {
		case "text":
			_, err = fmt.Fprintln(out, t.Render(lipgloss.NewRenderer(out)))
		case "html":
			err = components.Page(args[0], components.Table(t)).Render(cmd.Context(), out)
		default:
			return fmt.Errorf("unknown format %q, expected text or html", format)
		}

		if err != nil {
			return fmt.Errorf("could not write table: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	addRuleFlags(renderCmd)
	renderCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or html")
}
