package tabstyle

import (
	"github.com/dasdy/tabstyle/table"
	"github.com/dasdy/tabstyle/web"
	"github.com/dasdy/tabstyle/web/routes"
	"github.com/spf13/cobra"
)

var (
	port int
	dev  bool
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve FILE",
	Short: "Serve a CSV file as a styled HTML table",
	Long:  `Run a web server rendering FILE with the configured rules. The file is re-read on every request.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := args[0]

		handler := &routes.ServerHandler{
			Title: path,
			Load: func() (*table.Table, error) {
				return loadStyledTable(path)
			},
		}

		return web.StartServer(port, handler, dev)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	addRuleFlags(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "P", 9000,
		"Port on which server should be watching")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")
}
