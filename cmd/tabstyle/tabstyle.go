package tabstyle

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/tabstyle/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logFile  string
	logLevel string
)

var logCtx = logging.PackageCtx("tabstyle")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tabstyle",
	Short: "Render tables with colored cell borders",
	Long: `tabstyle renders CSV data as a box-drawn table and colors the borders
of selected cells, rows, columns or the whole table. Colors come from
[[rule]] sections of the config file, flags, or named presets stored in sqlite.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bindFlags(cmd, args)

		return setupLogging()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tabstyle.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this rotated file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

func setupLogging() error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	if logFile != "" {
		slog.SetDefault(logging.New(logging.RotatingFile(logFile), level))
	} else {
		slog.SetDefault(logging.New(os.Stderr, level))
	}

	return nil
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tabstyle" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".tabstyle")
	}
	// Set environment variable prefix
	viper.SetEnvPrefix("tabstyle")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			slog.DebugContext(logCtx, "No config file found, using flags only")
		} else {
			slog.ErrorContext(logCtx, "Error reading config file", "error", err)
			os.Exit(1)
		}
	} else {
		slog.DebugContext(logCtx, "Using config file", "path", viper.ConfigFileUsed())
	}
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// If using camelCase in the config file, replace hyphens with a camelCased string.
		// Since viper does case-insensitive comparisons, we don't need to bother fixing the case, and only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				slog.ErrorContext(logCtx, "Error setting flag", "flag", f.Name, "error", err)
				panic(err)
			}

			slog.DebugContext(logCtx, "Flag set to config value", "flag", f.Name, "value", val)
		}
	})
}
