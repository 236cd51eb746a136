package tabstyle

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dasdy/tabstyle/border"
	"github.com/dasdy/tabstyle/db"
	"github.com/dasdy/tabstyle/table"
	"github.com/spf13/cobra"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage named border color presets",
}

var presetSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Store the border colors given by flags under NAME",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rule := flagRule
		rule.Target = ""
		rule.Preset = ""

		desc, err := rule.Descriptor(nil)
		if err != nil {
			return err
		}

		if desc.IsEmpty() {
			return fmt.Errorf("preset %q has no colors, pass --fill or side flags", args[0])
		}

		return withStorage(func(store *db.SQLiteStorage) error {
			if err := store.Save(args[0], desc); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "saved preset %s\n", args[0])

			return err
		})
	},
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStorage(func(store *db.SQLiteStorage) error {
			names, err := store.List()
			if err != nil {
				return err
			}

			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}

			return nil
		})
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print the colors of a preset and a sample cell using it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStorage(func(store *db.SQLiteStorage) error {
			desc, err := store.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for slot, c := range desc.All() {
				if _, err := fmt.Fprintf(out, "%-12s %s\n", slot, c); err != nil {
					return err
				}
			}

			sample := table.New([][]string{{args[0]}}).With(border.Descriptor(desc))
			_, err = fmt.Fprintln(out, sample.Render(lipgloss.NewRenderer(out)))

			return err
		})
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Remove a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withStorage(func(store *db.SQLiteStorage) error {
			return store.Delete(args[0])
		})
	},
}

func withStorage(fn func(store *db.SQLiteStorage) error) error {
	store, err := db.NewStorageFromPath(storagePath)
	if err != nil {
		return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
	}
	defer store.Close()

	return fn(store)
}

func init() {
	rootCmd.AddCommand(presetCmd)

	addColorFlags(presetSaveCmd)

	for _, cmd := range []*cobra.Command{presetSaveCmd, presetListCmd, presetShowCmd, presetDeleteCmd} {
		addStorageFlag(cmd)
		presetCmd.AddCommand(cmd)
	}
}
