package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tipsy/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the persistent flags shared by every subcommand
type options struct {
	dbPath string
	userID string
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "tipsy",
		Short:         "Log drinks and estimate your blood alcohol content",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", cfg.DBPath, "SQLite database path (default ~/.local/share/tipsy/tipsy.db)")
	root.PersistentFlags().StringVar(&opts.userID, "user", "local", "user whose log to use")

	root.AddCommand(newProfileCmd(opts))
	root.AddCommand(newDrinkCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newStatusCmd(opts))
	root.AddCommand(newTrendCmd(opts))
	root.AddCommand(newWatchCmd(opts))
	return root
}
