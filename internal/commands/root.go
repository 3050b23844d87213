// Package commands wires the tracker CLI. Commands are presentation glue:
// they open the store, call into the core packages and render the results.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/steve191/personal-expense-tracker/internal/buildinfo"
	"github.com/steve191/personal-expense-tracker/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "tracker",
		Short:   "Personal finance tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", config.Home(), "tracker home directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newTxCommand())
	rootCmd.AddCommand(newCategoryCommand())
	rootCmd.AddCommand(newRuleCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newSettingsCommand())

	return rootCmd
}

// homeFlag is the resolved tracker home directory for the current invocation.
var homeFlag string
