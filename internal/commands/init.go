package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/steve191/personal-expense-tracker/internal/config"
	"github.com/steve191/personal-expense-tracker/internal/store"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a tracker home directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := homeFlag
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir)
		},
	}
}

func runInit(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	cfg := config.Default(dir)
	if _, err := os.Stat(cfgPath); err == nil {
		var loadErr error
		cfg, loadErr = config.Load(cfgPath)
		if loadErr != nil {
			return loadErr
		}
	} else {
		if err := config.Save(cfgPath, cfg); err != nil {
			return err
		}
	}

	// Opening runs migrations and seeds default categories and settings.
	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	cmd.Printf("Initialized tracker at %s\n", dir)
	return nil
}
