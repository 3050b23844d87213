package commands

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/steve191/personal-expense-tracker/internal/importer"
)

func newImportCommand() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "import <statement-file>",
		Short: "Import a bank statement into an account",
		Long: "Import a CSV or OFX bank statement (per the configured import format),\n" +
			"skipping rows already stored for the account, then apply\n" +
			"auto-categorization rules.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			imp := importer.New(e.store, e.cfg.Data.Dir)
			res, err := imp.ImportFile(account, args[0])
			if errors.Is(err, fs.ErrNotExist) {
				// No statement to import is a cancellation, not a failure.
				cmd.Println("No bank statement imported")
				return nil
			}
			if err != nil {
				return err
			}

			cmd.Printf("Added %d new transactions\n", res.Added)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account to import into (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
