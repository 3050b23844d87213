package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/steve191/personal-expense-tracker/internal/statement"
	"github.com/steve191/personal-expense-tracker/internal/store"
)

func newSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Configure statement imports",
	}
	cmd.AddCommand(newSettingsFormatCommand())
	cmd.AddCommand(newSettingsColumnsCommand())
	return cmd
}

func newSettingsFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format [csv|ofx]",
		Short: "Show or set the statement import format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if len(args) == 0 {
				format, err := e.store.ImportFormat()
				if err != nil {
					return err
				}
				cmd.Println(format)
				return nil
			}

			format, err := statement.ParseFormat(args[0])
			if err != nil {
				return err
			}
			if err := e.store.SetImportFormat(format); err != nil {
				return err
			}
			cmd.Printf("Import format set to %s\n", format)
			return nil
		},
	}
}

func newSettingsColumnsCommand() *cobra.Command {
	var dateCol, amountCol, descCol string

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Show or set the CSV column mapping (letters A-Z)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if dateCol == "" && amountCol == "" && descCol == "" {
				d, a, dsc, err := e.store.ColumnMapping()
				if errors.Is(err, store.ErrColumnMappingUnset) {
					cmd.Println("CSV column mapping not configured")
					return nil
				}
				if err != nil {
					return err
				}
				cmd.Printf("date=%s amount=%s description=%s\n", d, a, dsc)
				return nil
			}

			if err := e.store.SetColumnMapping(dateCol, amountCol, descCol); err != nil {
				return err
			}
			cmd.Println("CSV column mapping saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&dateCol, "date", "", "date column letter")
	cmd.Flags().StringVar(&amountCol, "amount", "", "amount column letter")
	cmd.Flags().StringVar(&descCol, "description", "", "description column letter")

	return cmd
}
