package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steve191/personal-expense-tracker/internal/model"
	"github.com/steve191/personal-expense-tracker/internal/rules"
	"github.com/steve191/personal-expense-tracker/internal/statement"
)

func newTxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
	}
	cmd.AddCommand(newTxAddCommand())
	cmd.AddCommand(newTxListCommand())
	cmd.AddCommand(newTxEditCommand())
	cmd.AddCommand(newTxDeleteCommand())
	return cmd
}

// validateManualDate enforces the manual-entry date shape: YYYYMMDD through
// YYYY-MM-DD.
func validateManualDate(date string) error {
	if len(date) < 8 || len(date) > 10 {
		return model.ValidationError{Field: "date", Reason: "use date format YYYY-MM-DD or YYYYMMDD"}
	}
	return nil
}

func newTxAddCommand() *cobra.Command {
	var account, date, desc, amount, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction manually",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" || desc == "" || amount == "" {
				return model.ValidationError{Field: "transaction", Reason: "date, description and amount are required"}
			}
			if err := validateManualDate(date); err != nil {
				return err
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			// Unknown categories silently fall back to uncategorized.
			if category != "" && category != model.CategoryUncategorized {
				known, err := e.store.HasCategory(category)
				if err != nil {
					return err
				}
				if !known {
					category = model.CategoryUncategorized
				}
			}

			id, err := e.store.AppendTransaction(account, model.Transaction{
				Date:        statement.NormalizeDate(date),
				Description: desc,
				Amount:      amount,
				Category:    category,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Added transaction %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&date, "date", "", "transaction date")
	cmd.Flags().StringVar(&desc, "description", "", "transaction description")
	cmd.Flags().StringVar(&amount, "amount", "", "signed amount")
	cmd.Flags().StringVar(&category, "category", "", "category name")

	return cmd
}

func newTxListCommand() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an account's transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			// Every refresh reconciles against the rule table first.
			if err := rules.Apply(e.store, account); err != nil {
				return err
			}

			txns, err := e.store.Transactions(account)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tDATE\tDESCRIPTION\tAMOUNT\tCATEGORY")
			for _, t := range txns {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					t.ID, statement.DisplayDate(t.Date), t.Description, t.Amount, t.Category)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func newTxEditCommand() *cobra.Command {
	var account, date, desc, amount, category string
	var id int64

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a stored transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" || desc == "" || amount == "" {
				return model.ValidationError{Field: "transaction", Reason: "date, description and amount are required"}
			}
			if err := validateManualDate(date); err != nil {
				return err
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if category != model.CategoryUncategorized {
				known, err := e.store.HasCategory(category)
				if err != nil {
					return err
				}
				if !known {
					return model.ValidationError{Field: "category", Reason: fmt.Sprintf("%q is not a known category", category)}
				}
			}

			err = e.store.UpdateTransaction(account, model.Transaction{
				ID:          id,
				Date:        statement.NormalizeDate(date),
				Description: desc,
				Amount:      amount,
				Category:    category,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Updated transaction %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().Int64Var(&id, "id", 0, "transaction id (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&date, "date", "", "transaction date")
	cmd.Flags().StringVar(&desc, "description", "", "transaction description")
	cmd.Flags().StringVar(&amount, "amount", "", "signed amount")
	cmd.Flags().StringVar(&category, "category", model.CategoryUncategorized, "category name")

	return cmd
}

func newTxDeleteCommand() *cobra.Command {
	var account string
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a stored transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.store.DeleteTransaction(account, id); err != nil {
				return err
			}
			cmd.Printf("Deleted transaction %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().Int64Var(&id, "id", 0, "transaction id (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
