package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

func newCategoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage spending categories and budgets",
	}
	cmd.AddCommand(newCategoryAddCommand())
	cmd.AddCommand(newCategoryListCommand())
	cmd.AddCommand(newCategoryUpdateCommand())
	cmd.AddCommand(newCategoryDeleteCommand())
	return cmd
}

func newCategoryAddCommand() *cobra.Command {
	var budget string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := model.ParseBudget(budget)
			if err != nil {
				return err
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.store.AddCategory(args[0], b); err != nil {
				return err
			}
			cmd.Printf("Added category %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&budget, "budget", "", "monthly budget limit (empty = no budget)")

	return cmd
}

func newCategoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			cats, err := e.store.Categories()
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tCATEGORY\tBUDGET")
			for _, c := range cats {
				budget := "-"
				if c.Budget.IsSet() {
					budget = e.currency(c.Budget.Limit())
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, budget)
			}
			return tw.Flush()
		},
	}
}

func newCategoryUpdateCommand() *cobra.Command {
	var name, budget string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a category or change its budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := model.ParseBudget(budget)
			if err != nil {
				return err
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.store.UpdateCategory(id, name, b); err != nil {
				return err
			}
			cmd.Printf("Updated category %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&budget, "budget", "", "monthly budget limit (empty = no budget)")

	return cmd
}

func newCategoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.store.DeleteCategory(id); err != nil {
				return err
			}
			cmd.Printf("Deleted category %d\n", id)
			return nil
		},
	}
}
