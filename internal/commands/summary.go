package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steve191/personal-expense-tracker/internal/model"
	"github.com/steve191/personal-expense-tracker/internal/summary"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show spend per category against budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			entries, err := summary.Compute(e.store)
			if err != nil {
				return err
			}
			if entries == nil {
				cmd.Println("No transactions recorded")
				return nil
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "CATEGORY\tTOTAL SPENT\tBUDGET LIMIT\tSTATUS")
			for _, en := range entries {
				budget, status := "-", "-"
				switch en.Status {
				case model.StatusWithinBudget:
					budget, status = e.currency(en.Budget.Limit()), "Within Budget"
				case model.StatusOverBudget:
					budget, status = e.currency(en.Budget.Limit()), "OVER BUDGET"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", en.Category, e.currency(en.Total.Abs()), budget, status)
			}
			return tw.Flush()
		},
	}
}
