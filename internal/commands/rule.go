package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/steve191/personal-expense-tracker/internal/model"
	"github.com/steve191/personal-expense-tracker/internal/rules"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, model.ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not a numeric id", s)}
	}
	return id, nil
}

func newRuleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Manage auto-categorization rules",
	}
	cmd.AddCommand(newRuleAddCommand())
	cmd.AddCommand(newRuleListCommand())
	cmd.AddCommand(newRuleUpdateCommand())
	cmd.AddCommand(newRuleDeleteCommand())
	return cmd
}

func newRuleAddCommand() *cobra.Command {
	var name, match, category, account string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a rule",
		Long: "Add a rule assigning a category to every uncategorized transaction\n" +
			"whose description matches exactly. With --account, the rules are\n" +
			"applied to that account immediately.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule := model.Rule{Name: name, Match: match, Category: category}
			if err := rules.Validate(rule); errors.Is(err, rules.ErrUncategorizedTarget) {
				// A warning, not a failure: the rule is simply not saved.
				cmd.Println("Warning: please select a category for the rule; rule not saved")
				return nil
			} else if err != nil {
				return err
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.store.AddRule(rule); err != nil {
				return err
			}

			if account != "" {
				if err := rules.Apply(e.store, account); err != nil {
					return err
				}
			}

			cmd.Printf("Added rule %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "rule name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&match, "match", "", "exact description to match (required)")
	_ = cmd.MarkFlagRequired("match")
	cmd.Flags().StringVar(&category, "category", "", "category to assign (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&account, "account", "", "apply rules to this account after saving")

	return cmd
}

func newRuleListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			ruleList, err := e.store.Rules()
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tMATCHES\tASSIGNS")
			for _, r := range ruleList {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Name, r.Match, r.Category)
			}
			return tw.Flush()
		},
	}
}

func newRuleUpdateCommand() *cobra.Command {
	var name, match, category string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			rule := model.Rule{ID: id, Name: name, Match: match, Category: category}
			if err := rules.Validate(rule); errors.Is(err, rules.ErrUncategorizedTarget) {
				cmd.Println("Warning: please select a category for the rule; rule not saved")
				return nil
			} else if err != nil {
				return err
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.store.UpdateRule(rule); err != nil {
				return err
			}
			cmd.Printf("Updated rule %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "rule name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&match, "match", "", "exact description to match (required)")
	_ = cmd.MarkFlagRequired("match")
	cmd.Flags().StringVar(&category, "category", "", "category to assign (required)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newRuleDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a rule",
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

			if err := e.store.DeleteRule(id); err != nil {
				return err
			}
			cmd.Printf("Deleted rule %d\n", id)
			return nil
		},
	}
}
