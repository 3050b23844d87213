// Package rules applies ordered auto-categorization rules to an account's
// transactions.
package rules

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

// ErrUncategorizedTarget rejects a rule whose target is the uncategorized
// sentinel: a rule must always resolve to a real category or Delete.
var ErrUncategorizedTarget = errors.New("rule must assign a real category")

// Store is the slice of the record store the rule engine needs.
type Store interface {
	Rules() ([]model.Rule, error)
	Transactions(account string) ([]model.Transaction, error)
	SetTransactionCategory(account string, txID int64, category string) error
	DeleteTransaction(account string, txID int64) error
}

// Validate checks a rule before it is persisted.
func Validate(r model.Rule) error {
	if r.Category == model.CategoryUncategorized {
		return ErrUncategorizedTarget
	}
	return nil
}

// Apply reconciles an account against the rule table. For each transaction:
// one marked Delete is removed outright, independent of any rule; an
// uncategorized one whose description exactly matches a rule is assigned that
// rule's category. Rules run in stored order and each match writes
// immediately, so the last matching rule wins. Already-categorized
// transactions are left alone, which makes repeated application a no-op.
func Apply(s Store, account string) error {
	rules, err := s.Rules()
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	txns, err := s.Transactions(account)
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}

	for _, t := range txns {
		if t.MarkedForDeletion() {
			if err := s.DeleteTransaction(account, t.ID); err != nil {
				return fmt.Errorf("deleting transaction %d: %w", t.ID, err)
			}
			slog.Debug("removed transaction marked for deletion",
				"account", account, "id", t.ID, "description", t.Description)
			continue
		}

		if !t.Uncategorized() {
			continue
		}

		for _, r := range rules {
			if r.Match != t.Description {
				continue
			}
			if err := s.SetTransactionCategory(account, t.ID, r.Category); err != nil {
				return fmt.Errorf("applying rule %q to transaction %d: %w", r.Name, t.ID, err)
			}
			slog.Debug("rule applied",
				"account", account, "rule", r.Name, "id", t.ID, "category", r.Category)
		}
	}
	return nil
}
