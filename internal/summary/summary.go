// Package summary aggregates spend per category across all accounts and
// compares it against budgets.
package summary

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

// Store is the slice of the record store the aggregator reads.
type Store interface {
	Accounts() ([]model.Account, error)
	Transactions(account string) ([]model.Transaction, error)
	Categories() ([]model.Category, error)
}

// Entry is one row of the budget summary.
type Entry struct {
	Category string
	Total    decimal.Decimal
	Budget   model.Budget
	Status   model.BudgetStatus
}

// Compute returns per-category totals with budget status, sorted by category
// name. The uncategorized bucket is always present (under its user-facing
// label) and sums absolute values; every other bucket sums signed values.
// Returns nil when no transactions exist anywhere.
func Compute(s Store) ([]Entry, error) {
	accounts, err := s.Accounts()
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	var txns []model.Transaction
	for _, a := range accounts {
		at, err := s.Transactions(a.Name)
		if err != nil {
			return nil, fmt.Errorf("listing transactions for %q: %w", a.Name, err)
		}
		txns = append(txns, at...)
	}
	if len(txns) == 0 {
		return nil, nil
	}

	cats, err := s.Categories()
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	type bucket struct {
		total  decimal.Decimal
		budget model.Budget
	}
	totals := map[string]*bucket{
		model.CategoryUncategorized: {},
	}
	for _, c := range cats {
		if _, ok := totals[c.Name]; !ok {
			totals[c.Name] = &bucket{budget: c.Budget}
		}
	}

	for _, t := range txns {
		name := t.Category
		if _, known := totals[name]; !known {
			// Category removed since import: fold into uncategorized.
			name = model.CategoryUncategorized
		}
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			// Historical data may hold junk amounts; skip, don't abort.
			continue
		}
		b := totals[name]
		if name == model.CategoryUncategorized {
			b.total = b.total.Add(amount.Abs())
		} else {
			b.total = b.total.Add(amount)
		}
	}

	entries := make([]Entry, 0, len(totals))
	for name, b := range totals {
		if name == model.CategoryUncategorized {
			name = model.UncategorizedLabel
		}
		entries = append(entries, Entry{
			Category: name,
			Total:    b.total,
			Budget:   b.budget,
			Status:   status(b.total, b.budget),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Category < entries[j].Category
	})
	return entries, nil
}

// status compares absolute spend against the budget limit. Spend exactly at
// the limit counts as over.
func status(total decimal.Decimal, budget model.Budget) model.BudgetStatus {
	if !budget.IsSet() {
		return model.StatusNoBudget
	}
	if total.Abs().LessThan(budget.Limit()) {
		return model.StatusWithinBudget
	}
	return model.StatusOverBudget
}
