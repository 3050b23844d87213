package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Budget is a per-category spending limit: either unset (unconstrained) or a
// positive decimal amount. The zero value is unset.
type Budget struct {
	amount decimal.Decimal
	set    bool
}

// budgetUnset is the storage sentinel for an unconstrained budget.
const budgetUnset = "None"

// BudgetOf returns a set budget with the given limit.
func BudgetOf(limit decimal.Decimal) Budget {
	return Budget{amount: limit, set: true}
}

// ParseBudget parses the storage form of a budget: the "None" sentinel (or an
// empty string) means unset, anything else must be a positive number.
func ParseBudget(s string) (Budget, error) {
	if s == "" || s == budgetUnset {
		return Budget{}, nil
	}
	limit, err := decimal.NewFromString(s)
	if err != nil {
		return Budget{}, ValidationError{Field: "budget", Reason: fmt.Sprintf("%q is not a number", s)}
	}
	if !limit.IsPositive() {
		return Budget{}, ValidationError{Field: "budget", Reason: "must be positive"}
	}
	return BudgetOf(limit), nil
}

// IsSet reports whether a limit is configured.
func (b Budget) IsSet() bool { return b.set }

// Limit returns the configured limit; zero if unset.
func (b Budget) Limit() decimal.Decimal { return b.amount }

// String returns the storage form: "None" or the fixed 2-decimal limit.
func (b Budget) String() string {
	if !b.set {
		return budgetUnset
	}
	return b.amount.StringFixed(2)
}

// Category is a spending category with an optional budget. A category named
// CategoryDelete always exists and is protected from edits: it instructs the
// rule engine to remove matching transactions rather than bucket them.
type Category struct {
	ID     int64
	Name   string
	Budget Budget
}

// Protected reports whether the category may not be renamed or removed.
func (c Category) Protected() bool {
	return c.Name == CategoryDelete
}

// BudgetStatus classifies a category's spend against its budget.
type BudgetStatus string

const (
	StatusWithinBudget BudgetStatus = "within-budget"
	StatusOverBudget   BudgetStatus = "over-budget"
	StatusNoBudget     BudgetStatus = "no-budget"
)
