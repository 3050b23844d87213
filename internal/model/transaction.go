package model

// Category sentinels carried on transactions. CategoryUncategorized marks a
// transaction the rule engine may still categorize; CategoryDelete marks one
// the rule engine must remove on its next pass.
const (
	CategoryUncategorized = "Please Select"
	CategoryDelete        = "Delete"

	// UncategorizedLabel is the user-facing name of the uncategorized bucket.
	UncategorizedLabel = "Uncategorized"
)

// Transaction is a single bank statement row stored for an account.
// Date is the 8-digit YYYYMMDD storage form (raw CSV text until normalized),
// Amount is a fixed 2-decimal string with the sign preserved.
type Transaction struct {
	ID          int64
	Date        string
	Description string
	Amount      string
	Category    string
}

// Uncategorized reports whether the transaction still awaits a category.
func (t Transaction) Uncategorized() bool {
	return t.Category == CategoryUncategorized
}

// MarkedForDeletion reports whether the rule engine should remove the
// transaction on its next pass.
func (t Transaction) MarkedForDeletion() bool {
	return t.Category == CategoryDelete
}
