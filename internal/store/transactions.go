package store

import (
	"fmt"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

// Transactions returns the account's transactions in insertion order.
func (s *Store) Transactions(account string) ([]model.Transaction, error) {
	id, err := s.accountID(account)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT id, date, description, amount, category FROM transactions WHERE account_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("listing transactions for %q: %w", account, err)
	}
	defer rows.Close()

	var txns []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Amount, &t.Category); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// AppendTransaction stores a new transaction for the account and returns its
// assigned ID. An empty category defaults to the uncategorized sentinel.
func (s *Store) AppendTransaction(account string, t model.Transaction) (int64, error) {
	id, err := s.accountID(account)
	if err != nil {
		return 0, err
	}

	category := t.Category
	if category == "" {
		category = model.CategoryUncategorized
	}

	res, err := s.db.Exec(
		`INSERT INTO transactions (account_id, date, description, amount, category) VALUES (?, ?, ?, ?, ?)`,
		id, t.Date, t.Description, t.Amount, category)
	if err != nil {
		return 0, fmt.Errorf("inserting transaction: %w", err)
	}
	txID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading transaction id: %w", err)
	}
	return txID, nil
}

// UpdateTransaction overwrites all mutable fields of a stored transaction.
func (s *Store) UpdateTransaction(account string, t model.Transaction) error {
	id, err := s.accountID(account)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		`UPDATE transactions SET date = ?, description = ?, amount = ?, category = ? WHERE account_id = ? AND id = ?`,
		t.Date, t.Description, t.Amount, t.Category, id, t.ID)
	if err != nil {
		return fmt.Errorf("updating transaction %d: %w", t.ID, err)
	}
	return requireRow(res, t.ID)
}

// SetTransactionCategory updates only the category of a stored transaction.
// This is the rule engine's write path.
func (s *Store) SetTransactionCategory(account string, txID int64, category string) error {
	id, err := s.accountID(account)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		`UPDATE transactions SET category = ? WHERE account_id = ? AND id = ?`,
		category, id, txID)
	if err != nil {
		return fmt.Errorf("setting category on transaction %d: %w", txID, err)
	}
	return requireRow(res, txID)
}

// DeleteTransaction removes a stored transaction. Deleting an already-removed
// row is a no-op.
func (s *Store) DeleteTransaction(account string, txID int64) error {
	id, err := s.accountID(account)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM transactions WHERE account_id = ? AND id = ?`, id, txID); err != nil {
		return fmt.Errorf("deleting transaction %d: %w", txID, err)
	}
	return nil
}

// HasTransactions reports whether any transactions exist system-wide.
func (s *Store) HasTransactions() (bool, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return false, fmt.Errorf("counting transactions: %w", err)
	}
	return n > 0, nil
}

func requireRow(res interface{ RowsAffected() (int64, error) }, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	return nil
}
