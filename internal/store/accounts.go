package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

// CreateAccount adds a new account after validating its name.
func (s *Store) CreateAccount(name string) error {
	if err := model.ValidateAccountName(name); err != nil {
		return err
	}
	if _, err := s.db.Exec(`INSERT INTO accounts (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("inserting account %q: %w", name, err)
	}
	return nil
}

// Accounts returns all accounts in creation order.
func (s *Store) Accounts() ([]model.Account, error) {
	rows, err := s.db.Query(`SELECT id, name FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// DeleteAccount removes an account and all of its transactions.
func (s *Store) DeleteAccount(name string) error {
	id, err := s.accountID(name)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM transactions WHERE account_id = ?`, id); err != nil {
		return fmt.Errorf("deleting transactions for %q: %w", name, err)
	}
	if _, err := tx.Exec(`DELETE FROM accounts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting account %q: %w", name, err)
	}
	return tx.Commit()
}

func (s *Store) accountID(name string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM accounts WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("account %q: %w", name, ErrAccountNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("looking up account %q: %w", name, err)
	}
	return id, nil
}
