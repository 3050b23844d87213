package store

import (
	"fmt"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

// Rules returns all auto-categorization rules in their stored order. The rule
// engine iterates them in this order; when several rules match the same
// description the last one wins.
func (s *Store) Rules() ([]model.Rule, error) {
	rows, err := s.db.Query(`SELECT id, name, match_description, category FROM rules ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	defer rows.Close()

	var rules []model.Rule
	for rows.Next() {
		var r model.Rule
		if err := rows.Scan(&r.ID, &r.Name, &r.Match, &r.Category); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// AddRule stores a new rule. Target-category validation happens in the rules
// package before this is called.
func (s *Store) AddRule(r model.Rule) error {
	if _, err := s.db.Exec(
		`INSERT INTO rules (name, match_description, category) VALUES (?, ?, ?)`,
		r.Name, r.Match, r.Category); err != nil {
		return fmt.Errorf("inserting rule %q: %w", r.Name, err)
	}
	return nil
}

// UpdateRule overwrites a stored rule.
func (s *Store) UpdateRule(r model.Rule) error {
	res, err := s.db.Exec(
		`UPDATE rules SET name = ?, match_description = ?, category = ? WHERE id = ?`,
		r.Name, r.Match, r.Category, r.ID)
	if err != nil {
		return fmt.Errorf("updating rule %d: %w", r.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("rule %d: %w", r.ID, ErrNotFound)
	}
	return nil
}

// DeleteRule removes a stored rule.
func (s *Store) DeleteRule(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM rules WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting rule %d: %w", id, err)
	}
	return nil
}
