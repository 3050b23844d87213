package store

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

// titleCase normalizes category names on write ("income" -> "Income").
func titleCase(name string) string {
	return cases.Title(language.English).String(name)
}

// Categories returns all categories with parsed budgets, in creation order.
func (s *Store) Categories() ([]model.Category, error) {
	rows, err := s.db.Query(`SELECT id, name, budget FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		var (
			c      model.Category
			budget string
		)
		if err := rows.Scan(&c.ID, &c.Name, &budget); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		// Historical rows may hold junk budgets; treat them as unset
		// rather than failing the whole listing.
		if b, err := model.ParseBudget(budget); err == nil {
			c.Budget = b
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// CategoryNames returns all category names in creation order.
func (s *Store) CategoryNames() ([]string, error) {
	cats, err := s.Categories()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names, nil
}

// HasCategory reports whether a category with the given name exists.
func (s *Store) HasCategory(name string) (bool, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM categories WHERE name = ?`, name).Scan(&n); err != nil {
		return false, fmt.Errorf("looking up category %q: %w", name, err)
	}
	return n > 0, nil
}

// AddCategory stores a new category. The name is title-cased on write; no
// uniqueness is enforced, so adding "income" twice stores "Income" twice
// (known limitation, matches the historical schema).
func (s *Store) AddCategory(name string, budget model.Budget) error {
	if name == "" {
		return model.ValidationError{Field: "category", Reason: "name is required"}
	}
	if _, err := s.db.Exec(`INSERT INTO categories (name, budget) VALUES (?, ?)`, titleCase(name), budget.String()); err != nil {
		return fmt.Errorf("inserting category %q: %w", name, err)
	}
	return nil
}

// UpdateCategory renames a category or changes its budget. The Delete
// category is immutable.
func (s *Store) UpdateCategory(id int64, name string, budget model.Budget) error {
	if name == "" {
		return model.ValidationError{Field: "category", Reason: "name is required"}
	}
	current, err := s.categoryName(id)
	if err != nil {
		return err
	}
	if current == model.CategoryDelete || name == model.CategoryDelete {
		return ErrProtectedCategory
	}

	if _, err := s.db.Exec(`UPDATE categories SET name = ?, budget = ? WHERE id = ?`, titleCase(name), budget.String(), id); err != nil {
		return fmt.Errorf("updating category %d: %w", id, err)
	}
	return nil
}

// DeleteCategory removes a category. The Delete category is undeletable.
func (s *Store) DeleteCategory(id int64) error {
	current, err := s.categoryName(id)
	if err != nil {
		return err
	}
	if current == model.CategoryDelete {
		return ErrProtectedCategory
	}

	if _, err := s.db.Exec(`DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting category %d: %w", id, err)
	}
	return nil
}

func (s *Store) categoryName(id int64) (string, error) {
	var name string
	err := s.db.QueryRow(`SELECT name FROM categories WHERE id = ?`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("looking up category %d: %w", id, err)
	}
	return name, nil
}
