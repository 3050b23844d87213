package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/steve191/personal-expense-tracker/internal/statement"
)

const (
	settingImportFormat = "import_format"
	settingDateColumn   = "csv_date_column"
	settingAmountColumn = "csv_amount_column"
	settingDescColumn   = "csv_description_column"
)

// ImportFormat returns the configured statement format. Defaults to CSV.
func (s *Store) ImportFormat() (statement.Format, error) {
	v, err := s.setting(settingImportFormat)
	if errors.Is(err, ErrNotFound) {
		return statement.FormatCSV, nil
	}
	if err != nil {
		return "", err
	}
	return statement.ParseFormat(v)
}

// SetImportFormat stores the statement format setting.
func (s *Store) SetImportFormat(format statement.Format) error {
	if _, err := statement.ParseFormat(string(format)); err != nil {
		return err
	}
	return s.setSetting(settingImportFormat, string(format))
}

// ColumnMapping returns the configured CSV column letters. Requesting the
// mapping before it has been configured is a configuration error, not a
// silent default.
func (s *Store) ColumnMapping() (dateCol, amountCol, descCol string, err error) {
	dateCol, err = s.setting(settingDateColumn)
	if errors.Is(err, ErrNotFound) {
		return "", "", "", ErrColumnMappingUnset
	}
	if err != nil {
		return "", "", "", err
	}
	amountCol, err = s.setting(settingAmountColumn)
	if errors.Is(err, ErrNotFound) {
		return "", "", "", ErrColumnMappingUnset
	}
	if err != nil {
		return "", "", "", err
	}
	descCol, err = s.setting(settingDescColumn)
	if errors.Is(err, ErrNotFound) {
		return "", "", "", ErrColumnMappingUnset
	}
	if err != nil {
		return "", "", "", err
	}
	return dateCol, amountCol, descCol, nil
}

// SetColumnMapping validates and stores the CSV column letters. Each input
// must be a single letter A-Z; nothing is written if any is invalid.
func (s *Store) SetColumnMapping(dateCol, amountCol, descCol string) error {
	if _, err := statement.NewColumnMapping(dateCol, amountCol, descCol); err != nil {
		return err
	}
	for key, val := range map[string]string{
		settingDateColumn:   dateCol,
		settingAmountColumn: amountCol,
		settingDescColumn:   descCol,
	} {
		if err := s.setSetting(key, val); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) setting(key string) (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("setting %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %q: %w", key, err)
	}
	return v, nil
}

func (s *Store) setSetting(key, value string) error {
	if _, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value); err != nil {
		return fmt.Errorf("writing setting %q: %w", key, err)
	}
	return nil
}
