package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

// ColumnMapping holds 0-based column indices into a CSV statement row.
type ColumnMapping struct {
	Date        int
	Amount      int
	Description int
}

// ParseColumnLetter maps a spreadsheet-style column label to a 0-based index:
// "A" -> 0 ... "Z" -> 25. Lowercase is accepted.
func ParseColumnLetter(s string) (int, error) {
	if len(s) != 1 {
		return 0, model.ValidationError{Field: "column", Reason: fmt.Sprintf("%q is not a single letter A-Z", s)}
	}
	c := s[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), nil
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), nil
	}
	return 0, model.ValidationError{Field: "column", Reason: fmt.Sprintf("%q is not a single letter A-Z", s)}
}

// NewColumnMapping builds a ColumnMapping from three column letters.
func NewColumnMapping(dateCol, amountCol, descCol string) (ColumnMapping, error) {
	date, err := ParseColumnLetter(dateCol)
	if err != nil {
		return ColumnMapping{}, fmt.Errorf("date column: %w", err)
	}
	amount, err := ParseColumnLetter(amountCol)
	if err != nil {
		return ColumnMapping{}, fmt.Errorf("amount column: %w", err)
	}
	desc, err := ParseColumnLetter(descCol)
	if err != nil {
		return ColumnMapping{}, fmt.Errorf("description column: %w", err)
	}
	return ColumnMapping{Date: date, Amount: amount, Description: desc}, nil
}

// csvHint points the user at the likely cause of a malformed CSV row.
const csvHint = "check that the correct columns are selected in settings"

// CSVParser reads a CSV statement with arbitrary columns, three of which are
// selected by the configured mapping. The first row is treated as a header.
type CSVParser struct {
	Columns ColumnMapping
}

// Format returns the parser name.
func (p *CSVParser) Format() Format { return FormatCSV }

// Parse reads the statement and returns normalized transactions in file
// order. The date field passes through as raw text; it is normalized to the
// storage form when displayed or entered manually.
func (p *CSVParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // banks disagree on column counts

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &FormatError{Hint: csvHint, Err: fmt.Errorf("reading CSV: %w", err)}
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := p.parseRow(rec)
		if err != nil {
			return nil, &FormatError{Row: i + 1, Hint: csvHint, Err: err}
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (p *CSVParser) parseRow(rec []string) (model.Transaction, error) {
	max := p.Columns.Date
	if p.Columns.Amount > max {
		max = p.Columns.Amount
	}
	if p.Columns.Description > max {
		max = p.Columns.Description
	}
	if max >= len(rec) {
		return model.Transaction{}, fmt.Errorf("row has %d columns, need at least %d", len(rec), max+1)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec[p.Columns.Amount]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[p.Columns.Amount], err)
	}

	return model.Transaction{
		Date:        rec[p.Columns.Date],
		Description: CollapseWhitespace(rec[p.Columns.Description]),
		Amount:      amount.StringFixed(2),
		Category:    model.CategoryUncategorized,
	}, nil
}
