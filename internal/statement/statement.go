// Package statement normalizes raw bank statement files (CSV or OFX) into
// canonical transaction rows: YYYYMMDD-ish date, whitespace-collapsed
// description, fixed 2-decimal amount with the sign preserved.
package statement

import (
	"fmt"
	"io"
	"strings"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

// Format selects a statement parser.
type Format string

const (
	FormatCSV Format = "csv"
	FormatOFX Format = "ofx"
)

// ParseFormat validates a format setting value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatOFX:
		return FormatOFX, nil
	}
	return "", model.ValidationError{Field: "format", Reason: fmt.Sprintf("unknown import format %q", s)}
}

// Parser converts a statement file into normalized transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() Format
}

// FormatError reports a malformed statement. Parsers attach a Hint when they
// can suggest a fix, e.g. the CSV parser points at the column settings.
type FormatError struct {
	Row  int    // 1-based data row, 0 if not row-specific
	Hint string // optional remediation advice
	Err  error
}

func (e *FormatError) Error() string {
	msg := "malformed statement"
	if e.Row > 0 {
		msg = fmt.Sprintf("malformed statement at row %d", e.Row)
	}
	msg += ": " + e.Err.Error()
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// CollapseWhitespace reduces every internal whitespace run to a single space
// and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
