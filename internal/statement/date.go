package statement

import "github.com/araddon/dateparse"

const (
	// StorageDateFormat is the 8-digit form transactions are stored and
	// exact-matched with.
	StorageDateFormat = "20060102"
	// DisplayDateFormat is the form dates are rendered in.
	DisplayDateFormat = "2006-01-02"
)

// NormalizeDate converts a free-form date string to the YYYYMMDD storage
// form. If the string cannot be parsed it passes through unchanged.
func NormalizeDate(s string) string {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return s
	}
	return t.Format(StorageDateFormat)
}

// DisplayDate converts a free-form date string to YYYY-MM-DD for display.
// If the string cannot be parsed it passes through unchanged.
func DisplayDate(s string) string {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return s
	}
	return t.Format(DisplayDateFormat)
}
