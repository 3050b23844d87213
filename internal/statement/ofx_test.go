package statement

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

func parseFixture(t *testing.T) []model.Transaction {
	t.Helper()
	f, err := os.Open("testdata/statement.ofx")
	require.NoError(t, err)
	defer f.Close()

	p := &OFXParser{}
	txns, err := p.Parse(f)
	require.NoError(t, err)
	return txns
}

func TestOFXParser_Parse(t *testing.T) {
	txns := parseFixture(t)
	require.Len(t, txns, 4)

	// Balance pseudo-rows come through the parser; dedupe drops them later.
	assert.Equal(t, "OPEN BALANCE", txns[0].Description)
	assert.Equal(t, "CLOSE BALANCE", txns[3].Description)

	assert.Equal(t, "20240103", txns[1].Date)
	assert.Equal(t, "-1234.50", txns[1].Amount)
	assert.Equal(t, model.CategoryUncategorized, txns[1].Category)
}

func TestOFXParser_MemoTruncatedThenCollapsed(t *testing.T) {
	txns := parseFixture(t)

	// First 30 characters of "INTERNET TRANSFER  FROM SAVINGS ACCOUNT",
	// then whitespace runs collapsed.
	assert.Equal(t, "INTERNET TRANSFER FROM SAVING", txns[1].Description)
	assert.Equal(t, "COFFEE SHOP", txns[2].Description)
}

func TestOFXParser_AmountAlwaysTwoDecimals(t *testing.T) {
	txns := parseFixture(t)
	assert.Equal(t, "-4.00", txns[2].Amount)
	assert.Equal(t, "5000.00", txns[0].Amount)
}

func TestOFXParser_Malformed(t *testing.T) {
	p := &OFXParser{}
	_, err := p.Parse(strings.NewReader("this is not an OFX file"))

	var ferr *FormatError
	assert.ErrorAs(t, err, &ferr)
	// Column settings don't apply to OFX; no column hint here.
	assert.NotContains(t, err.Error(), "columns are selected in settings")
}

func TestNewParser(t *testing.T) {
	p, err := NewParser(FormatCSV, ColumnMapping{})
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, p.Format())

	p, err = NewParser(FormatOFX, ColumnMapping{})
	require.NoError(t, err)
	assert.Equal(t, FormatOFX, p.Format())

	_, err = NewParser(Format("qif"), ColumnMapping{})
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("ofx")
	require.NoError(t, err)
	assert.Equal(t, FormatOFX, f)

	_, err = ParseFormat("qif")
	assert.Error(t, err)
}
