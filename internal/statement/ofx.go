package statement

import (
	"fmt"
	"io"

	"github.com/aclindsa/ofxgo"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

// memoLimit truncates OFX memos before whitespace collapsing.
const memoLimit = 30

// OFXParser reads an OFX bank statement. It uses the posting date and memo
// fields; the memo is truncated to 30 characters.
type OFXParser struct{}

// Format returns the parser name.
func (p *OFXParser) Format() Format { return FormatOFX }

// Parse reads the statement and returns normalized transactions in file
// order across all bank statements in the response.
func (p *OFXParser) Parse(r io.Reader) ([]model.Transaction, error) {
	resp, err := ofxgo.ParseResponse(r)
	if err != nil {
		return nil, &FormatError{Err: fmt.Errorf("parsing OFX: %w", err)}
	}

	var txns []model.Transaction
	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		for _, tr := range stmt.BankTranList.Transactions {
			memo := []rune(string(tr.Memo))
			if len(memo) > memoLimit {
				memo = memo[:memoLimit]
			}
			txns = append(txns, model.Transaction{
				Date:        tr.DtPosted.Format("20060102"),
				Description: CollapseWhitespace(string(memo)),
				Amount:      tr.TrnAmt.FloatString(2),
				Category:    model.CategoryUncategorized,
			})
		}
	}
	return txns, nil
}

// NewParser returns the parser for the configured import format. The column
// mapping is only consulted for CSV.
func NewParser(format Format, cols ColumnMapping) (Parser, error) {
	switch format {
	case FormatCSV:
		return &CSVParser{Columns: cols}, nil
	case FormatOFX:
		return &OFXParser{}, nil
	}
	return nil, fmt.Errorf("no parser for format %q", format)
}
