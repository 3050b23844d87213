// Package dedupe filters freshly parsed statement rows against transactions
// already stored for an account.
package dedupe

import "github.com/steve191/personal-expense-tracker/internal/model"

// Key is the identity of a transaction for dedup purposes. Two rows with the
// same date, description and amount are the same transaction regardless of
// category — including manually entered rows, so a legitimate repeat purchase
// on the same day is collapsed. That strictness is deliberate.
type Key struct {
	Date        string
	Description string
	Amount      string
}

// KeyOf returns the dedup key for a transaction.
func KeyOf(t model.Transaction) Key {
	return Key{Date: t.Date, Description: t.Description, Amount: t.Amount}
}

// Running-balance pseudo-transactions emitted by OFX statements. They are
// not real transactions and are never imported.
const (
	openBalance  = "OPEN BALANCE"
	closeBalance = "CLOSE BALANCE"
)

// FilterNew returns the candidates not already present in existing,
// preserving candidate order. Duplicates within the batch itself are also
// dropped, so one import never stores the same triple twice. When
// dropBalanceRows is set (OFX statements), running-balance rows are excluded
// even if never seen before.
func FilterNew(candidates, existing []model.Transaction, dropBalanceRows bool) []model.Transaction {
	seen := make(map[Key]bool, len(existing))
	for _, t := range existing {
		seen[KeyOf(t)] = true
	}

	var fresh []model.Transaction
	for _, c := range candidates {
		if dropBalanceRows && (c.Description == openBalance || c.Description == closeBalance) {
			continue
		}
		k := KeyOf(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		fresh = append(fresh, c)
	}
	return fresh
}
