package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steve191/personal-expense-tracker/internal/model"
)

func txn(date, desc, amount string) model.Transaction {
	return model.Transaction{Date: date, Description: desc, Amount: amount}
}

func TestFilterNew_DropsExactTripleMatches(t *testing.T) {
	existing := []model.Transaction{txn("20240101", "Rent", "-1000.00")}
	candidates := []model.Transaction{
		txn("20240101", "Rent", "-1000.00"),
		txn("20240102", "Groceries", "-85.20"),
	}

	fresh := FilterNew(candidates, existing, false)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Groceries", fresh[0].Description)
}

func TestFilterNew_TripleMustMatchAllFields(t *testing.T) {
	existing := []model.Transaction{txn("20240101", "Rent", "-1000.00")}
	candidates := []model.Transaction{
		txn("20240102", "Rent", "-1000.00"), // different date
		txn("20240101", "Rent", "-999.00"),  // different amount
		txn("20240101", "rent", "-1000.00"), // different description case
	}

	fresh := FilterNew(candidates, existing, false)
	assert.Len(t, fresh, 3)
}

func TestFilterNew_MatchesManualEntriesToo(t *testing.T) {
	// Dedup compares against all stored rows regardless of category, so a
	// legitimate repeat purchase identical to a manually entered row is
	// dropped. Known strictness trade-off, not a bug.
	manual := txn("20240105", "Coffee Shop", "-4.00")
	manual.Category = "Entertainment Expense"

	fresh := FilterNew(
		[]model.Transaction{txn("20240105", "Coffee Shop", "-4.00")},
		[]model.Transaction{manual},
		false)
	assert.Empty(t, fresh)
}

func TestFilterNew_PreservesOrder(t *testing.T) {
	candidates := []model.Transaction{
		txn("20240103", "c", "-3.00"),
		txn("20240101", "a", "-1.00"),
		txn("20240102", "b", "-2.00"),
	}

	fresh := FilterNew(candidates, nil, false)
	require.Len(t, fresh, 3)
	assert.Equal(t, "c", fresh[0].Description)
	assert.Equal(t, "a", fresh[1].Description)
	assert.Equal(t, "b", fresh[2].Description)
}

func TestFilterNew_DropsDuplicatesWithinBatch(t *testing.T) {
	candidates := []model.Transaction{
		txn("20240101", "a", "-1.00"),
		txn("20240101", "a", "-1.00"),
	}

	fresh := FilterNew(candidates, nil, false)
	assert.Len(t, fresh, 1)
}

func TestFilterNew_DropsBalanceRowsForOFX(t *testing.T) {
	candidates := []model.Transaction{
		txn("20240101", "OPEN BALANCE", "5000.00"),
		txn("20240103", "Fuel", "-52.00"),
		txn("20240131", "CLOSE BALANCE", "4948.00"),
	}

	fresh := FilterNew(candidates, nil, true)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Fuel", fresh[0].Description)
}

func TestFilterNew_KeepsBalanceLookalikesForCSV(t *testing.T) {
	candidates := []model.Transaction{txn("20240101", "OPEN BALANCE", "5000.00")}

	fresh := FilterNew(candidates, nil, false)
	assert.Len(t, fresh, 1)
}

func TestKeyOf_IgnoresIDAndCategory(t *testing.T) {
	a := model.Transaction{ID: 1, Date: "20240101", Description: "x", Amount: "1.00", Category: "Fuel"}
	b := model.Transaction{ID: 9, Date: "20240101", Description: "x", Amount: "1.00", Category: "Income"}
	assert.Equal(t, KeyOf(a), KeyOf(b))
}
