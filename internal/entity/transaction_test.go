package entity

import (
	"testing"
	"time"

	"FinTrack/internal/api/transaction"

	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		ID:         "01HQZX5J8N0000000000000001",
		UserID:     "01HQZX5J8N0000000000000002",
		Type:       string(TransactionTypeExpense),
		Amount:     150.50,
		Currency:   string(DefaultCurrency),
		CategoryID: "01HQZX5J8N0000000000000003",
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransactionValidate(t *testing.T) {
	tx := validTransaction()
	assert.NoError(t, tx.Validate())
}

func TestTransactionValidate_RejectsUnknownType(t *testing.T) {
	tx := validTransaction()
	tx.Type = "transfer"

	assert.ErrorIs(t, tx.Validate(), transaction.ErrInvalidTransactionType)
}

func TestTransactionValidate_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -10} {
		tx := validTransaction()
		tx.Amount = amount

		assert.ErrorIs(t, tx.Validate(), transaction.ErrInvalidAmount)
	}
}

func TestTransactionValidate_RejectsUnknownCurrency(t *testing.T) {
	tx := validTransaction()
	tx.Currency = "XAU"

	assert.ErrorIs(t, tx.Validate(), transaction.ErrInvalidCurrency)
}

func TestTransactionValidate_RequiresCategory(t *testing.T) {
	tx := validTransaction()
	tx.CategoryID = ""

	assert.ErrorIs(t, tx.Validate(), transaction.ErrInvalidCategoryID)
}

func TestIsValidCurrency(t *testing.T) {
	for _, currency := range []string{"RUB", "USD", "EUR", "GBP", "CNY", "JPY", "KZT", "BYN"} {
		assert.True(t, IsValidCurrency(currency), currency)
	}

	assert.False(t, IsValidCurrency("rub"))
	assert.False(t, IsValidCurrency(""))
	assert.False(t, IsValidCurrency("XAU"))
}

func TestTypeStatsTotalFor(t *testing.T) {
	stats := TypeStats{
		ByCurrency: []CurrencyTotal{
			{Currency: "RUB", Total: 1000, Count: 3},
			{Currency: "USD", Total: 50, Count: 1},
		},
	}

	total, count := stats.TotalFor("RUB")
	assert.Equal(t, 1000.0, total)
	assert.Equal(t, 3, count)

	total, count = stats.TotalFor("EUR")
	assert.Zero(t, total)
	assert.Zero(t, count)
}
