package entity

import (
	"FinTrack/internal/api/transaction"
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

type Transaction struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Type        string    `db:"type"`
	Amount      float64   `db:"amount"`
	Currency    string    `db:"currency"`
	CategoryID  string    `db:"category_id"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return transaction.ErrInvalidTransactionType
	}

	if t.Amount <= 0 {
		return transaction.ErrInvalidAmount
	}

	if !IsValidCurrency(t.Currency) {
		return transaction.ErrInvalidCurrency
	}

	if t.CategoryID == "" {
		return transaction.ErrInvalidCategoryID
	}

	return nil
}

// TransactionFilter narrows transaction listings. Zero values mean the
// dimension is not filtered on.
type TransactionFilter struct {
	Type       string
	Currency   string
	CategoryID string
	StartDate  time.Time
	EndDate    time.Time
	MinAmount  float64
	MaxAmount  float64
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}
