package transaction

import "FinTrack/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrInvalidCurrency        = response.NewError(400, "invalid currency")
	ErrInvalidCategoryID      = response.NewError(400, "invalid category id")
	ErrInvalidTransactionDate = response.NewError(400, "invalid transaction date")
	ErrCategoryTypeMismatch   = response.NewError(400, "transaction type does not match category type")
	ErrCreateTransaction      = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(500, "failed to delete transaction")
)
