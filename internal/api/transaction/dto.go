package transaction

type CreateTransactionRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"required"`
	CategoryID  string  `json:"category_id" validate:"required"`
	Description string  `json:"description" validate:"max=500"`
	Date        string  `json:"date"`
}

type UpdateTransactionRequest struct {
	ID          string  `json:"id" validate:"required"`
	UserID      string  `json:"user_id" validate:"required"`
	Type        string  `json:"type" validate:"omitempty,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"omitempty,gt=0"`
	Currency    string  `json:"currency"`
	CategoryID  string  `json:"category_id"`
	Description string  `json:"description" validate:"max=500"`
	Date        string  `json:"date"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	CategoryID  string  `json:"category_id"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TransactionListResponse struct {
	Total        int                   `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
	Transactions []TransactionResponse `json:"transactions"`
}
