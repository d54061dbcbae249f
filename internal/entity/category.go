package entity

import (
	"FinTrack/internal/api/category"
	"strings"
	"time"
)

type Category struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	Icon      string    `db:"icon"`
	Color     string    `db:"color"`
	IsDefault bool      `db:"is_default"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (c *Category) Validate() error {
	if c.Name == "" || len(c.Name) > 50 {
		return category.ErrInvalidCategoryName
	}

	if !IsValidTransactionType(c.Type) {
		return category.ErrInvalidCategoryType
	}

	return nil
}

// NormalizeColor prepends the missing '#' on hex colors, matching what the
// clients send in practice.
func NormalizeColor(color string) string {
	if color != "" && !strings.HasPrefix(color, "#") {
		return "#" + color
	}
	return color
}

// DefaultCategory is a seed row created for every new user at registration.
type DefaultCategory struct {
	Name  string
	Type  TransactionType
	Icon  string
	Color string
}

func DefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{Name: "Salary", Type: TransactionTypeIncome, Icon: "cash", Color: "#4CAF50"},
		{Name: "Bonuses", Type: TransactionTypeIncome, Icon: "gift", Color: "#8BC34A"},
		{Name: "Deposits", Type: TransactionTypeIncome, Icon: "bank", Color: "#009688"},
		{Name: "Investments", Type: TransactionTypeIncome, Icon: "chart-line", Color: "#03A9F4"},
		{Name: "Other income", Type: TransactionTypeIncome, Icon: "plus-circle", Color: "#2196F3"},

		{Name: "Groceries", Type: TransactionTypeExpense, Icon: "cart-shopping", Color: "#FF9800"},
		{Name: "Restaurants", Type: TransactionTypeExpense, Icon: "utensils", Color: "#F44336"},
		{Name: "Transport", Type: TransactionTypeExpense, Icon: "car", Color: "#3F51B5"},
		{Name: "Utilities", Type: TransactionTypeExpense, Icon: "house", Color: "#673AB7"},
		{Name: "Communication", Type: TransactionTypeExpense, Icon: "mobile", Color: "#9C27B0"},
		{Name: "Entertainment", Type: TransactionTypeExpense, Icon: "film", Color: "#E91E63"},
		{Name: "Health", Type: TransactionTypeExpense, Icon: "heart-pulse", Color: "#F06292"},
		{Name: "Clothing", Type: TransactionTypeExpense, Icon: "shirt", Color: "#FF5722"},
		{Name: "Education", Type: TransactionTypeExpense, Icon: "book", Color: "#795548"},
		{Name: "Other expenses", Type: TransactionTypeExpense, Icon: "minus-circle", Color: "#607D8B"},
	}
}
