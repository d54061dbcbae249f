package category

import "FinTrack/internal/api/report"

type CreateCategoryRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"required,min=1,max=50"`
	Type   string `json:"type" validate:"required,oneof=income expense"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

type UpdateCategoryRequest struct {
	ID     string `json:"id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"omitempty,min=1,max=50"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CategoryListResponse struct {
	Total      int                `json:"total"`
	Categories []CategoryResponse `json:"categories"`
}

// CategoryStatsResponse carries the category itself plus its usage summary
// over the requested period.
type CategoryStatsResponse struct {
	CategoryResponse
	Stats              report.CategoryUsageStats       `json:"stats"`
	RecentTransactions []report.RecentTransactionEntry `json:"recent_transactions"`
}
