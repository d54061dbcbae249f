package report

// CategoryEntry is one ranked category row of a report. Percentage is only
// populated by the category-type report.
type CategoryEntry struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Currency   string  `json:"currency,omitempty"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage,omitempty"`
}

type DayEntry struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type MonthlyReportResponse struct {
	Year                 int              `json:"year"`
	Month                int              `json:"month"`
	Currency             string           `json:"currency"`
	TotalIncome          float64          `json:"total_income"`
	TotalExpense         float64          `json:"total_expense"`
	Balance              float64          `json:"balance"`
	DailyStats           map[int]DayEntry `json:"daily_stats"`
	TopExpenseCategories []CategoryEntry  `json:"top_expense_categories"`
	TopIncomeCategories  []CategoryEntry  `json:"top_income_categories"`
}

type TypeSummary struct {
	Total      float64         `json:"total"`
	ByCategory []CategoryEntry `json:"by_category"`
}

type IncomeExpenseReportResponse struct {
	Period    string      `json:"period"`
	Currency  string      `json:"currency"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Income    TypeSummary `json:"income"`
	Expense   TypeSummary `json:"expense"`
}

type CurrencyBucket struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type TypeStatsEntry struct {
	ByCurrency []CurrencyBucket `json:"by_currency"`
	ByCategory []CategoryEntry  `json:"by_category"`
	TotalCount int              `json:"total_count"`
}

// TransactionStatsResponse is the raw period aggregation behind the report
// assemblers, exposed directly for dashboard consumers.
type TransactionStatsResponse struct {
	Period    string         `json:"period"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Income    TypeStatsEntry `json:"income"`
	Expense   TypeStatsEntry `json:"expense"`
}

type RecentTransactionEntry struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description,omitempty"`
	Date          string  `json:"date"`
	CategoryName  string  `json:"category_name"`
	CategoryIcon  string  `json:"category_icon"`
	CategoryColor string  `json:"category_color"`
}

// UserStatistics is the financial overview merged into the profile payload.
// Every amount is scoped to the single requested currency.
type UserStatistics struct {
	TotalIncome          float64                  `json:"total_income"`
	TotalExpense         float64                  `json:"total_expense"`
	Balance              float64                  `json:"balance"`
	MonthIncome          float64                  `json:"month_income"`
	MonthExpense         float64                  `json:"month_expense"`
	MonthBalance         float64                  `json:"month_balance"`
	TopExpenseCategories []CategoryEntry          `json:"top_expense_categories"`
	TopIncomeCategories  []CategoryEntry          `json:"top_income_categories"`
	RecentTransactions   []RecentTransactionEntry `json:"recent_transactions"`
}

type CurrencyUsage struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
	Average  float64 `json:"average"`
}

type CategoryUsageStats struct {
	ByCurrency        []CurrencyUsage `json:"by_currency"`
	TotalTransactions int             `json:"total_transactions"`
}

// CategoryUsageResponse describes how one category is used over a period,
// merged into the category payload by the handler.
type CategoryUsageResponse struct {
	Stats              CategoryUsageStats       `json:"stats"`
	RecentTransactions []RecentTransactionEntry `json:"recent_transactions"`
}

type CategoryReportResponse struct {
	Period     string          `json:"period"`
	Currency   string          `json:"currency"`
	Type       string          `json:"type"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Total      float64         `json:"total"`
	Categories []CategoryEntry `json:"categories"`
}
