package entity

import "time"

// Aggregation buckets produced by the report repository. Amounts are never
// converted between currencies; every bucket is scoped to a single currency.

type CurrencyTotal struct {
	Currency string  `db:"currency"`
	Total    float64 `db:"total"`
	Count    int     `db:"count"`
}

type CategoryTotal struct {
	CategoryID string  `db:"category_id"`
	Name       string  `db:"name"`
	Icon       string  `db:"icon"`
	Color      string  `db:"color"`
	Currency   string  `db:"currency"`
	Total      float64 `db:"total"`
	Count      int     `db:"count"`
}

type DailyTotal struct {
	Day   int     `db:"day"`
	Total float64 `db:"total"`
	Count int     `db:"count"`
}

// TypeStats aggregates one transaction type over a period.
type TypeStats struct {
	ByCurrency []CurrencyTotal
	ByCategory []CategoryTotal
	TotalCount int
}

// TransactionStats is the combined income/expense aggregation for a period.
type TransactionStats struct {
	Period  Period
	Income  TypeStats
	Expense TypeStats
}

// TotalFor returns the grand total and record count for one currency.
func (s TypeStats) TotalFor(currency string) (float64, int) {
	for _, bucket := range s.ByCurrency {
		if bucket.Currency == currency {
			return bucket.Total, bucket.Count
		}
	}
	return 0, 0
}

// RecentTransaction is one row of the recent-activity feed embedded in the
// user and category statistics. The category fields come from the join, so
// orphaned transactions never appear here.
type RecentTransaction struct {
	ID            string    `db:"id"`
	Type          string    `db:"type"`
	Amount        float64   `db:"amount"`
	Currency      string    `db:"currency"`
	Description   string    `db:"description"`
	Date          time.Time `db:"date"`
	CategoryName  string    `db:"category_name"`
	CategoryIcon  string    `db:"category_icon"`
	CategoryColor string    `db:"category_color"`
}

// DayStat is one dense calendar-day entry of a monthly report.
type DayStat struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}
