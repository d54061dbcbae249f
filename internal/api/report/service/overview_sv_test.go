package reportService

import (
	"testing"
	"time"

	"FinTrack/internal/api/report"
	reportRepository "FinTrack/internal/api/report/repository"
	"FinTrack/internal/entity"
	"FinTrack/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

// overviewStats distinguishes all-time windows (zero start) from bounded
// ones, and records the arguments of the usage queries.
type overviewStats struct {
	stubStats
	allTimeTotals map[string][]entity.CurrencyTotal
	monthTotals   map[string][]entity.CurrencyTotal

	lastCurrency    string
	lastUsagePeriod entity.Period
}

func (s *overviewStats) GetCurrencyTotals(_ context.Context, _ string, transactionType string, period entity.Period, currency string) ([]entity.CurrencyTotal, error) {
	s.lastCurrency = currency
	if period.Start.IsZero() {
		return s.allTimeTotals[transactionType], nil
	}
	return s.monthTotals[transactionType], nil
}

func (s *overviewStats) GetCategoryCurrencyTotals(_ context.Context, _ string, _ string, period entity.Period) ([]entity.CurrencyTotal, error) {
	s.lastUsagePeriod = period
	return s.categoryCurrencyTotals, nil
}

type overviewRepository struct {
	stats *overviewStats
}

func (r *overviewRepository) NewClient(bool) (reportRepository.Client, error) {
	return reportRepository.Client{
		Stats:    r.stats,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newOverviewService(stats *overviewStats) IReportService {
	return NewReportService(log.NewLogger(), &overviewRepository{stats: stats})
}

func TestUserStatistics(t *testing.T) {
	stats := &overviewStats{
		allTimeTotals: map[string][]entity.CurrencyTotal{
			"income":  {{Currency: "RUB", Total: 5000, Count: 5}},
			"expense": {{Currency: "RUB", Total: 2000, Count: 8}},
		},
		monthTotals: map[string][]entity.CurrencyTotal{
			"income":  {{Currency: "RUB", Total: 1000, Count: 1}},
			"expense": {{Currency: "RUB", Total: 400, Count: 2}},
		},
		stubStats: stubStats{
			topCategories: map[string][]entity.CategoryTotal{
				"expense": {{CategoryID: "cat1", Name: "Groceries", Currency: "RUB", Total: 1500, Count: 6}},
			},
			recentTransactions: []entity.RecentTransaction{
				{
					ID:           "tx1",
					Type:         "expense",
					Amount:       250,
					Currency:     "RUB",
					Date:         time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
					CategoryName: "Groceries",
				},
			},
		},
	}
	svc := newOverviewService(stats)

	result, err := svc.UserStatistics(context.Background(), testUserID, "RUB")
	require.NoError(t, err)

	assert.Equal(t, 5000.0, result.TotalIncome)
	assert.Equal(t, 2000.0, result.TotalExpense)
	assert.Equal(t, 3000.0, result.Balance)
	assert.Equal(t, 1000.0, result.MonthIncome)
	assert.Equal(t, 400.0, result.MonthExpense)
	assert.Equal(t, 600.0, result.MonthBalance)

	require.Len(t, result.TopExpenseCategories, 1)
	assert.Equal(t, "Groceries", result.TopExpenseCategories[0].Name)

	require.Len(t, result.RecentTransactions, 1)
	assert.Equal(t, "tx1", result.RecentTransactions[0].ID)
	assert.Equal(t, "Groceries", result.RecentTransactions[0].CategoryName)
	assert.Equal(t, "2024-03-15T12:00:00Z", result.RecentTransactions[0].Date)
}

func TestUserStatistics_DefaultsCurrency(t *testing.T) {
	stats := &overviewStats{}
	svc := newOverviewService(stats)

	_, err := svc.UserStatistics(context.Background(), testUserID, "")
	require.NoError(t, err)

	assert.Equal(t, "RUB", stats.lastCurrency)
}

func TestUserStatistics_InvalidUserID(t *testing.T) {
	svc := newOverviewService(&overviewStats{})

	_, err := svc.UserStatistics(context.Background(), "nope", "RUB")
	assert.ErrorIs(t, err, report.ErrInvalidIdentifier)
}

func TestUserStatistics_InvalidCurrency(t *testing.T) {
	svc := newOverviewService(&overviewStats{})

	_, err := svc.UserStatistics(context.Background(), testUserID, "DOGE")
	assert.ErrorIs(t, err, report.ErrInvalidCurrency)
}

const testCategoryID = "01HQZX5J8N0000000000000002"

func TestCategoryUsage(t *testing.T) {
	stats := &overviewStats{
		stubStats: stubStats{
			categoryCurrencyTotals: []entity.CurrencyTotal{
				{Currency: "RUB", Total: 600, Count: 2},
				{Currency: "USD", Total: 50, Count: 1},
			},
			recentTransactions: []entity.RecentTransaction{
				{ID: "tx1", Type: "expense", Amount: 300, Currency: "RUB"},
			},
		},
	}
	svc := newOverviewService(stats)

	result, err := svc.CategoryUsage(context.Background(), testUserID, testCategoryID, entity.PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.TotalTransactions)
	require.Len(t, result.Stats.ByCurrency, 2)
	assert.Equal(t, 300.0, result.Stats.ByCurrency[0].Average)
	assert.Equal(t, 50.0, result.Stats.ByCurrency[1].Average)
	require.Len(t, result.RecentTransactions, 1)
	assert.Equal(t, "tx1", result.RecentTransactions[0].ID)
}

func TestCategoryUsage_EmptyPeriodSpansAllHistory(t *testing.T) {
	stats := &overviewStats{}
	svc := newOverviewService(stats)

	_, err := svc.CategoryUsage(context.Background(), testUserID, testCategoryID, "")
	require.NoError(t, err)

	assert.True(t, stats.lastUsagePeriod.Start.IsZero())
	assert.False(t, stats.lastUsagePeriod.End.IsZero())
}

func TestCategoryUsage_ResolvesPeriodToken(t *testing.T) {
	stats := &overviewStats{}
	svc := newOverviewService(stats)

	_, err := svc.CategoryUsage(context.Background(), testUserID, testCategoryID, entity.PeriodWeek)
	require.NoError(t, err)

	assert.WithinDuration(t, stats.lastUsagePeriod.End.AddDate(0, 0, -7), stats.lastUsagePeriod.Start, time.Second)
}

func TestCategoryUsage_InvalidCategoryID(t *testing.T) {
	svc := newOverviewService(&overviewStats{})

	_, err := svc.CategoryUsage(context.Background(), testUserID, "not-a-category", "")
	assert.ErrorIs(t, err, report.ErrInvalidIdentifier)
}

func TestTransactionStatsReport(t *testing.T) {
	stats := &stubStats{
		currencyTotals: map[string][]entity.CurrencyTotal{
			"income":  {{Currency: "RUB", Total: 1000, Count: 1}},
			"expense": {{Currency: "RUB", Total: 400, Count: 2}},
		},
		breakdowns: map[string][]entity.CategoryTotal{
			"expense": {{CategoryID: "cat1", Name: "Groceries", Currency: "RUB", Total: 400, Count: 2}},
		},
	}
	svc := newTestService(stats)

	result, err := svc.TransactionStatsReport(context.Background(), testUserID, entity.PeriodMonth, "RUB")
	require.NoError(t, err)

	assert.Equal(t, entity.PeriodMonth, result.Period)
	require.Len(t, result.Income.ByCurrency, 1)
	assert.Equal(t, 1000.0, result.Income.ByCurrency[0].Total)
	assert.Equal(t, 1, result.Income.TotalCount)
	assert.Equal(t, 2, result.Expense.TotalCount)
	require.Len(t, result.Expense.ByCategory, 1)
	assert.Equal(t, "Groceries", result.Expense.ByCategory[0].Name)

	start, err := time.Parse(time.RFC3339, result.StartDate)
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, result.EndDate)
	require.NoError(t, err)
	assert.True(t, start.Before(end))
}
