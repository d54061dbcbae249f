package reportService

import (
	"testing"
	"time"

	"FinTrack/internal/api/report"
	"FinTrack/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func TestGetTransactionStats(t *testing.T) {
	stats := &stubStats{
		currencyTotals: map[string][]entity.CurrencyTotal{
			"income": {
				{Currency: "RUB", Total: 1000, Count: 1},
				{Currency: "USD", Total: 50, Count: 2},
			},
			"expense": {{Currency: "RUB", Total: 400, Count: 3}},
		},
		breakdowns: map[string][]entity.CategoryTotal{
			"income": {
				{CategoryID: "cat1", Name: "Salary", Currency: "RUB", Total: 1000, Count: 1},
			},
		},
	}
	svc := newTestService(stats)

	result, err := svc.GetTransactionStats(context.Background(), testUserID, entity.PeriodMonth, "")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Income.TotalCount)
	assert.Equal(t, 3, result.Expense.TotalCount)

	incomeRUB, _ := result.Income.TotalFor("RUB")
	incomeUSD, _ := result.Income.TotalFor("USD")
	assert.Equal(t, 1000.0, incomeRUB)
	assert.Equal(t, 50.0, incomeUSD)

	require.Len(t, result.Income.ByCategory, 1)
	assert.Equal(t, "Salary", result.Income.ByCategory[0].Name)
}

func TestGetTransactionStats_EmptyPeriodIsNotAnError(t *testing.T) {
	svc := newTestService(&stubStats{})

	result, err := svc.GetTransactionStats(context.Background(), testUserID, entity.PeriodWeek, "RUB")
	require.NoError(t, err)

	assert.Zero(t, result.Income.TotalCount)
	assert.Zero(t, result.Expense.TotalCount)
	assert.Empty(t, result.Income.ByCurrency)
	assert.Empty(t, result.Expense.ByCategory)
}

func TestGetTransactionStats_ResolvesPeriod(t *testing.T) {
	svc := newTestService(&stubStats{})

	before := time.Now().UTC()
	result, err := svc.GetTransactionStats(context.Background(), testUserID, entity.PeriodWeek, "RUB")
	require.NoError(t, err)

	assert.False(t, result.Period.End.Before(before))
	assert.WithinDuration(t, result.Period.End.AddDate(0, 0, -7), result.Period.Start, time.Second)
}

func TestGetTransactionStats_InvalidUserID(t *testing.T) {
	svc := newTestService(&stubStats{})

	_, err := svc.GetTransactionStats(context.Background(), "dashboard';--", entity.PeriodMonth, "RUB")
	assert.ErrorIs(t, err, report.ErrInvalidIdentifier)
}

func TestGetTransactionStats_InvalidCurrency(t *testing.T) {
	svc := newTestService(&stubStats{})

	_, err := svc.GetTransactionStats(context.Background(), testUserID, entity.PeriodMonth, "DOGE")
	assert.ErrorIs(t, err, report.ErrInvalidCurrency)
}

func TestPercentageOfTotal(t *testing.T) {
	assert.Equal(t, 75.0, PercentageOfTotal(600, 800))
	assert.Equal(t, 33.33, PercentageOfTotal(1, 3))
	assert.Equal(t, 66.67, PercentageOfTotal(2, 3))
	assert.Equal(t, 100.0, PercentageOfTotal(500, 500))
	assert.Zero(t, PercentageOfTotal(100, 0))
	assert.Zero(t, PercentageOfTotal(0, 0))
}
