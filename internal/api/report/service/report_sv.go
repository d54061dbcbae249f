package reportService

import (
	"FinTrack/internal/api/report"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"FinTrack/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

const topCategoriesLimit = 5

// MonthlyReport assembles the calendar report for one explicit month: dense
// per-day income/expense/balance, currency-scoped grand totals and the five
// highest-total categories of each type.
func (s *reportService) MonthlyReport(ctx context.Context, userID string, year int, month int, currency string) (report.MonthlyReportResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !utils.IsValidID(userID) {
		return report.MonthlyReportResponse{}, report.ErrInvalidIdentifier
	}

	if currency == "" {
		currency = string(entity.DefaultCurrency)
	}
	if !entity.IsValidCurrency(currency) {
		return report.MonthlyReportResponse{}, report.ErrInvalidCurrency
	}

	period, err := entity.MonthPeriod(year, month)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"year":       year,
			"month":      month,
		}).Warn("Invalid report month")
		return report.MonthlyReportResponse{}, err
	}

	repo, err := s.reportRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return report.MonthlyReportResponse{}, err
	}

	var (
		dailyIncome  []entity.DailyTotal
		dailyExpense []entity.DailyTotal
		topIncome    []entity.CategoryTotal
		topExpense   []entity.CategoryTotal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		dailyIncome, err = repo.Stats.GetDailyTotals(gctx, userID, string(entity.TransactionTypeIncome), currency, period)
		return err
	})
	g.Go(func() error {
		var err error
		dailyExpense, err = repo.Stats.GetDailyTotals(gctx, userID, string(entity.TransactionTypeExpense), currency, period)
		return err
	})
	g.Go(func() error {
		var err error
		topIncome, err = repo.Stats.GetTopCategories(gctx, userID, string(entity.TransactionTypeIncome), currency, period, topCategoriesLimit)
		return err
	})
	g.Go(func() error {
		var err error
		topExpense, err = repo.Stats.GetTopCategories(gctx, userID, string(entity.TransactionTypeExpense), currency, period, topCategoriesLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"year":       year,
			"month":      month,
			"error":      err.Error(),
		}).Error("Failed to assemble monthly report")
		return report.MonthlyReportResponse{}, err
	}

	var totalIncome, totalExpense float64
	for _, day := range dailyIncome {
		totalIncome += day.Total
	}
	for _, day := range dailyExpense {
		totalExpense += day.Total
	}

	// Every calendar day appears, days without transactions stay zero.
	dailyStats := make(map[int]report.DayEntry, entity.DaysInMonth(year, month))
	for day := 1; day <= entity.DaysInMonth(year, month); day++ {
		dailyStats[day] = report.DayEntry{}
	}
	for _, day := range dailyIncome {
		entry := dailyStats[day.Day]
		entry.Income = day.Total
		entry.Balance = entry.Income - entry.Expense
		dailyStats[day.Day] = entry
	}
	for _, day := range dailyExpense {
		entry := dailyStats[day.Day]
		entry.Expense = day.Total
		entry.Balance = entry.Income - entry.Expense
		dailyStats[day.Day] = entry
	}

	return report.MonthlyReportResponse{
		Year:                 year,
		Month:                month,
		Currency:             currency,
		TotalIncome:          totalIncome,
		TotalExpense:         totalExpense,
		Balance:              totalIncome - totalExpense,
		DailyStats:           dailyStats,
		TopExpenseCategories: makeCategoryEntries(topExpense, false, "", 0),
		TopIncomeCategories:  makeCategoryEntries(topIncome, false, "", 0),
	}, nil
}

// IncomeExpenseReport summarizes one symbolic period for a single currency,
// with per-category breakdowns for both transaction types.
func (s *reportService) IncomeExpenseReport(ctx context.Context, userID string, period string, currency string) (report.IncomeExpenseReportResponse, error) {
	if currency == "" {
		currency = string(entity.DefaultCurrency)
	}

	stats, err := s.GetTransactionStats(ctx, userID, period, currency)
	if err != nil {
		return report.IncomeExpenseReportResponse{}, err
	}

	incomeTotal, _ := stats.Income.TotalFor(currency)
	expenseTotal, _ := stats.Expense.TotalFor(currency)

	return report.IncomeExpenseReportResponse{
		Period:    period,
		Currency:  currency,
		StartDate: stats.Period.Start.Format(time.RFC3339),
		EndDate:   stats.Period.End.Format(time.RFC3339),
		Income: report.TypeSummary{
			Total:      incomeTotal,
			ByCategory: makeCategoryEntries(stats.Income.ByCategory, false, "", 0),
		},
		Expense: report.TypeSummary{
			Total:      expenseTotal,
			ByCategory: makeCategoryEntries(stats.Expense.ByCategory, false, "", 0),
		},
	}, nil
}

// CategoryReport restricts the period summary to one transaction type and
// derives every category's share of that type's grand total. Shares are
// computed within the requested currency only; a bucket in another currency
// contributes a percentage of 0.
func (s *reportService) CategoryReport(ctx context.Context, userID string, categoryType string, period string, currency string) (report.CategoryReportResponse, error) {
	if !entity.IsValidTransactionType(categoryType) {
		return report.CategoryReportResponse{}, report.ErrInvalidCategoryType
	}

	if currency == "" {
		currency = string(entity.DefaultCurrency)
	}

	stats, err := s.GetTransactionStats(ctx, userID, period, currency)
	if err != nil {
		return report.CategoryReportResponse{}, err
	}

	typeStats := stats.Expense
	if categoryType == string(entity.TransactionTypeIncome) {
		typeStats = stats.Income
	}

	total, _ := typeStats.TotalFor(currency)

	return report.CategoryReportResponse{
		Period:     period,
		Currency:   currency,
		Type:       categoryType,
		StartDate:  stats.Period.Start.Format(time.RFC3339),
		EndDate:    stats.Period.End.Format(time.RFC3339),
		Total:      total,
		Categories: makeCategoryEntries(typeStats.ByCategory, true, currency, total),
	}, nil
}

func makeCategoryEntries(totals []entity.CategoryTotal, withPercentage bool, currency string, grandTotal float64) []report.CategoryEntry {
	entries := make([]report.CategoryEntry, 0, len(totals))
	for _, bucket := range totals {
		entry := report.CategoryEntry{
			ID:       bucket.CategoryID,
			Name:     bucket.Name,
			Icon:     bucket.Icon,
			Color:    bucket.Color,
			Currency: bucket.Currency,
			Total:    bucket.Total,
			Count:    bucket.Count,
		}

		if withPercentage && bucket.Currency == currency {
			entry.Percentage = PercentageOfTotal(bucket.Total, grandTotal)
		}

		entries = append(entries, entry)
	}
	return entries
}
