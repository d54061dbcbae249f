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

const (
	recentTransactionsLimit         = 10
	recentCategoryTransactionsLimit = 5
)

// TransactionStatsReport exposes the raw period aggregation over the wire.
func (s *reportService) TransactionStatsReport(ctx context.Context, userID string, period string, currency string) (report.TransactionStatsResponse, error) {
	stats, err := s.GetTransactionStats(ctx, userID, period, currency)
	if err != nil {
		return report.TransactionStatsResponse{}, err
	}

	return report.TransactionStatsResponse{
		Period:    period,
		StartDate: stats.Period.Start.Format(time.RFC3339),
		EndDate:   stats.Period.End.Format(time.RFC3339),
		Income:    makeTypeStatsEntry(stats.Income),
		Expense:   makeTypeStatsEntry(stats.Expense),
	}, nil
}

// UserStatistics assembles the account-wide financial overview: all-time and
// current-month totals for one currency, the five highest-total categories of
// each type, and the latest transactions across all categories.
func (s *reportService) UserStatistics(ctx context.Context, userID string, currency string) (report.UserStatistics, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !utils.IsValidID(userID) {
		return report.UserStatistics{}, report.ErrInvalidIdentifier
	}

	if currency == "" {
		currency = string(entity.DefaultCurrency)
	}
	if !entity.IsValidCurrency(currency) {
		return report.UserStatistics{}, report.ErrInvalidCurrency
	}

	repo, err := s.reportRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return report.UserStatistics{}, err
	}

	now := time.Now()
	allTime := entity.AllTime(now)
	currentMonth := entity.ResolvePeriod(entity.PeriodMonth, now)

	var (
		totalIncome  []entity.CurrencyTotal
		totalExpense []entity.CurrencyTotal
		monthIncome  []entity.CurrencyTotal
		monthExpense []entity.CurrencyTotal
		topIncome    []entity.CategoryTotal
		topExpense   []entity.CategoryTotal
		recent       []entity.RecentTransaction
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalIncome, err = repo.Stats.GetCurrencyTotals(gctx, userID, string(entity.TransactionTypeIncome), allTime, currency)
		return err
	})
	g.Go(func() error {
		var err error
		totalExpense, err = repo.Stats.GetCurrencyTotals(gctx, userID, string(entity.TransactionTypeExpense), allTime, currency)
		return err
	})
	g.Go(func() error {
		var err error
		monthIncome, err = repo.Stats.GetCurrencyTotals(gctx, userID, string(entity.TransactionTypeIncome), currentMonth, currency)
		return err
	})
	g.Go(func() error {
		var err error
		monthExpense, err = repo.Stats.GetCurrencyTotals(gctx, userID, string(entity.TransactionTypeExpense), currentMonth, currency)
		return err
	})
	g.Go(func() error {
		var err error
		topIncome, err = repo.Stats.GetTopCategories(gctx, userID, string(entity.TransactionTypeIncome), currency, allTime, topCategoriesLimit)
		return err
	})
	g.Go(func() error {
		var err error
		topExpense, err = repo.Stats.GetTopCategories(gctx, userID, string(entity.TransactionTypeExpense), currency, allTime, topCategoriesLimit)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = repo.Stats.GetRecentTransactions(gctx, userID, "", allTime, recentTransactionsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to assemble user statistics")
		return report.UserStatistics{}, err
	}

	income := sumTotals(totalIncome)
	expense := sumTotals(totalExpense)
	mIncome := sumTotals(monthIncome)
	mExpense := sumTotals(monthExpense)

	return report.UserStatistics{
		TotalIncome:          income,
		TotalExpense:         expense,
		Balance:              income - expense,
		MonthIncome:          mIncome,
		MonthExpense:         mExpense,
		MonthBalance:         mIncome - mExpense,
		TopExpenseCategories: makeCategoryEntries(topExpense, false, "", 0),
		TopIncomeCategories:  makeCategoryEntries(topIncome, false, "", 0),
		RecentTransactions:   makeRecentTransactionEntries(recent),
	}, nil
}

// CategoryUsage summarizes how one category is used: per-currency totals with
// the average transaction amount, and the latest transactions within the
// category. An empty period token means the whole history.
func (s *reportService) CategoryUsage(ctx context.Context, userID string, categoryID string, period string) (report.CategoryUsageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !utils.IsValidID(userID) || !utils.IsValidID(categoryID) {
		return report.CategoryUsageResponse{}, report.ErrInvalidIdentifier
	}

	repo, err := s.reportRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return report.CategoryUsageResponse{}, err
	}

	resolved := entity.AllTime(time.Now())
	if period != "" {
		resolved = entity.ResolvePeriod(period, time.Now())
	}

	var (
		byCurrency []entity.CurrencyTotal
		recent     []entity.RecentTransaction
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		byCurrency, err = repo.Stats.GetCategoryCurrencyTotals(gctx, userID, categoryID, resolved)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = repo.Stats.GetRecentTransactions(gctx, userID, categoryID, resolved, recentCategoryTransactionsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"user_id":     userID,
			"category_id": categoryID,
			"error":       err.Error(),
		}).Error("Failed to assemble category usage")
		return report.CategoryUsageResponse{}, err
	}

	usage := make([]report.CurrencyUsage, 0, len(byCurrency))
	for _, bucket := range byCurrency {
		entry := report.CurrencyUsage{
			Currency: bucket.Currency,
			Total:    bucket.Total,
			Count:    bucket.Count,
		}
		if bucket.Count > 0 {
			entry.Average = bucket.Total / float64(bucket.Count)
		}
		usage = append(usage, entry)
	}

	return report.CategoryUsageResponse{
		Stats: report.CategoryUsageStats{
			ByCurrency:        usage,
			TotalTransactions: sumCounts(byCurrency),
		},
		RecentTransactions: makeRecentTransactionEntries(recent),
	}, nil
}

func sumTotals(totals []entity.CurrencyTotal) float64 {
	var sum float64
	for _, bucket := range totals {
		sum += bucket.Total
	}
	return sum
}

func makeTypeStatsEntry(stats entity.TypeStats) report.TypeStatsEntry {
	buckets := make([]report.CurrencyBucket, 0, len(stats.ByCurrency))
	for _, bucket := range stats.ByCurrency {
		buckets = append(buckets, report.CurrencyBucket{
			Currency: bucket.Currency,
			Total:    bucket.Total,
			Count:    bucket.Count,
		})
	}

	return report.TypeStatsEntry{
		ByCurrency: buckets,
		ByCategory: makeCategoryEntries(stats.ByCategory, false, "", 0),
		TotalCount: stats.TotalCount,
	}
}

func makeRecentTransactionEntries(items []entity.RecentTransaction) []report.RecentTransactionEntry {
	entries := make([]report.RecentTransactionEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, report.RecentTransactionEntry{
			ID:            item.ID,
			Type:          item.Type,
			Amount:        item.Amount,
			Currency:      item.Currency,
			Description:   item.Description,
			Date:          item.Date.Format(time.RFC3339),
			CategoryName:  item.CategoryName,
			CategoryIcon:  item.CategoryIcon,
			CategoryColor: item.CategoryColor,
		})
	}
	return entries
}
