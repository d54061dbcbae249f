package reportService

import (
	"FinTrack/internal/api/report"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"FinTrack/pkg/utils"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// GetTransactionStats aggregates income and expense over the resolved period,
// grouped by currency and by (category, currency). The four grouping queries
// are independent and read-only, so they run concurrently. An empty currency
// aggregates every currency separately; totals are never converted or summed
// across currencies.
func (s *reportService) GetTransactionStats(ctx context.Context, userID string, period string, currency string) (entity.TransactionStats, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !utils.IsValidID(userID) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("Malformed owner identifier")
		return entity.TransactionStats{}, report.ErrInvalidIdentifier
	}

	if currency != "" && !entity.IsValidCurrency(currency) {
		return entity.TransactionStats{}, report.ErrInvalidCurrency
	}

	repo, err := s.reportRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.TransactionStats{}, err
	}

	resolved := entity.ResolvePeriod(period, time.Now())

	var (
		incomeByCurrency  []entity.CurrencyTotal
		expenseByCurrency []entity.CurrencyTotal
		incomeByCategory  []entity.CategoryTotal
		expenseByCategory []entity.CategoryTotal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		incomeByCurrency, err = repo.Stats.GetCurrencyTotals(gctx, userID, string(entity.TransactionTypeIncome), resolved, currency)
		return err
	})
	g.Go(func() error {
		var err error
		expenseByCurrency, err = repo.Stats.GetCurrencyTotals(gctx, userID, string(entity.TransactionTypeExpense), resolved, currency)
		return err
	})
	g.Go(func() error {
		var err error
		incomeByCategory, err = repo.Stats.GetCategoryBreakdown(gctx, userID, string(entity.TransactionTypeIncome), resolved, currency)
		return err
	})
	g.Go(func() error {
		var err error
		expenseByCategory, err = repo.Stats.GetCategoryBreakdown(gctx, userID, string(entity.TransactionTypeExpense), resolved, currency)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"period":     period,
			"error":      err.Error(),
		}).Error("Failed to aggregate transaction statistics")
		return entity.TransactionStats{}, err
	}

	return entity.TransactionStats{
		Period: resolved,
		Income: entity.TypeStats{
			ByCurrency: incomeByCurrency,
			ByCategory: incomeByCategory,
			TotalCount: sumCounts(incomeByCurrency),
		},
		Expense: entity.TypeStats{
			ByCurrency: expenseByCurrency,
			ByCategory: expenseByCategory,
			TotalCount: sumCounts(expenseByCurrency),
		},
	}, nil
}

func sumCounts(totals []entity.CurrencyTotal) int {
	var count int
	for _, bucket := range totals {
		count += bucket.Count
	}
	return count
}

// PercentageOfTotal returns the share of total that amount represents,
// rounded to two decimals. A zero total yields 0 rather than dividing.
func PercentageOfTotal(amount float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(amount/total*100*100) / 100
}
