package reportRepository

import (
	"FinTrack/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Stats:    &statsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Stats interface {
		GetCurrencyTotals(ctx context.Context, userID string, transactionType string, period entity.Period, currency string) ([]entity.CurrencyTotal, error)
		GetCategoryBreakdown(ctx context.Context, userID string, transactionType string, period entity.Period, currency string) ([]entity.CategoryTotal, error)
		GetTopCategories(ctx context.Context, userID string, transactionType string, currency string, period entity.Period, limit int) ([]entity.CategoryTotal, error)
		GetDailyTotals(ctx context.Context, userID string, transactionType string, currency string, period entity.Period) ([]entity.DailyTotal, error)
		GetCategoryCurrencyTotals(ctx context.Context, userID string, categoryID string, period entity.Period) ([]entity.CurrencyTotal, error)
		GetRecentTransactions(ctx context.Context, userID string, categoryID string, period entity.Period, limit int) ([]entity.RecentTransaction, error)
	}

	Commit   func() error
	Rollback func() error
}

type statsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
