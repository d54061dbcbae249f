package reportRepository

import (
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type currencyTotalDB struct {
	Currency sql.NullString  `db:"currency"`
	Total    sql.NullFloat64 `db:"total"`
	Count    sql.NullInt64   `db:"count"`
}

type categoryTotalDB struct {
	CategoryID sql.NullString  `db:"category_id"`
	Name       sql.NullString  `db:"name"`
	Icon       sql.NullString  `db:"icon"`
	Color      sql.NullString  `db:"color"`
	Currency   sql.NullString  `db:"currency"`
	Total      sql.NullFloat64 `db:"total"`
	Count      sql.NullInt64   `db:"count"`
}

type dailyTotalDB struct {
	Day   sql.NullInt64   `db:"day"`
	Total sql.NullFloat64 `db:"total"`
	Count sql.NullInt64   `db:"count"`
}

type recentTransactionDB struct {
	ID            sql.NullString  `db:"id"`
	Type          sql.NullString  `db:"type"`
	Amount        sql.NullFloat64 `db:"amount"`
	Currency      sql.NullString  `db:"currency"`
	Description   sql.NullString  `db:"description"`
	Date          sql.NullTime    `db:"date"`
	CategoryName  sql.NullString  `db:"category_name"`
	CategoryIcon  sql.NullString  `db:"category_icon"`
	CategoryColor sql.NullString  `db:"category_color"`
}

func (r *statsRepository) GetCurrencyTotals(c context.Context, userID string, transactionType string, period entity.Period, currency string) ([]entity.CurrencyTotal, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []currencyTotalDB

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"type":       transactionType,
		"start_date": period.Start,
		"end_date":   period.End,
		"currency":   currency,
	}

	query, args, err := sqlx.Named(queryCurrencyTotals, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCurrencyTotals named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCurrencyTotals execution err")
		return nil, err
	}

	result := make([]entity.CurrencyTotal, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.CurrencyTotal{
			Currency: row.Currency.String,
			Total:    row.Total.Float64,
			Count:    int(row.Count.Int64),
		})
	}

	return result, nil
}

func (r *statsRepository) GetCategoryBreakdown(c context.Context, userID string, transactionType string, period entity.Period, currency string) ([]entity.CategoryTotal, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []categoryTotalDB

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"type":       transactionType,
		"start_date": period.Start,
		"end_date":   period.End,
		"currency":   currency,
	}

	query, args, err := sqlx.Named(queryCategoryBreakdown, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryBreakdown named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryBreakdown execution err")
		return nil, err
	}

	result := make([]entity.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeCategoryTotal(row))
	}

	return result, nil
}

func (r *statsRepository) GetTopCategories(c context.Context, userID string, transactionType string, currency string, period entity.Period, limit int) ([]entity.CategoryTotal, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []categoryTotalDB

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"type":       transactionType,
		"currency":   currency,
		"start_date": period.Start,
		"end_date":   period.End,
		"limit":      limit,
	}

	query, args, err := sqlx.Named(queryTopCategories, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTopCategories named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTopCategories execution err")
		return nil, err
	}

	result := make([]entity.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeCategoryTotal(row))
	}

	return result, nil
}

func (r *statsRepository) GetDailyTotals(c context.Context, userID string, transactionType string, currency string, period entity.Period) ([]entity.DailyTotal, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []dailyTotalDB

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"type":       transactionType,
		"currency":   currency,
		"start_date": period.Start,
		"end_date":   period.End,
	}

	query, args, err := sqlx.Named(queryDailyTotals, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDailyTotals named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDailyTotals execution err")
		return nil, err
	}

	result := make([]entity.DailyTotal, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.DailyTotal{
			Day:   int(row.Day.Int64),
			Total: row.Total.Float64,
			Count: int(row.Count.Int64),
		})
	}

	return result, nil
}

func (r *statsRepository) GetCategoryCurrencyTotals(c context.Context, userID string, categoryID string, period entity.Period) ([]entity.CurrencyTotal, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []currencyTotalDB

	argsKV := map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
		"start_date":  period.Start,
		"end_date":    period.End,
	}

	query, args, err := sqlx.Named(queryCategoryCurrencyTotals, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryCurrencyTotals named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryCurrencyTotals execution err")
		return nil, err
	}

	result := make([]entity.CurrencyTotal, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.CurrencyTotal{
			Currency: row.Currency.String,
			Total:    row.Total.Float64,
			Count:    int(row.Count.Int64),
		})
	}

	return result, nil
}

func (r *statsRepository) GetRecentTransactions(c context.Context, userID string, categoryID string, period entity.Period, limit int) ([]entity.RecentTransaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []recentTransactionDB

	argsKV := map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
		"start_date":  period.Start,
		"end_date":    period.End,
		"limit":       limit,
	}

	query, args, err := sqlx.Named(queryRecentTransactions, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentTransactions named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentTransactions execution err")
		return nil, err
	}

	result := make([]entity.RecentTransaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.RecentTransaction{
			ID:            row.ID.String,
			Type:          row.Type.String,
			Amount:        row.Amount.Float64,
			Currency:      row.Currency.String,
			Description:   row.Description.String,
			Date:          row.Date.Time,
			CategoryName:  row.CategoryName.String,
			CategoryIcon:  row.CategoryIcon.String,
			CategoryColor: row.CategoryColor.String,
		})
	}

	return result, nil
}

func (r *statsRepository) makeCategoryTotal(row categoryTotalDB) entity.CategoryTotal {
	return entity.CategoryTotal{
		CategoryID: row.CategoryID.String,
		Name:       row.Name.String,
		Icon:       row.Icon.String,
		Color:      row.Color.String,
		Currency:   row.Currency.String,
		Total:      row.Total.Float64,
		Count:      int(row.Count.Int64),
	}
}
