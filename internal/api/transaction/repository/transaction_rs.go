package transactionRepository

import (
	"FinTrack/internal/api/transaction"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type transactionDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Type        sql.NullString  `db:"type"`
	Amount      sql.NullFloat64 `db:"amount"`
	Currency    sql.NullString  `db:"currency"`
	CategoryID  sql.NullString  `db:"category_id"`
	Description sql.NullString  `db:"description"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *transactionRepository) CreateTransaction(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          tx.ID,
		"user_id":     tx.UserID,
		"type":        tx.Type,
		"amount":      tx.Amount,
		"currency":    tx.Currency,
		"category_id": tx.CategoryID,
		"description": tx.Description,
		"date":        tx.Date,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id string, userID string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row transactionDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(row), nil
}

// filterClauses translates the optional filter dimensions into WHERE
// fragments. Named parameters keep the arguments out of the SQL text.
func filterClauses(userID string, filter entity.TransactionFilter) ([]string, map[string]interface{}) {
	clauses := []string{"user_id = :user_id"}
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	if filter.Type != "" {
		clauses = append(clauses, "type = :type")
		argsKV["type"] = filter.Type
	}
	if filter.Currency != "" {
		clauses = append(clauses, "currency = :currency")
		argsKV["currency"] = filter.Currency
	}
	if filter.CategoryID != "" {
		clauses = append(clauses, "category_id = :category_id")
		argsKV["category_id"] = filter.CategoryID
	}
	if !filter.StartDate.IsZero() {
		clauses = append(clauses, "date >= :start_date")
		argsKV["start_date"] = filter.StartDate
	}
	if !filter.EndDate.IsZero() {
		clauses = append(clauses, "date <= :end_date")
		argsKV["end_date"] = filter.EndDate
	}
	if filter.MinAmount > 0 {
		clauses = append(clauses, "amount >= :min_amount")
		argsKV["min_amount"] = filter.MinAmount
	}
	if filter.MaxAmount > 0 {
		clauses = append(clauses, "amount <= :max_amount")
		argsKV["max_amount"] = filter.MaxAmount
	}

	return clauses, argsKV
}

func (r *transactionRepository) GetTransactions(c context.Context, userID string, filter entity.TransactionFilter) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []transactionDB

	clauses, argsKV := filterClauses(userID, filter)

	sortField := "date"
	if filter.SortBy == "amount" {
		sortField = "amount"
	}
	sortOrder := "ASC"
	if filter.SortDesc {
		sortOrder = "DESC"
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	argsKV["limit"] = limit
	argsKV["offset"] = filter.Offset

	queryToUse := querySelectTransactions +
		" WHERE " + strings.Join(clauses, " AND ") +
		fmt.Sprintf(" ORDER BY %s %s", sortField, sortOrder) +
		" LIMIT :limit OFFSET :offset"

	query, args, err := sqlx.Named(queryToUse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactions named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactions execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) CountTransactions(c context.Context, userID string, filter entity.TransactionFilter) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	clauses, argsKV := filterClauses(userID, filter)
	queryToUse := queryCountTransactions + " WHERE " + strings.Join(clauses, " AND ")

	query, args, err := sqlx.Named(queryToUse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountTransactions named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var count int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountTransactions execution err")
		return 0, err
	}

	return count, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          tx.ID,
		"user_id":     tx.UserID,
		"type":        tx.Type,
		"amount":      tx.Amount,
		"currency":    tx.Currency,
		"category_id": tx.CategoryID,
		"description": tx.Description,
		"date":        tx.Date,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) makeTransaction(row transactionDB) entity.Transaction {
	return entity.Transaction{
		ID:          row.ID.String,
		UserID:      row.UserID.String,
		Type:        row.Type.String,
		Amount:      row.Amount.Float64,
		Currency:    row.Currency.String,
		CategoryID:  row.CategoryID.String,
		Description: row.Description.String,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
