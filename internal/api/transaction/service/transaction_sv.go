package transactionService

import (
	"FinTrack/internal/api/category"
	"FinTrack/internal/api/transaction"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	referenced, err := s.lookupCategory(ctx, req.CategoryID, req.UserID)
	if err != nil {
		return err
	}

	// The category dictates which type the transaction may carry.
	if referenced.Type != req.Type {
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"type":          req.Type,
			"category_type": referenced.Type,
		}).Warn("Transaction type does not match category type")
		return transaction.ErrCategoryTypeMismatch
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return transaction.ErrInvalidTransactionDate
		}
		date = parsed
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	newTransaction := entity.Transaction{
		ID:          ULID,
		UserID:      req.UserID,
		Type:        req.Type,
		Amount:      req.Amount,
		Currency:    req.Currency,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        date,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := newTransaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return err
	}

	if err := repo.Transactions.CreateTransaction(ctx, newTransaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return transaction.ErrCreateTransaction
	}

	return nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error) {
	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return entity.Transaction{}, err
	}

	return repo.Transactions.GetTransactionByID(ctx, id, userID)
}

func (s *transactionService) GetTransactions(ctx context.Context, userID string, filter entity.TransactionFilter) ([]entity.Transaction, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return nil, 0, err
	}

	transactions, err := repo.Transactions.GetTransactions(ctx, userID, filter)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to list transactions")
		return nil, 0, err
	}

	total, err := repo.Transactions.CountTransactions(ctx, userID, filter)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to count transactions")
		return nil, 0, err
	}

	return transactions, total, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Transactions.GetTransactionByID(ctx, req.ID, req.UserID)
	if err != nil {
		return err
	}

	if req.Type != "" {
		existing.Type = req.Type
	}
	if req.Amount > 0 {
		existing.Amount = req.Amount
	}
	if req.Currency != "" {
		existing.Currency = req.Currency
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return transaction.ErrInvalidTransactionDate
		}
		existing.Date = parsed
	}
	if req.CategoryID != "" {
		existing.CategoryID = req.CategoryID
	}

	// Re-check the category whenever either side of the type pairing may
	// have changed.
	if req.CategoryID != "" || req.Type != "" {
		referenced, err := s.lookupCategory(ctx, existing.CategoryID, req.UserID)
		if err != nil {
			return err
		}
		if referenced.Type != existing.Type {
			return transaction.ErrCategoryTypeMismatch
		}
	}

	if err := existing.Validate(); err != nil {
		return err
	}

	if err := repo.Transactions.UpdateTransaction(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return err
	}

	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Transactions.DeleteTransaction(ctx, id, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return err
	}

	return nil
}

func (s *transactionService) lookupCategory(ctx context.Context, categoryID string, userID string) (entity.Category, error) {
	catRepo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return entity.Category{}, err
	}

	referenced, err := catRepo.Categories.GetCategoryByID(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return entity.Category{}, category.ErrCategoryNotFound
		}
		return entity.Category{}, err
	}

	return referenced, nil
}
