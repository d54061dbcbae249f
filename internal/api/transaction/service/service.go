package transactionService

import (
	categoryRepository "FinTrack/internal/api/category/repository"
	"FinTrack/internal/api/transaction"
	transactionRepository "FinTrack/internal/api/transaction/repository"
	"FinTrack/internal/entity"
	"FinTrack/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) error
	GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error)
	GetTransactions(ctx context.Context, userID string, filter entity.TransactionFilter) ([]entity.Transaction, int, error)
	UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, id string, userID string) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	categoryRepository    categoryRepository.Repository
	utils                 utils.IUtils
}

func NewTransactionService(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	cr categoryRepository.Repository,
	utils utils.IUtils,
) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		categoryRepository:    cr,
		utils:                 utils,
	}
}
