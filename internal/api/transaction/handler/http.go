package transactionHandler

import (
	reportService "FinTrack/internal/api/report/service"
	transactionService "FinTrack/internal/api/transaction/service"
	"FinTrack/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
	reportService      reportService.IReportService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
	reportService reportService.IReportService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
		reportService:      reportService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/transactions")

	transactions.Post("/", h.middleware.NewTokenMiddleware, h.CreateTransaction)
	transactions.Get("/", h.middleware.NewTokenMiddleware, h.GetTransactions)
	// Registered before /:id so the literal segment wins.
	transactions.Get("/stats", h.middleware.NewTokenMiddleware, h.GetTransactionStats)
	transactions.Get("/:id", h.middleware.NewTokenMiddleware, h.GetTransaction)
	transactions.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateTransaction)
	transactions.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteTransaction)
}
