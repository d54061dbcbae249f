package reportHandler

import (
	reportService "FinTrack/internal/api/report/service"
	"FinTrack/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	reportService reportService.IReportService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	reportService reportService.IReportService,
) *ReportHandler {
	return &ReportHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		reportService: reportService,
	}
}

func (h *ReportHandler) Start(srv fiber.Router) {
	reports := srv.Group("/reports")

	reports.Get("/monthly", h.middleware.NewTokenMiddleware, h.GetMonthlyReport)
	reports.Get("/income-expense", h.middleware.NewTokenMiddleware, h.GetIncomeExpenseReport)
	reports.Get("/category", h.middleware.NewTokenMiddleware, h.GetCategoryReport)
}
