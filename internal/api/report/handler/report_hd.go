package reportHandler

import (
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"FinTrack/pkg/handlerUtil"
	jwtPkg "FinTrack/pkg/jwt"
	"FinTrack/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ReportHandler) GetMonthlyReport(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing monthly report request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	year := ctx.QueryInt("year")
	month := ctx.QueryInt("month")
	if year == 0 || month == 0 {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("year and month query parameters are required"), ctx.Path())
	}

	currency := ctx.Query("currency", string(entity.DefaultCurrency))

	response, err := h.reportService.MonthlyReport(c, userData.ID, year, month, currency)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "monthly_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *ReportHandler) GetIncomeExpenseReport(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing income-expense report request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	period := ctx.Query("period", entity.PeriodMonth)
	currency := ctx.Query("currency", string(entity.DefaultCurrency))

	response, err := h.reportService.IncomeExpenseReport(c, userData.ID, period, currency)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "income_expense_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *ReportHandler) GetCategoryReport(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing category report request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	categoryType := ctx.Query("category_type")
	if categoryType == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("category_type query parameter is required"), ctx.Path())
	}

	period := ctx.Query("period", entity.PeriodMonth)
	currency := ctx.Query("currency", string(entity.DefaultCurrency))

	response, err := h.reportService.CategoryReport(c, userData.ID, categoryType, period, currency)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "category_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}
