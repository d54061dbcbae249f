package transactionHandler

import (
	"FinTrack/internal/api/transaction"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"FinTrack/pkg/handlerUtil"
	jwtPkg "FinTrack/pkg/jwt"
	"FinTrack/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *TransactionHandler) CreateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var request transaction.CreateTransactionRequest
	if err := ctx.BodyParser(&request); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to parse create transaction request body")
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	request.UserID = userData.ID

	if err := h.validator.Struct(request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.transactionService.CreateTransaction(c, request); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, "Transaction created")
	}
}

func (h *TransactionHandler) GetTransactions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	filter, err := makeTransactionFilter(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	transactions, total, err := h.transactionService.GetTransactions(c, userData.ID, filter)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transactions")
	}

	response := transaction.TransactionListResponse{
		Total:        total,
		Limit:        filter.Limit,
		Offset:       filter.Offset,
		Transactions: make([]transaction.TransactionResponse, 0, len(transactions)),
	}
	for _, item := range transactions {
		response.Transactions = append(response.Transactions, makeTransactionResponse(item))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *TransactionHandler) GetTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	item, err := h.transactionService.GetTransactionByID(c, ctx.Params("id"), userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeTransactionResponse(item))
	}
}

func (h *TransactionHandler) UpdateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var request transaction.UpdateTransactionRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	request.ID = ctx.Params("id")
	request.UserID = userData.ID

	if err := h.validator.Struct(request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.transactionService.UpdateTransaction(c, request); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Transaction updated")
	}
}

func (h *TransactionHandler) DeleteTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.transactionService.DeleteTransaction(c, ctx.Params("id"), userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Transaction deleted")
	}
}

func makeTransactionFilter(ctx *fiber.Ctx) (entity.TransactionFilter, error) {
	filter := entity.TransactionFilter{
		Type:       ctx.Query("type"),
		Currency:   ctx.Query("currency"),
		CategoryID: ctx.Query("category_id"),
		SortBy:     ctx.Query("sort_by", "date"),
		SortDesc:   ctx.QueryBool("sort_desc", true),
		Limit:      ctx.QueryInt("limit", 20),
		Offset:     ctx.QueryInt("offset", 0),
	}

	if raw := ctx.Query("start_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entity.TransactionFilter{}, transaction.ErrInvalidTransactionDate
		}
		filter.StartDate = parsed
	}
	if raw := ctx.Query("end_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return entity.TransactionFilter{}, transaction.ErrInvalidTransactionDate
		}
		filter.EndDate = parsed
	}

	filter.MinAmount = ctx.QueryFloat("min_amount")
	filter.MaxAmount = ctx.QueryFloat("max_amount")

	return filter, nil
}

func makeTransactionResponse(item entity.Transaction) transaction.TransactionResponse {
	return transaction.TransactionResponse{
		ID:          item.ID,
		UserID:      item.UserID,
		Type:        item.Type,
		Amount:      item.Amount,
		Currency:    item.Currency,
		CategoryID:  item.CategoryID,
		Description: item.Description,
		Date:        item.Date.Format(time.RFC3339),
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.Format(time.RFC3339),
	}
}
