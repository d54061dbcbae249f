package categoryHandler

import (
	"FinTrack/internal/api/category"
	contextPkg "FinTrack/pkg/context"
	"FinTrack/pkg/handlerUtil"
	jwtPkg "FinTrack/pkg/jwt"
	"FinTrack/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// GetCategoryStats returns the category together with its usage statistics.
// The period token is optional; without one the whole history counts.
func (h *CategoryHandler) GetCategoryStats(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing category stats request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	item, err := h.categoryService.GetCategoryByID(c, ctx.Params("id"), userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_category_stats")
	}

	usage, err := h.reportService.CategoryUsage(c, userData.ID, item.ID, ctx.Query("period"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_category_stats")
	}

	response := category.CategoryStatsResponse{
		CategoryResponse:   makeCategoryResponse(item),
		Stats:              usage.Stats,
		RecentTransactions: usage.RecentTransactions,
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}
