package authHandler

import (
	"FinTrack/internal/api/auth"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"FinTrack/pkg/handlerUtil"
	jwtPkg "FinTrack/pkg/jwt"
	"FinTrack/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// GetUserStatistics returns the profile together with its financial
// overview, computed for a single currency.
func (h *AuthHandler) GetUserStatistics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing user statistics request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	currency := ctx.Query("currency", string(entity.DefaultCurrency))

	user, err := h.authService.GetProfile(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "user_statistics")
	}

	statistics, err := h.reportService.UserStatistics(c, userData.ID, currency)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "user_statistics")
	}

	response := auth.UserStatisticsResponse{
		ProfileResponse: auth.ProfileResponse{
			ID:              user.ID,
			Username:        user.Username,
			Email:           user.Email,
			FullName:        user.FullName,
			DefaultCurrency: user.DefaultCurrency,
			Role:            user.Role,
			CreatedAt:       user.CreatedAt.Format(time.RFC3339),
		},
		UserStatistics: statistics,
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}
