package authHandler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"FinTrack/internal/api/auth"
	authService "FinTrack/internal/api/auth/service"
	"FinTrack/internal/api/report"
	reportService "FinTrack/internal/api/report/service"
	"FinTrack/internal/entity"
	"FinTrack/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

const testUserID = "01HQZX5J8N0000000000000001"

type stubAuthService struct {
	authService.IAuthService
	user entity.User
}

func (s *stubAuthService) GetProfile(context.Context, string) (entity.User, error) {
	return s.user, nil
}

type stubReportService struct {
	reportService.IReportService
	stats    report.UserStatistics
	currency string
}

func (s *stubReportService) UserStatistics(_ context.Context, _ string, currency string) (report.UserStatistics, error) {
	s.currency = currency
	return s.stats, nil
}

type stubMiddleware struct {
	user entity.UserLoginData
}

func (m *stubMiddleware) NewRateLimiter(ctx *fiber.Ctx) error { return ctx.Next() }

func (m *stubMiddleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	ctx.Locals("user", m.user)
	return ctx.Next()
}

func (m *stubMiddleware) NewRequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error { return c.Next() }
}

func (m *stubMiddleware) GetRequestID(*fiber.Ctx) string { return "test-request" }

func newStatisticsTestApp(authSvc *stubAuthService, reportSvc *stubReportService) *fiber.App {
	handler := New(log.NewLogger(), validator.New(), &stubMiddleware{
		user: entity.UserLoginData{ID: testUserID, Username: "tester", Email: "tester@example.com"},
	}, authSvc, reportSvc)

	app := fiber.New()
	handler.Start(app.Group("/api/v1"))
	return app
}

func TestGetUserStatistics(t *testing.T) {
	authSvc := &stubAuthService{
		user: entity.User{
			ID:              testUserID,
			Username:        "tester",
			Email:           "tester@example.com",
			DefaultCurrency: "RUB",
			Role:            "user",
			CreatedAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	reportSvc := &stubReportService{
		stats: report.UserStatistics{
			TotalIncome:  5000,
			TotalExpense: 2000,
			Balance:      3000,
			MonthIncome:  1000,
			MonthExpense: 400,
			MonthBalance: 600,
		},
	}
	app := newStatisticsTestApp(authSvc, reportSvc)

	req := httptest.NewRequest("GET", "/api/v1/auth/statistics", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body auth.UserStatisticsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "tester", body.Username)
	assert.Equal(t, "RUB", body.DefaultCurrency)
	assert.Equal(t, 5000.0, body.TotalIncome)
	assert.Equal(t, 3000.0, body.Balance)
	assert.Equal(t, 600.0, body.MonthBalance)
	assert.Equal(t, "RUB", reportSvc.currency)
}

func TestGetUserStatistics_PassesRequestedCurrency(t *testing.T) {
	authSvc := &stubAuthService{user: entity.User{ID: testUserID, Username: "tester"}}
	reportSvc := &stubReportService{}
	app := newStatisticsTestApp(authSvc, reportSvc)

	req := httptest.NewRequest("GET", "/api/v1/auth/statistics?currency=USD", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "USD", reportSvc.currency)
}
