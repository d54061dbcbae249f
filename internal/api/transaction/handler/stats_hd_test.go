package transactionHandler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

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

// stubReportService overrides only the stats operation; the handler under
// test never touches the rest of the interface.
type stubReportService struct {
	reportService.IReportService
	stats report.TransactionStatsResponse
	err   error
}

func (s *stubReportService) TransactionStatsReport(_ context.Context, _ string, period string, _ string) (report.TransactionStatsResponse, error) {
	if s.err != nil {
		return report.TransactionStatsResponse{}, s.err
	}
	resp := s.stats
	resp.Period = period
	return resp, nil
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

func newTestApp(svc *stubReportService) *fiber.App {
	handler := New(log.NewLogger(), validator.New(), &stubMiddleware{
		user: entity.UserLoginData{ID: testUserID, Username: "tester", Email: "tester@example.com"},
	}, nil, svc)

	app := fiber.New()
	handler.Start(app.Group("/api/v1"))
	return app
}

func TestGetTransactionStats(t *testing.T) {
	app := newTestApp(&stubReportService{
		stats: report.TransactionStatsResponse{
			Income: report.TypeStatsEntry{
				ByCurrency: []report.CurrencyBucket{{Currency: "RUB", Total: 1000, Count: 1}},
				TotalCount: 1,
			},
			Expense: report.TypeStatsEntry{
				ByCurrency: []report.CurrencyBucket{{Currency: "RUB", Total: 400, Count: 2}},
				TotalCount: 2,
			},
		},
	})

	req := httptest.NewRequest("GET", "/api/v1/transactions/stats?period=week&currency=RUB", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body report.TransactionStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, entity.PeriodWeek, body.Period)
	require.Len(t, body.Income.ByCurrency, 1)
	assert.Equal(t, 1000.0, body.Income.ByCurrency[0].Total)
	assert.Equal(t, 2, body.Expense.TotalCount)
}

func TestGetTransactionStats_DefaultsPeriod(t *testing.T) {
	app := newTestApp(&stubReportService{})

	req := httptest.NewRequest("GET", "/api/v1/transactions/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body report.TransactionStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, entity.PeriodMonth, body.Period)
}

func TestGetTransactionStats_InvalidCurrency(t *testing.T) {
	app := newTestApp(&stubReportService{err: report.ErrInvalidCurrency})

	req := httptest.NewRequest("GET", "/api/v1/transactions/stats?currency=DOGE", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
