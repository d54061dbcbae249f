package categoryHandler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"FinTrack/internal/api/category"
	categoryService "FinTrack/internal/api/category/service"
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

const (
	testUserID     = "01HQZX5J8N0000000000000001"
	testCategoryID = "01HQZX5J8N0000000000000002"
)

type stubCategoryService struct {
	categoryService.ICategoryService
	item entity.Category
	err  error
}

func (s *stubCategoryService) GetCategoryByID(context.Context, string, string) (entity.Category, error) {
	if s.err != nil {
		return entity.Category{}, s.err
	}
	return s.item, nil
}

type stubReportService struct {
	reportService.IReportService
	usage report.CategoryUsageResponse
}

func (s *stubReportService) CategoryUsage(context.Context, string, string, string) (report.CategoryUsageResponse, error) {
	return s.usage, nil
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

func newStatsTestApp(categorySvc *stubCategoryService, reportSvc *stubReportService) *fiber.App {
	handler := New(log.NewLogger(), validator.New(), &stubMiddleware{
		user: entity.UserLoginData{ID: testUserID, Username: "tester", Email: "tester@example.com"},
	}, categorySvc, reportSvc)

	app := fiber.New()
	handler.Start(app.Group("/api/v1"))
	return app
}

func TestGetCategoryStats(t *testing.T) {
	categorySvc := &stubCategoryService{
		item: entity.Category{
			ID:        testCategoryID,
			UserID:    testUserID,
			Name:      "Groceries",
			Type:      "expense",
			Icon:      "cart-shopping",
			Color:     "#FF9800",
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	reportSvc := &stubReportService{
		usage: report.CategoryUsageResponse{
			Stats: report.CategoryUsageStats{
				ByCurrency: []report.CurrencyUsage{
					{Currency: "RUB", Total: 600, Count: 2, Average: 300},
				},
				TotalTransactions: 2,
			},
			RecentTransactions: []report.RecentTransactionEntry{
				{ID: "tx1", Type: "expense", Amount: 300, Currency: "RUB", CategoryName: "Groceries"},
			},
		},
	}
	app := newStatsTestApp(categorySvc, reportSvc)

	req := httptest.NewRequest("GET", "/api/v1/categories/"+testCategoryID+"/stats?period=month", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body category.CategoryStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "Groceries", body.Name)
	assert.Equal(t, 2, body.Stats.TotalTransactions)
	require.Len(t, body.Stats.ByCurrency, 1)
	assert.Equal(t, 300.0, body.Stats.ByCurrency[0].Average)
	require.Len(t, body.RecentTransactions, 1)
	assert.Equal(t, "tx1", body.RecentTransactions[0].ID)
}

func TestGetCategoryStats_UnknownCategory(t *testing.T) {
	app := newStatsTestApp(&stubCategoryService{err: category.ErrCategoryNotFound}, &stubReportService{})

	req := httptest.NewRequest("GET", "/api/v1/categories/"+testCategoryID+"/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
