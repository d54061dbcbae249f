package reportService

import (
	"FinTrack/internal/api/report"
	reportRepository "FinTrack/internal/api/report/repository"
	"FinTrack/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// IReportService computes on-demand, read-only financial statistics. Every
// report is a pure function of the stored transactions and categories at the
// moment of the request; nothing is cached or persisted.
type IReportService interface {
	MonthlyReport(ctx context.Context, userID string, year int, month int, currency string) (report.MonthlyReportResponse, error)
	IncomeExpenseReport(ctx context.Context, userID string, period string, currency string) (report.IncomeExpenseReportResponse, error)
	CategoryReport(ctx context.Context, userID string, categoryType string, period string, currency string) (report.CategoryReportResponse, error)
	GetTransactionStats(ctx context.Context, userID string, period string, currency string) (entity.TransactionStats, error)
	TransactionStatsReport(ctx context.Context, userID string, period string, currency string) (report.TransactionStatsResponse, error)
	UserStatistics(ctx context.Context, userID string, currency string) (report.UserStatistics, error)
	CategoryUsage(ctx context.Context, userID string, categoryID string, period string) (report.CategoryUsageResponse, error)
}

type reportService struct {
	log              *logrus.Logger
	reportRepository reportRepository.Repository
}

func NewReportService(log *logrus.Logger, rr reportRepository.Repository) IReportService {
	return &reportService{
		log:              log,
		reportRepository: rr,
	}
}
