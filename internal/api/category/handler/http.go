package categoryHandler

import (
	categoryService "FinTrack/internal/api/category/service"
	reportService "FinTrack/internal/api/report/service"
	"FinTrack/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	categoryService categoryService.ICategoryService
	reportService   reportService.IReportService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	categoryService categoryService.ICategoryService,
	reportService reportService.IReportService,
) *CategoryHandler {
	return &CategoryHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		categoryService: categoryService,
		reportService:   reportService,
	}
}

func (h *CategoryHandler) Start(srv fiber.Router) {
	categories := srv.Group("/categories")

	categories.Post("/", h.middleware.NewTokenMiddleware, h.CreateCategory)
	categories.Get("/", h.middleware.NewTokenMiddleware, h.GetCategories)
	categories.Get("/:id/stats", h.middleware.NewTokenMiddleware, h.GetCategoryStats)
	categories.Get("/:id", h.middleware.NewTokenMiddleware, h.GetCategory)
	categories.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateCategory)
	categories.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteCategory)
}
