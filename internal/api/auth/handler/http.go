package authHandler

import (
	authService "FinTrack/internal/api/auth/service"
	reportService "FinTrack/internal/api/report/service"
	"FinTrack/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	authService   authService.IAuthService
	reportService reportService.IReportService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	authService authService.IAuthService,
	reportService reportService.IReportService,
) *AuthHandler {
	return &AuthHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		authService:   authService,
		reportService: reportService,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)

	auth.Get("/profile", h.middleware.NewTokenMiddleware, h.GetProfile)
	auth.Put("/profile", h.middleware.NewTokenMiddleware, h.UpdateProfile)
	auth.Get("/statistics", h.middleware.NewTokenMiddleware, h.GetUserStatistics)
	auth.Put("/password", h.middleware.NewTokenMiddleware, h.ChangePassword)
	auth.Delete("/account", h.middleware.NewTokenMiddleware, h.DeleteAccount)
}
