package config

import (
	"FinTrack/database/postgres"
	authHandler "FinTrack/internal/api/auth/handler"
	authRepository "FinTrack/internal/api/auth/repository"
	authService "FinTrack/internal/api/auth/service"
	categoryHandler "FinTrack/internal/api/category/handler"
	categoryRepository "FinTrack/internal/api/category/repository"
	categoryService "FinTrack/internal/api/category/service"
	reportHandler "FinTrack/internal/api/report/handler"
	reportRepository "FinTrack/internal/api/report/repository"
	reportService "FinTrack/internal/api/report/service"
	transactionHandler "FinTrack/internal/api/transaction/handler"
	transactionRepository "FinTrack/internal/api/transaction/repository"
	transactionService "FinTrack/internal/api/transaction/service"
	"FinTrack/internal/middleware"
	"FinTrack/pkg/bcrypt"
	"FinTrack/pkg/redis"
	"FinTrack/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	redisServer redis.IRedis
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if err := postgres.RunMigrations(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.NewCategoryService(s.log, categoryRepo, s.utils)

	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, categoryServices, s.redisServer, s.bcryptUtils, s.utils)

	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, categoryRepo, s.utils)

	// The report service also backs the statistics endpoints of the other
	// domains, so every handler below gets it.
	reportRepo := reportRepository.New(s.db, s.log)
	reportServices := reportService.NewReportService(s.log, reportRepo)

	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices, reportServices)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices, reportServices)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices, reportServices)
	reportHandlers := reportHandler.New(s.log, s.validator, s.middleware, reportServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, categoryHandlers, transactionHandlers, reportHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
