package authService

import (
	"FinTrack/internal/api/auth"
	authRepository "FinTrack/internal/api/auth/repository"
	categoryService "FinTrack/internal/api/category/service"
	"FinTrack/internal/entity"
	"FinTrack/pkg/bcrypt"
	"FinTrack/pkg/redis"
	"FinTrack/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error)
	GetProfile(ctx context.Context, userID string) (entity.User, error)
	UpdateProfile(ctx context.Context, req auth.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userID string) error
}

type authService struct {
	log             *logrus.Logger
	authRepository  authRepository.Repository
	categoryService categoryService.ICategoryService
	redisServer     redis.IRedis
	bcryptUtils     bcrypt.IBcrypt
	utils           utils.IUtils
}

func New(
	log *logrus.Logger,
	ar authRepository.Repository,
	cs categoryService.ICategoryService,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:             log,
		authRepository:  ar,
		categoryService: cs,
		redisServer:     redisServer,
		bcryptUtils:     bcryptUtils,
		utils:           utils,
	}
}
