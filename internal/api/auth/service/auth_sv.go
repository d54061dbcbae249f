package authService

import (
	"FinTrack/internal/api/auth"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	jwtPkg "FinTrack/pkg/jwt"
	"errors"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	accessTokenSecretEnv  = "JWT_ACCESS_TOKEN_SECRET"
	refreshTokenSecretEnv = "JWT_REFRESH_TOKEN_SECRET"

	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

func (s *authService) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := validatePasswordStrength(req.Password); err != nil {
		return auth.TokenResponse{}, err
	}

	currency := req.DefaultCurrency
	if currency == "" {
		currency = string(entity.DefaultCurrency)
	}
	if !entity.IsValidCurrency(currency) {
		return auth.TokenResponse{}, auth.ErrInvalidCurrency
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.TokenResponse{}, err
	}

	if _, err := repo.Users.GetByUsername(ctx, req.Username); err == nil {
		return auth.TokenResponse{}, auth.ErrUsernameExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.TokenResponse{}, err
	}

	if _, err := repo.Users.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, auth.ErrEmailExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return auth.TokenResponse{}, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.TokenResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.TokenResponse{}, err
	}

	user := entity.User{
		ID:              ULID,
		Username:        req.Username,
		Email:           req.Email,
		FullName:        req.FullName,
		Password:        hashedPassword,
		DefaultCurrency: currency,
		Role:            string(entity.UserRoleUser),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.TokenResponse{}, err
	}

	if err := s.categoryService.CreateDefaultCategories(ctx, user.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
			"error":      err.Error(),
		}).Error("Failed to seed default categories for new user")
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	user, err := repo.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   req.Username,
		}).Warn("Invalid password attempt")
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	claims, err := jwtPkg.VerifyRefreshToken(refreshToken, refreshTokenSecretEnv)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// Refresh tokens are single-use: the stored copy must match and is
	// rotated on success.
	stored, err := s.redisServer.GetRefreshToken(ctx, userID)
	if err != nil || stored != refreshToken {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("Refresh token mismatch or expired")
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) issueTokens(ctx context.Context, user entity.User) (auth.TokenResponse, error) {
	// jti keeps every issued token unique so refresh rotation can tell an
	// old token from its replacement.
	jti, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return auth.TokenResponse{}, err
	}

	claims := map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"jti":      jti,
	}

	accessToken, expiresAt, err := jwtPkg.Sign(claims, accessTokenSecretEnv, accessTokenTTL)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, _, err := jwtPkg.Sign(claims, refreshTokenSecretEnv, refreshTokenTTL)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := s.redisServer.SetRefreshToken(ctx, user.ID, refreshToken, refreshTokenTTL); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresAt:    expiresAt,
	}, nil
}

func validatePasswordStrength(password string) error {
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return auth.ErrWeakPassword
	}
	return nil
}
