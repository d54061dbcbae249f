package authService

import (
	"FinTrack/internal/api/auth"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) GetProfile(ctx context.Context, userID string) (entity.User, error) {
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	return repo.Users.GetByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, req auth.UpdateProfileRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return err
	}

	user, err := repo.Users.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Email != "" && req.Email != user.Email {
		existing, err := repo.Users.GetByEmail(ctx, req.Email)
		if err != nil && !errors.Is(err, auth.ErrUserNotFound) {
			return err
		}
		if existing.ID != "" && existing.ID != user.ID {
			return auth.ErrEmailExists
		}
		user.Email = req.Email
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}

	if req.DefaultCurrency != "" {
		if !entity.IsValidCurrency(req.DefaultCurrency) {
			return auth.ErrInvalidCurrency
		}
		user.DefaultCurrency = req.DefaultCurrency
	}

	if err := repo.Users.UpdateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    req.ID,
			"error":      err.Error(),
		}).Error("Failed to update user profile")
		return err
	}

	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.OldPassword); err != nil {
		return auth.ErrInvalidCredentials
	}

	if req.OldPassword == req.NewPassword {
		return auth.ErrPasswordSame
	}

	if err := validatePasswordStrength(req.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := repo.Users.UpdateUserPassword(ctx, userID, hashedPassword); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to update password")
		return err
	}

	// Old refresh tokens stop working after a password change.
	if err := s.redisServer.DeleteRefreshToken(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to revoke refresh token after password change")
	}

	return nil
}

func (s *authService) DeleteAccount(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Users.DeleteUser(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		return err
	}

	if err := s.redisServer.DeleteRefreshToken(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to revoke refresh token for deleted user")
	}

	return nil
}
