package auth

import "FinTrack/pkg/response"

var (
	ErrUserNotFound       = response.NewError(404, "user not found")
	ErrEmailExists        = response.NewError(409, "email already registered")
	ErrUsernameExists     = response.NewError(409, "username already taken")
	ErrInvalidCredentials = response.NewError(401, "invalid username or password")
	ErrInvalidToken       = response.NewError(401, "invalid or expired token")
	ErrPasswordSame       = response.NewError(400, "new password must differ from the old one")
	ErrWeakPassword       = response.NewError(400, "password must contain at least one letter and one digit")
	ErrInvalidCurrency    = response.NewError(400, "invalid default currency")
)
