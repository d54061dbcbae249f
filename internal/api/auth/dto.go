package auth

import "FinTrack/internal/api/report"

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email           string `json:"email" validate:"required,email"`
	FullName        string `json:"full_name" validate:"omitempty,min=1,max=100"`
	Password        string `json:"password" validate:"required,min=8,max=100"`
	DefaultCurrency string `json:"default_currency"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresAt    int64  `json:"expires_at"`
}

type UpdateProfileRequest struct {
	ID              string `json:"id" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	FullName        string `json:"full_name" validate:"omitempty,min=1,max=100"`
	DefaultCurrency string `json:"default_currency"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=100"`
}

type ProfileResponse struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	FullName        string `json:"full_name,omitempty"`
	DefaultCurrency string `json:"default_currency"`
	Role            string `json:"role"`
	CreatedAt       string `json:"created_at"`
}

// UserStatisticsResponse flattens the profile and its financial overview
// into one payload.
type UserStatisticsResponse struct {
	ProfileResponse
	report.UserStatistics
}
