package entity

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	ID              string    `db:"id"`
	Username        string    `db:"username"`
	Email           string    `db:"email"`
	FullName        string    `db:"full_name"`
	Password        string    `db:"password"`
	DefaultCurrency string    `db:"default_currency"`
	Role            string    `db:"role"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
