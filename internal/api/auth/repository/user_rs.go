package authRepository

import (
	"FinTrack/internal/api/auth"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type userDB struct {
	ID              sql.NullString `db:"id"`
	Username        sql.NullString `db:"username"`
	Email           sql.NullString `db:"email"`
	FullName        sql.NullString `db:"full_name"`
	Password        sql.NullString `db:"password"`
	DefaultCurrency sql.NullString `db:"default_currency"`
	Role            sql.NullString `db:"role"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *userRepository) CreateUser(c context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               user.ID,
		"username":         user.Username,
		"email":            user.Email,
		"full_name":        user.FullName,
		"password":         user.Password,
		"default_currency": user.DefaultCurrency,
		"role":             user.Role,
		"created_at":       time.Now(),
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateUser named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *userRepository) GetByID(c context.Context, id string) (entity.User, error) {
	return r.getOne(c, queryGetUserByID, map[string]interface{}{"id": id})
}

func (r *userRepository) GetByUsername(c context.Context, username string) (entity.User, error) {
	return r.getOne(c, queryGetUserByUsername, map[string]interface{}{"username": username})
}

func (r *userRepository) GetByEmail(c context.Context, email string) (entity.User, error) {
	return r.getOne(c, queryGetUserByEmail, map[string]interface{}{"email": email})
}

func (r *userRepository) getOne(c context.Context, queryToUse string, argsKV map[string]interface{}) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var row userDB

	query, args, err := sqlx.Named(queryToUse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("User lookup named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("User lookup execution err")
		return entity.User{}, err
	}

	return r.makeUser(row), nil
}

func (r *userRepository) UpdateUser(c context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               user.ID,
		"email":            user.Email,
		"full_name":        user.FullName,
		"default_currency": user.DefaultCurrency,
		"updated_at":       time.Now(),
	}

	return r.exec(c, requestID, queryUpdateUser, argsKV, "UpdateUser")
}

func (r *userRepository) UpdateUserPassword(c context.Context, id string, password string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"password":   password,
		"updated_at": time.Now(),
	}

	return r.exec(c, requestID, queryUpdateUserPassword, argsKV, "UpdateUserPassword")
}

func (r *userRepository) DeleteUser(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	return r.exec(c, requestID, queryDeleteUser, argsKV, "DeleteUser")
}

func (r *userRepository) exec(c context.Context, requestID string, queryToUse string, argsKV map[string]interface{}, operation string) error {
	query, args, err := sqlx.Named(queryToUse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) makeUser(row userDB) entity.User {
	return entity.User{
		ID:              row.ID.String,
		Username:        row.Username.String,
		Email:           row.Email.String,
		FullName:        row.FullName.String,
		Password:        row.Password.String,
		DefaultCurrency: row.DefaultCurrency.String,
		Role:            row.Role.String,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
