package categoryRepository

import (
	"FinTrack/internal/api/category"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type categoryDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	Type      sql.NullString `db:"type"`
	Icon      sql.NullString `db:"icon"`
	Color     sql.NullString `db:"color"`
	IsDefault sql.NullBool   `db:"is_default"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *categoryRepository) CreateCategory(c context.Context, cat entity.Category) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         cat.ID,
		"user_id":    cat.UserID,
		"name":       cat.Name,
		"type":       cat.Type,
		"icon":       cat.Icon,
		"color":      cat.Color,
		"is_default": cat.IsDefault,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateCategory named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating category")
		return err
	}

	return nil
}

func (r *categoryRepository) CreateCategories(c context.Context, categories []entity.Category) error {
	for _, cat := range categories {
		if err := r.CreateCategory(c, cat); err != nil {
			return err
		}
	}
	return nil
}

func (r *categoryRepository) GetCategoryByID(c context.Context, id string, userID string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var row categoryDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetCategoryByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Category{}, category.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID execution err")
		return entity.Category{}, err
	}

	return r.makeCategory(row), nil
}

func (r *categoryRepository) GetCategoriesByUserID(c context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []categoryDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetCategoriesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByUserID execution err")
		return nil, err
	}

	result := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeCategory(row))
	}

	return result, nil
}

func (r *categoryRepository) GetCategoryByNameAndType(c context.Context, userID string, name string, categoryType string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var row categoryDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"name":    name,
		"type":    categoryType,
	}

	query, args, err := sqlx.Named(queryGetCategoryByNameAndType, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByNameAndType named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Category{}, category.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByNameAndType execution err")
		return entity.Category{}, err
	}

	return r.makeCategory(row), nil
}

func (r *categoryRepository) UpdateCategory(c context.Context, cat entity.Category) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         cat.ID,
		"user_id":    cat.UserID,
		"name":       cat.Name,
		"icon":       cat.Icon,
		"color":      cat.Color,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategory named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) DeleteCategory(c context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) makeCategory(row categoryDB) entity.Category {
	return entity.Category{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Name:      row.Name.String,
		Type:      row.Type.String,
		Icon:      row.Icon.String,
		Color:     row.Color.String,
		IsDefault: row.IsDefault.Bool,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
