package category

import "FinTrack/pkg/response"

var (
	ErrCategoryNotFound    = response.NewError(404, "category not found")
	ErrCategoryExists      = response.NewError(400, "category with this name and type already exists")
	ErrInvalidCategoryName = response.NewError(400, "invalid category name")
	ErrInvalidCategoryType = response.NewError(400, "invalid category type")
	ErrDefaultCategory     = response.NewError(403, "default categories cannot be deleted")
	ErrCreateCategory      = response.NewError(500, "failed to create category")
	ErrUpdateCategory      = response.NewError(500, "failed to update category")
	ErrDeleteCategory      = response.NewError(500, "failed to delete category")
)
