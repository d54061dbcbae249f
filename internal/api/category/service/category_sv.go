package categoryService

import (
	"FinTrack/internal/api/category"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultIcon = "circle"
const defaultColor = "#3f51b5"

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	// Name must be unique per owner and type.
	existing, err := repo.Categories.GetCategoryByNameAndType(ctx, req.UserID, req.Name, req.Type)
	if err != nil && !errors.Is(err, category.ErrCategoryNotFound) {
		return err
	}
	if existing.ID != "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       req.Name,
			"type":       req.Type,
		}).Warn("Duplicate category name for type")
		return category.ErrCategoryExists
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	icon := req.Icon
	if icon == "" {
		icon = defaultIcon
	}
	color := entity.NormalizeColor(req.Color)
	if color == "" {
		color = defaultColor
	}

	newCategory := entity.Category{
		ID:        ULID,
		UserID:    req.UserID,
		Name:      req.Name,
		Type:      req.Type,
		Icon:      icon,
		Color:     color,
		IsDefault: false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := newCategory.Validate(); err != nil {
		return err
	}

	if err := repo.Categories.CreateCategory(ctx, newCategory); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return category.ErrCreateCategory
	}

	return nil
}

// CreateDefaultCategories seeds the stock income and expense categories for a
// freshly registered user.
func (s *categoryService) CreateDefaultCategories(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return err
	}

	seeds := entity.DefaultCategories()
	categories := make([]entity.Category, 0, len(seeds))
	for _, seed := range seeds {
		ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate ULID")
			return err
		}

		categories = append(categories, entity.Category{
			ID:        ULID,
			UserID:    userID,
			Name:      seed.Name,
			Type:      string(seed.Type),
			Icon:      seed.Icon,
			Color:     seed.Color,
			IsDefault: true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
	}

	if err := repo.Categories.CreateCategories(ctx, categories); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to seed default categories")
		return err
	}

	return nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, error) {
	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return entity.Category{}, err
	}

	return repo.Categories.GetCategoryByID(ctx, id, userID)
}

func (s *categoryService) GetCategoriesByUserID(ctx context.Context, userID string) ([]entity.Category, error) {
	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Categories.GetCategoriesByUserID(ctx, userID)
}

func (s *categoryService) UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Categories.GetCategoryByID(ctx, req.ID, req.UserID)
	if err != nil {
		return err
	}

	if req.Name != "" && req.Name != existing.Name {
		duplicate, err := repo.Categories.GetCategoryByNameAndType(ctx, req.UserID, req.Name, existing.Type)
		if err != nil && !errors.Is(err, category.ErrCategoryNotFound) {
			return err
		}
		if duplicate.ID != "" {
			return category.ErrCategoryExists
		}
		existing.Name = req.Name
	}

	if req.Icon != "" {
		existing.Icon = req.Icon
	}
	if req.Color != "" {
		existing.Color = entity.NormalizeColor(req.Color)
	}

	if err := existing.Validate(); err != nil {
		return err
	}

	if err := repo.Categories.UpdateCategory(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update category")
		return category.ErrUpdateCategory
	}

	return nil
}

// DeleteCategory removes a user-created category. Transactions referencing it
// are left in place; breakdown reports drop them via the category join.
func (s *categoryService) DeleteCategory(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Categories.GetCategoryByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if existing.IsDefault {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Attempt to delete default category")
		return category.ErrDefaultCategory
	}

	if err := repo.Categories.DeleteCategory(ctx, id, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete category")
		return err
	}

	return nil
}
