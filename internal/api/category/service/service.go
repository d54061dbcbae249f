package categoryService

import (
	"FinTrack/internal/api/category"
	categoryRepository "FinTrack/internal/api/category/repository"
	"FinTrack/internal/entity"
	"FinTrack/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICategoryService interface {
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) error
	CreateDefaultCategories(ctx context.Context, userID string) error
	GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, error)
	GetCategoriesByUserID(ctx context.Context, userID string) ([]entity.Category, error)
	UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id string, userID string) error
}

type categoryService struct {
	log                *logrus.Logger
	categoryRepository categoryRepository.Repository
	utils              utils.IUtils
}

func NewCategoryService(log *logrus.Logger, cr categoryRepository.Repository, utils utils.IUtils) ICategoryService {
	return &categoryService{
		log:                log,
		categoryRepository: cr,
		utils:              utils,
	}
}
