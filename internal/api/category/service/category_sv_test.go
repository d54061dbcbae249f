package categoryService

import (
	"testing"

	"FinTrack/internal/api/category"
	categoryRepository "FinTrack/internal/api/category/repository"
	"FinTrack/internal/entity"
	"FinTrack/pkg/log"
	"FinTrack/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type stubCategories struct {
	created    []entity.Category
	seeded     []entity.Category
	byID       map[string]entity.Category
	byNameType map[string]entity.Category
	deleted    []string
}

func nameTypeKey(name, categoryType string) string {
	return name + "|" + categoryType
}

func (s *stubCategories) CreateCategory(_ context.Context, cat entity.Category) error {
	s.created = append(s.created, cat)
	return nil
}

func (s *stubCategories) CreateCategories(_ context.Context, categories []entity.Category) error {
	s.seeded = append(s.seeded, categories...)
	return nil
}

func (s *stubCategories) GetCategoryByID(_ context.Context, id string, _ string) (entity.Category, error) {
	cat, ok := s.byID[id]
	if !ok {
		return entity.Category{}, category.ErrCategoryNotFound
	}
	return cat, nil
}

func (s *stubCategories) GetCategoriesByUserID(context.Context, string) ([]entity.Category, error) {
	return nil, nil
}

func (s *stubCategories) GetCategoryByNameAndType(_ context.Context, _ string, name string, categoryType string) (entity.Category, error) {
	cat, ok := s.byNameType[nameTypeKey(name, categoryType)]
	if !ok {
		return entity.Category{}, category.ErrCategoryNotFound
	}
	return cat, nil
}

func (s *stubCategories) UpdateCategory(context.Context, entity.Category) error { return nil }

func (s *stubCategories) DeleteCategory(_ context.Context, id string, _ string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubRepository struct {
	categories *stubCategories
}

func (r *stubRepository) NewClient(bool) (categoryRepository.Client, error) {
	return categoryRepository.Client{
		Categories: r.categories,
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

func newTestService(categories *stubCategories) (ICategoryService, *stubCategories) {
	svc := NewCategoryService(log.NewLogger(), &stubRepository{categories: categories}, utils.New())
	return svc, categories
}

func TestCreateCategory(t *testing.T) {
	svc, categories := newTestService(&stubCategories{})

	err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		UserID: "user1",
		Name:   "Hobbies",
		Type:   "expense",
		Color:  "9C27B0",
	})
	require.NoError(t, err)

	require.Len(t, categories.created, 1)
	created := categories.created[0]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Hobbies", created.Name)
	assert.Equal(t, defaultIcon, created.Icon)
	assert.Equal(t, "#9C27B0", created.Color)
	assert.False(t, created.IsDefault)
}

func TestCreateCategory_DuplicateNameAndType(t *testing.T) {
	svc, categories := newTestService(&stubCategories{
		byNameType: map[string]entity.Category{
			nameTypeKey("Hobbies", "expense"): {ID: "cat1", Name: "Hobbies", Type: "expense"},
		},
	})

	err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		UserID: "user1",
		Name:   "Hobbies",
		Type:   "expense",
	})

	assert.ErrorIs(t, err, category.ErrCategoryExists)
	assert.Empty(t, categories.created)
}

func TestCreateDefaultCategories(t *testing.T) {
	svc, categories := newTestService(&stubCategories{})

	err := svc.CreateDefaultCategories(context.Background(), "user1")
	require.NoError(t, err)

	assert.Len(t, categories.seeded, len(entity.DefaultCategories()))
	for _, cat := range categories.seeded {
		assert.True(t, cat.IsDefault)
		assert.Equal(t, "user1", cat.UserID)
		assert.NotEmpty(t, cat.ID)
	}
}

func TestDeleteCategory_RefusesDefault(t *testing.T) {
	svc, categories := newTestService(&stubCategories{
		byID: map[string]entity.Category{
			"cat1": {ID: "cat1", Name: "Salary", Type: "income", IsDefault: true},
		},
	})

	err := svc.DeleteCategory(context.Background(), "cat1", "user1")

	assert.ErrorIs(t, err, category.ErrDefaultCategory)
	assert.Empty(t, categories.deleted)
}

func TestDeleteCategory(t *testing.T) {
	svc, categories := newTestService(&stubCategories{
		byID: map[string]entity.Category{
			"cat1": {ID: "cat1", Name: "Hobbies", Type: "expense"},
		},
	})

	err := svc.DeleteCategory(context.Background(), "cat1", "user1")
	require.NoError(t, err)

	assert.Equal(t, []string{"cat1"}, categories.deleted)
}
