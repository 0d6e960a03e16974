package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/validation"

	"github.com/go-playground/validator/v10"
)

// CategoryInput is the writable field set of a category.
type CategoryInput struct {
	Name    string `json:"name" label:"Name" validate:"required,notblank"`
	BoardID string `json:"boardId" label:"Board id" validate:"required"`
}

// CategoryService handles business logic related to categories.
type CategoryService struct {
	catalog  catalog[models.Category]
	validate *validator.Validate
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CatalogRepository[models.Category], guard *OwnershipGuard, events EventPublisher) *CategoryService {
	return &CategoryService{
		catalog:  newCatalog(repo, guard, events),
		validate: validation.New(),
	}
}

func (s *CategoryService) ListCategories(ctx context.Context, storeID string) ([]models.Category, error) {
	return s.catalog.list(ctx, storeID, nil)
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return s.catalog.get(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, callerID, storeID string, in CategoryInput) (*models.Category, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	return s.catalog.create(ctx, callerID, storeID, &models.Category{
		StoreID: storeID,
		BoardID: in.BoardID,
		Name:    in.Name,
	}, reference{models.KindBoard, in.BoardID})
}

func (s *CategoryService) UpdateCategory(ctx context.Context, callerID, storeID, id string, in CategoryInput) (*models.Category, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	return s.catalog.update(ctx, callerID, storeID, id, map[string]interface{}{
		"name":     in.Name,
		"board_id": in.BoardID,
	}, reference{models.KindBoard, in.BoardID})
}

// DeleteCategory removes the category. It fails while products use it.
func (s *CategoryService) DeleteCategory(ctx context.Context, callerID, storeID, id string) (*models.Category, error) {
	return s.catalog.delete(ctx, callerID, storeID, id)
}
