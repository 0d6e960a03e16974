package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/validation"

	"github.com/go-playground/validator/v10"
)

// SizeInput is the writable field set of a size.
type SizeInput struct {
	Name  string `json:"name" label:"Name" validate:"required,notblank"`
	Value string `json:"value" label:"Value" validate:"required,notblank"`
}

// SizeService handles business logic related to sizes.
type SizeService struct {
	catalog  catalog[models.Size]
	validate *validator.Validate
}

// NewSizeService creates a new SizeService.
func NewSizeService(repo repositories.CatalogRepository[models.Size], guard *OwnershipGuard, events EventPublisher) *SizeService {
	return &SizeService{
		catalog:  newCatalog(repo, guard, events),
		validate: validation.New(),
	}
}

func (s *SizeService) ListSizes(ctx context.Context, storeID string) ([]models.Size, error) {
	return s.catalog.list(ctx, storeID, nil)
}

func (s *SizeService) GetSize(ctx context.Context, id string) (*models.Size, error) {
	return s.catalog.get(ctx, id)
}

func (s *SizeService) CreateSize(ctx context.Context, callerID, storeID string, in SizeInput) (*models.Size, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	return s.catalog.create(ctx, callerID, storeID, &models.Size{
		StoreID: storeID,
		Name:    in.Name,
		Value:   in.Value,
	})
}

func (s *SizeService) UpdateSize(ctx context.Context, callerID, storeID, id string, in SizeInput) (*models.Size, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	return s.catalog.update(ctx, callerID, storeID, id, map[string]interface{}{
		"name":  in.Name,
		"value": in.Value,
	})
}

func (s *SizeService) DeleteSize(ctx context.Context, callerID, storeID, id string) (*models.Size, error) {
	return s.catalog.delete(ctx, callerID, storeID, id)
}
