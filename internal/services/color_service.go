package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/validation"

	"github.com/go-playground/validator/v10"
)

// ColorInput is the writable field set of a color.
type ColorInput struct {
	Name       string `json:"name" label:"Name" validate:"required,notblank"`
	ColorValue string `json:"colorValue" label:"Color value" validate:"required,notblank"`
}

type strictColorValue struct {
	ColorValue string `label:"Color value" validate:"min=4,hexprefix"`
}

// ColorService handles business logic related to colors.
type ColorService struct {
	catalog  catalog[models.Color]
	validate *validator.Validate
	strict   bool
}

// NewColorService creates a new ColorService. When strict is set, color
// values must look like a hex code ("#" prefix, at least 4 characters).
func NewColorService(repo repositories.CatalogRepository[models.Color], guard *OwnershipGuard, events EventPublisher, strict bool) *ColorService {
	return &ColorService{
		catalog:  newCatalog(repo, guard, events),
		validate: validation.New(),
		strict:   strict,
	}
}

func (s *ColorService) check(in ColorInput) error {
	if err := check(s.validate, in); err != nil {
		return err
	}
	if s.strict {
		return check(s.validate, strictColorValue{ColorValue: in.ColorValue})
	}
	return nil
}

// ListColors returns every color of the store.
func (s *ColorService) ListColors(ctx context.Context, storeID string) ([]models.Color, error) {
	return s.catalog.list(ctx, storeID, nil)
}

// GetColor returns the color or nil when it does not exist.
func (s *ColorService) GetColor(ctx context.Context, id string) (*models.Color, error) {
	return s.catalog.get(ctx, id)
}

// CreateColor creates a color in a store owned by callerID.
func (s *ColorService) CreateColor(ctx context.Context, callerID, storeID string, in ColorInput) (*models.Color, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := s.check(in); err != nil {
		return nil, err
	}
	return s.catalog.create(ctx, callerID, storeID, &models.Color{
		StoreID:    storeID,
		Name:       in.Name,
		ColorValue: in.ColorValue,
	})
}

// UpdateColor overwrites the color's fields.
func (s *ColorService) UpdateColor(ctx context.Context, callerID, storeID, id string, in ColorInput) (*models.Color, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := s.check(in); err != nil {
		return nil, err
	}
	return s.catalog.update(ctx, callerID, storeID, id, map[string]interface{}{
		"name":        in.Name,
		"color_value": in.ColorValue,
	})
}

// DeleteColor removes the color. It fails while products still use it.
func (s *ColorService) DeleteColor(ctx context.Context, callerID, storeID, id string) (*models.Color, error) {
	return s.catalog.delete(ctx, callerID, storeID, id)
}
