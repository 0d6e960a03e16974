package services

import (
	"context"
	"strconv"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/validation"

	"github.com/go-playground/validator/v10"
)

// ImageInput is one product image reference.
type ImageInput struct {
	URL string `json:"url" label:"Image URL" validate:"required,notblank"`
}

// ProductInput is the writable field set of a product.
type ProductInput struct {
	Name       string       `json:"name" label:"Name" validate:"required,notblank"`
	Images     []ImageInput `json:"images" label:"Images" validate:"required,min=1,dive"`
	Price      float64      `json:"price" label:"Price" validate:"required,gt=0"`
	CategoryID string       `json:"categoryId" label:"Category id" validate:"required"`
	SizeID     string       `json:"sizeId" label:"Size id" validate:"required"`
	ColorID    string       `json:"colorId" label:"Color id" validate:"required"`
	IsFeatured bool         `json:"isFeatured"`
	IsArchived bool         `json:"isArchived"`
}

func (in ProductInput) references() []reference {
	return []reference{
		{models.KindCategory, in.CategoryID},
		{models.KindSize, in.SizeID},
		{models.KindColor, in.ColorID},
	}
}

// ProductFilter narrows the public product list. Empty fields match anything.
type ProductFilter struct {
	CategoryID string
	SizeID     string
	ColorID    string
	IsFeatured *bool
	// IncludeArchived lists archived products too; the storefront never sets it.
	IncludeArchived bool
}

// ParseFeatured reads an isFeatured query value; anything but a boolean means
// "no filter".
func ParseFeatured(raw string) *bool {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

func (f ProductFilter) columns() repositories.Filter {
	out := repositories.Filter{}
	if f.CategoryID != "" {
		out["category_id"] = f.CategoryID
	}
	if f.SizeID != "" {
		out["size_id"] = f.SizeID
	}
	if f.ColorID != "" {
		out["color_id"] = f.ColorID
	}
	if f.IsFeatured != nil {
		out["is_featured"] = *f.IsFeatured
	}
	if !f.IncludeArchived {
		out["is_archived"] = false
	}
	return out
}

// ProductService handles business logic related to products.
type ProductService struct {
	catalog  catalog[models.Product]
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, guard *OwnershipGuard, events EventPublisher) *ProductService {
	return &ProductService{
		catalog:  newCatalog[models.Product](repo, guard, events),
		repo:     repo,
		validate: validation.New(),
	}
}

// ListProducts returns the store's products matching filter.
func (s *ProductService) ListProducts(ctx context.Context, storeID string, filter ProductFilter) ([]models.Product, error) {
	return s.catalog.list(ctx, storeID, filter.columns())
}

// GetProduct returns the product with its images and lookups, or nil.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.catalog.get(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, callerID, storeID string, in ProductInput) (*models.Product, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	images := make([]models.Image, len(in.Images))
	for i, img := range in.Images {
		images[i] = models.Image{URL: img.URL}
	}
	return s.catalog.create(ctx, callerID, storeID, &models.Product{
		StoreID:    storeID,
		CategoryID: in.CategoryID,
		SizeID:     in.SizeID,
		ColorID:    in.ColorID,
		Name:       in.Name,
		Price:      in.Price,
		IsFeatured: in.IsFeatured,
		IsArchived: in.IsArchived,
		Images:     images,
	}, in.references()...)
}

// UpdateProduct overwrites the product's fields and replaces its image set.
func (s *ProductService) UpdateProduct(ctx context.Context, callerID, storeID, id string, in ProductInput) (*models.Product, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	urls := make([]string, len(in.Images))
	for i, img := range in.Images {
		urls[i] = img.URL
	}
	fields := map[string]interface{}{
		"name":        in.Name,
		"price":       in.Price,
		"category_id": in.CategoryID,
		"size_id":     in.SizeID,
		"color_id":    in.ColorID,
		"is_featured": in.IsFeatured,
		"is_archived": in.IsArchived,
	}
	return s.catalog.updateWith(ctx, callerID, storeID, id, func(ctx context.Context) (int64, error) {
		return s.repo.UpdateWithImages(ctx, storeID, id, fields, urls)
	}, in.references()...)
}

func (s *ProductService) DeleteProduct(ctx context.Context, callerID, storeID, id string) (*models.Product, error) {
	return s.catalog.delete(ctx, callerID, storeID, id)
}
