package repositories

import (
	"context"

	"tokoadmin/internal/models"
)

// Filter narrows a FindMany query. Keys are column names, e.g. "category_id".
type Filter map[string]interface{}

// CatalogRepository defines data access for one catalog entity kind. Every
// query is scoped to a store; a lookup of an absent record yields nil, nil.
type CatalogRepository[T models.Entity] interface {
	FindUnique(ctx context.Context, id string) (*T, error)
	FindMany(ctx context.Context, storeID string, filter Filter) ([]T, error)
	Create(ctx context.Context, entity *T) error
	// UpdateMany applies fields to records matching id within storeID and
	// reports how many rows matched.
	UpdateMany(ctx context.Context, storeID, id string, fields map[string]interface{}) (int64, error)
	// Delete removes the record and returns its prior state.
	Delete(ctx context.Context, storeID, id string) (*T, error)
}

// ProductRepository adds image management to the product catalog.
type ProductRepository interface {
	CatalogRepository[models.Product]
	// UpdateWithImages applies fields and replaces the image set in one
	// transaction. It reports how many products matched; with no match the
	// images are left alone.
	UpdateWithImages(ctx context.Context, storeID, id string, fields map[string]interface{}, urls []string) (int64, error)
}
