package repositories

import (
	"context"

	"tokoadmin/internal/models"
)

// StoreRepository defines data access for stores.
type StoreRepository interface {
	// FindOwned returns the store only when userID owns it; otherwise nil, nil.
	FindOwned(ctx context.Context, storeID, userID string) (*models.Store, error)
	// Holds reports whether the store has an entity of kind with id.
	Holds(ctx context.Context, storeID string, kind models.Kind, id string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]models.Store, error)
	Create(ctx context.Context, store *models.Store) error
	Rename(ctx context.Context, storeID, name string) error
	Delete(ctx context.Context, storeID string) error
}
