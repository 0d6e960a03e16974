package services

import (
	"context"
	"fmt"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
)

// OwnershipGuard binds a caller identity to the stores it owns.
type OwnershipGuard struct {
	stores repositories.StoreRepository
}

// NewOwnershipGuard creates a new OwnershipGuard.
func NewOwnershipGuard(stores repositories.StoreRepository) *OwnershipGuard {
	return &OwnershipGuard{stores: stores}
}

// Authorize reports whether a store with storeID exists and is owned by
// callerID. It never writes.
func (g *OwnershipGuard) Authorize(ctx context.Context, callerID, storeID string) (bool, error) {
	if callerID == "" || storeID == "" {
		return false, nil
	}
	store, err := g.stores.FindOwned(ctx, storeID, callerID)
	if err != nil {
		return false, fmt.Errorf("failed to check ownership of store %s: %w", storeID, err)
	}
	return store != nil, nil
}

// Require turns Authorize into the error contract of mutating operations.
func (g *OwnershipGuard) Require(ctx context.Context, callerID, storeID string) error {
	if callerID == "" {
		return ErrUnauthenticated
	}
	if storeID == "" {
		return missing("Store id")
	}
	ok, err := g.Authorize(ctx, callerID, storeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// RequireReference checks that id names an entity of kind inside storeID, so
// that a store never points at another store's lookups.
func (g *OwnershipGuard) RequireReference(ctx context.Context, storeID string, kind models.Kind, id string) error {
	ok, err := g.stores.Holds(ctx, storeID, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return &ValidationError{Message: kind.Label() + " id is not in this store"}
	}
	return nil
}
