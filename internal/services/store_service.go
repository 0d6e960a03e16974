package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/validation"

	"github.com/go-playground/validator/v10"
)

// StoreInput is the writable field set of a store.
type StoreInput struct {
	Name string `json:"name" label:"Name" validate:"required,notblank,max=100"`
}

// StoreService manages the stores a user owns. Every operation is private to
// the owner.
type StoreService struct {
	repo     repositories.StoreRepository
	guard    *OwnershipGuard
	validate *validator.Validate
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo repositories.StoreRepository, guard *OwnershipGuard) *StoreService {
	return &StoreService{repo: repo, guard: guard, validate: validation.New()}
}

func (s *StoreService) ListStores(ctx context.Context, callerID string) ([]models.Store, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	return s.repo.ListByUser(ctx, callerID)
}

// GetStore returns the store when callerID owns it, otherwise nil.
func (s *StoreService) GetStore(ctx context.Context, callerID, storeID string) (*models.Store, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if storeID == "" {
		return nil, missing("Store id")
	}
	return s.repo.FindOwned(ctx, storeID, callerID)
}

func (s *StoreService) CreateStore(ctx context.Context, callerID string, in StoreInput) (*models.Store, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	store := &models.Store{Name: in.Name, UserID: callerID}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) RenameStore(ctx context.Context, callerID, storeID string, in StoreInput) (*models.Store, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	if err := s.guard.Require(ctx, callerID, storeID); err != nil {
		return nil, err
	}
	if err := s.repo.Rename(ctx, storeID, in.Name); err != nil {
		return nil, err
	}
	return s.repo.FindOwned(ctx, storeID, callerID)
}

// DeleteStore removes the store and its whole catalog.
func (s *StoreService) DeleteStore(ctx context.Context, callerID, storeID string) (*models.Store, error) {
	if err := s.guard.Require(ctx, callerID, storeID); err != nil {
		return nil, err
	}
	store, err := s.repo.FindOwned(ctx, storeID, callerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, storeID); err != nil {
		return nil, err
	}
	return store, nil
}
