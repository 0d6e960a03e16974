package services_test

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of repositories.CatalogRepository.
type MockCatalogRepository[T models.Entity] struct {
	mock.Mock
}

func (m *MockCatalogRepository[T]) FindUnique(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCatalogRepository[T]) FindMany(ctx context.Context, storeID string, filter repositories.Filter) ([]T, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCatalogRepository[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockCatalogRepository[T]) UpdateMany(ctx context.Context, storeID, id string, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, storeID, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository[T]) Delete(ctx context.Context, storeID, id string) (*T, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository.
type MockProductRepository struct {
	MockCatalogRepository[models.Product]
}

func (m *MockProductRepository) UpdateWithImages(ctx context.Context, storeID, id string, fields map[string]interface{}, urls []string) (int64, error) {
	args := m.Called(ctx, storeID, id, fields, urls)
	return args.Get(0).(int64), args.Error(1)
}

// MockStoreRepository is a mock implementation of repositories.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindOwned(ctx context.Context, storeID, userID string) (*models.Store, error) {
	args := m.Called(ctx, storeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) ListByUser(ctx context.Context, userID string) ([]models.Store, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *MockStoreRepository) Create(ctx context.Context, store *models.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Rename(ctx context.Context, storeID, name string) error {
	args := m.Called(ctx, storeID, name)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, storeID string) error {
	args := m.Called(ctx, storeID)
	return args.Error(0)
}

func (m *MockStoreRepository) Holds(ctx context.Context, storeID string, kind models.Kind, id string) (bool, error) {
	args := m.Called(ctx, storeID, kind, id)
	return args.Bool(0), args.Error(1)
}

// MockEventPublisher records published catalog changes.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishCatalogChange(ctx context.Context, event models.ChangeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// ownedStore returns a store repository mock where only owner owns storeID.
// Every referenced record is reported as belonging to the store unless a test
// registers a narrower Holds expectation first.
func ownedStore(storeID, owner string) *MockStoreRepository {
	stores := new(MockStoreRepository)
	stores.On("FindOwned", mock.Anything, storeID, owner).Return(&models.Store{ID: storeID, UserID: owner}, nil)
	stores.On("FindOwned", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	stores.On("Holds", mock.Anything, storeID, mock.Anything, mock.Anything).Return(true, nil).Maybe()
	return stores
}
