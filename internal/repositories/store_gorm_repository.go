package repositories

import (
	"context"
	"errors"
	"fmt"

	"tokoadmin/internal/models"

	"gorm.io/gorm"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{db: db}
}

func (r *GORMStoreRepository) FindOwned(ctx context.Context, storeID, userID string) (*models.Store, error) {
	var store models.Store
	err := r.db.WithContext(ctx).First(&store, "id = ? AND user_id = ?", storeID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get store %s: %w", storeID, err)
	}
	return &store, nil
}

func (r *GORMStoreRepository) Holds(ctx context.Context, storeID string, kind models.Kind, id string) (bool, error) {
	model := kind.Model()
	if model == nil {
		return false, fmt.Errorf("unknown catalog kind %q", kind)
	}
	var n int64
	err := r.db.WithContext(ctx).Model(model).Where("id = ? AND store_id = ?", id, storeID).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up %s %s in store %s: %w", kind.Noun(), id, storeID, err)
	}
	return n > 0, nil
}

func (r *GORMStoreRepository) ListByUser(ctx context.Context, userID string) ([]models.Store, error) {
	stores := make([]models.Store, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to list stores of user %s: %w", userID, err)
	}
	return stores, nil
}

func (r *GORMStoreRepository) Create(ctx context.Context, store *models.Store) error {
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

func (r *GORMStoreRepository) Rename(ctx context.Context, storeID, name string) error {
	res := r.db.WithContext(ctx).Model(&models.Store{}).Where("id = ?", storeID).Update("name", name)
	if res.Error != nil {
		return fmt.Errorf("failed to rename store %s: %w", storeID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("store with ID %s not found for update", storeID)
	}
	return nil
}

// Delete removes the store and its whole catalog, children first.
func (r *GORMStoreRepository) Delete(ctx context.Context, storeID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productIDs := tx.Model(&models.Product{}).Select("id").Where("store_id = ?", storeID)
		if err := tx.Where("product_id IN (?)", productIDs).Delete(&models.Image{}).Error; err != nil {
			return fmt.Errorf("failed to delete images of store %s: %w", storeID, err)
		}
		for _, m := range []interface{}{&models.Product{}, &models.Category{}, &models.Board{}, &models.Size{}, &models.Color{}} {
			if err := tx.Where("store_id = ?", storeID).Delete(m).Error; err != nil {
				return fmt.Errorf("failed to delete catalog of store %s: %w", storeID, err)
			}
		}
		res := tx.Delete(&models.Store{}, "id = ?", storeID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete store %s: %w", storeID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("store with ID %s not found for deletion", storeID)
		}
		return nil
	})
}
