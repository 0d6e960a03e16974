package repositories

import (
	"context"
	"errors"
	"fmt"

	"tokoadmin/internal/models"

	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository[T models.Entity] struct {
	db       *gorm.DB
	kind     models.Kind
	preloads []string
}

// NewGORMCatalogRepository creates a repository for T. Preloads name the
// associations loaded with every read.
func NewGORMCatalogRepository[T models.Entity](db *gorm.DB, preloads ...string) *GORMCatalogRepository[T] {
	var zero T
	return &GORMCatalogRepository[T]{
		db:       db,
		kind:     zero.EntityKind(),
		preloads: preloads,
	}
}

func (r *GORMCatalogRepository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// FindUnique retrieves a single record by its ID.
func (r *GORMCatalogRepository[T]) FindUnique(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.query(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s by ID %s: %w", r.kind.Noun(), id, err)
	}
	return &entity, nil
}

// FindMany retrieves every record of the store matching filter, newest first.
func (r *GORMCatalogRepository[T]) FindMany(ctx context.Context, storeID string, filter Filter) ([]T, error) {
	entities := make([]T, 0)
	q := r.query(ctx).Where("store_id = ?", storeID)
	if len(filter) > 0 {
		q = q.Where(map[string]interface{}(filter))
	}
	if err := q.Order("created_at desc").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s for store %s: %w", r.kind, storeID, err)
	}
	return entities, nil
}

// Create inserts a new record. IDs are assigned by the model's BeforeCreate hook.
func (r *GORMCatalogRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.kind.Noun(), err)
	}
	return nil
}

// UpdateMany updates the columns in fields, including zero values.
func (r *GORMCatalogRepository[T]) UpdateMany(ctx context.Context, storeID, id string, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ? AND store_id = ?", id, storeID).
		Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update %s %s: %w", r.kind.Noun(), id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete deletes a record by its ID. A foreign key violation from dependent
// rows is returned as an error and leaves the record in place.
func (r *GORMCatalogRepository[T]) Delete(ctx context.Context, storeID, id string) (*T, error) {
	var entity T
	if err := r.query(ctx).First(&entity, "id = ? AND store_id = ?", id, storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s %s for deletion: %w", r.kind.Noun(), id, err)
	}
	if err := r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete %s %s: %w", r.kind.Noun(), id, err)
	}
	return &entity, nil
}
