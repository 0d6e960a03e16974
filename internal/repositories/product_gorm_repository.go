package repositories

import (
	"context"
	"errors"
	"fmt"

	"tokoadmin/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	*GORMCatalogRepository[models.Product]
}

// NewGORMProductRepository creates a product repository that loads images and
// lookup entities with every read.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		GORMCatalogRepository: NewGORMCatalogRepository[models.Product](db, "Images", "Category", "Size", "Color"),
	}
}

func (r *GORMProductRepository) UpdateWithImages(ctx context.Context, storeID, id string, fields map[string]interface{}, urls []string) (int64, error) {
	var matched int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).Where("id = ? AND store_id = ?", id, storeID).Updates(fields)
		if res.Error != nil {
			return fmt.Errorf("failed to update product %s: %w", id, res.Error)
		}
		matched = res.RowsAffected
		if matched == 0 {
			return nil
		}
		return replaceImages(tx, id, urls)
	})
	if err != nil {
		return 0, err
	}
	return matched, nil
}

func replaceImages(tx *gorm.DB, productID string, urls []string) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.Image{}).Error; err != nil {
		return fmt.Errorf("failed to clear images of product %s: %w", productID, err)
	}
	if len(urls) == 0 {
		return nil
	}
	images := make([]models.Image, len(urls))
	for i, u := range urls {
		images[i] = models.Image{ProductID: productID, URL: u}
	}
	if err := tx.Create(&images).Error; err != nil {
		return fmt.Errorf("failed to store images of product %s: %w", productID, err)
	}
	return nil
}

// Delete removes the product together with its images.
func (r *GORMProductRepository) Delete(ctx context.Context, storeID, id string) (*models.Product, error) {
	var product models.Product
	if err := r.query(ctx).First(&product, "id = ? AND store_id = ?", id, storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load product %s for deletion: %w", id, err)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return &product, nil
}
