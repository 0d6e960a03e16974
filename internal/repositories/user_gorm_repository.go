package repositories

import (
	"context"
	"errors"
	"fmt"

	"tokoadmin/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Username, err)
	}
	return nil
}

func (r *GORMUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", username, err)
	}
	return &user, nil
}

func (r *GORMUserRepository) Conflict(ctx context.Context, username, email string) (string, error) {
	var taken []models.User
	err := r.db.WithContext(ctx).
		Select("username", "email").
		Where("username = ? OR email = ?", username, email).
		Limit(2).
		Find(&taken).Error
	if err != nil {
		return "", fmt.Errorf("failed to check accounts for %s: %w", username, err)
	}
	for _, u := range taken {
		if u.Username == username {
			return "username", nil
		}
	}
	if len(taken) > 0 {
		return "email", nil
	}
	return "", nil
}
