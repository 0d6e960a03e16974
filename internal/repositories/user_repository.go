package repositories

import (
	"context"

	"tokoadmin/internal/models"
)

// UserRepository stores dashboard accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// FindByUsername returns nil, nil when no account has the username.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// Conflict names the unique field ("username" or "email") an existing
	// account already uses, or returns "" when both are free.
	Conflict(ctx context.Context, username, email string) (string, error)
}
