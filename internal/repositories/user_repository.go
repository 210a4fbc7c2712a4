package repositories

import (
	"context"
	"fmt"

	"budget-tracker/internal/models"

	"gorm.io/gorm"
)

// UserRepository reads the user directory. This service never writes users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{db: db}
}

// ListEmails returns every known user's email in a stable order
func (r *UserRepository) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Order("email ASC").
		Pluck("email", &emails).Error; err != nil {
		return nil, fmt.Errorf("failed to list user emails: %w", err)
	}
	return emails, nil
}

