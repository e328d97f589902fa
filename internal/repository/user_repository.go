package repository

import (
	"context"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	// Create returns domain.ErrConflict when the ID is taken.
	Create(ctx context.Context, user *domain.User) error
	// GetByID returns domain.ErrNotFound for unknown users.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Take(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// Exists probes by primary key without loading the row.
func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var found []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Limit(1).
		Pluck("id", &found).Error
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}
