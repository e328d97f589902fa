package service

import (
	"context"
	"strings"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/repository"
	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo            repository.UserRepository
	defaultTimezone string
}

// NewUserService creates a UserService. defaultTimezone is stored for
// requests that leave the zone blank.
func NewUserService(repo repository.UserRepository, defaultTimezone string) UserService {
	if defaultTimezone == "" {
		defaultTimezone = "UTC"
	}
	return &userService{repo: repo, defaultTimezone: defaultTimezone}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = s.defaultTimezone
	}

	user := &domain.User{
		ID:       uuid.New(),
		Timezone: tz,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
