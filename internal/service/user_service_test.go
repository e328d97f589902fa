package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/google/uuid"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name         string
		defaultZone  string
		req          *domain.CreateUserRequest
		wantTimezone string
	}{
		{
			name:         "explicit timezone",
			defaultZone:  "UTC",
			req:          &domain.CreateUserRequest{Timezone: "Europe/Budapest"},
			wantTimezone: "Europe/Budapest",
		},
		{
			name:         "blank timezone uses configured default",
			defaultZone:  "Europe/Prague",
			req:          &domain.CreateUserRequest{},
			wantTimezone: "Europe/Prague",
		},
		{
			name:         "blank timezone and no default",
			req:          &domain.CreateUserRequest{Timezone: "  "},
			wantTimezone: "UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			svc := NewUserService(repo, tt.defaultZone)

			user, err := svc.Create(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if user.Timezone != tt.wantTimezone {
				t.Errorf("Create() timezone = %v, want %v", user.Timezone, tt.wantTimezone)
			}
			if user.ID == uuid.Nil {
				t.Error("Create() user ID should not be nil")
			}
		})
	}
}

func TestUserService_Create_RepositoryError(t *testing.T) {
	repo := NewMockUserRepository()
	repo.SetError(errors.New("connection refused"))
	svc := NewUserService(repo, "UTC")

	if _, err := svc.Create(context.Background(), &domain.CreateUserRequest{}); err == nil {
		t.Error("Create() expected error")
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo, "UTC")

	created, err := svc.Create(context.Background(), &domain.CreateUserRequest{Timezone: "America/New_York"})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	tests := []struct {
		name    string
		id      uuid.UUID
		wantErr error
	}{
		{
			name:    "existing user",
			id:      created.ID,
			wantErr: nil,
		},
		{
			name:    "non-existing user",
			id:      uuid.New(),
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.GetByID(context.Background(), tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetByID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil && user == nil {
				t.Error("GetByID() returned nil user for existing ID")
			}
		})
	}
}
