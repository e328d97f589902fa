package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepSessionRepository interface {
	Create(ctx context.Context, session *domain.SleepSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSession, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error)
	// ListStartedBetween returns sessions with start_time in [from, to),
	// oldest first.
	ListStartedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSession, error)
	HasOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error)
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSession, error)
}

type sleepSessionRepository struct {
	db *gorm.DB
}

func NewSleepSessionRepository(db *gorm.DB) SleepSessionRepository {
	return &sleepSessionRepository{db: db}
}

// Create returns domain.ErrConflict when another session already carries
// the client request ID.
func (r *sleepSessionRepository) Create(ctx context.Context, session *domain.SleepSession) error {
	return translateError(r.db.WithContext(ctx).Create(session).Error)
}

func (r *sleepSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSession, error) {
	var session domain.SleepSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &session, nil
}

// List returns up to limit+1 sessions, newest first, so the caller can tell
// whether another page exists.
func (r *sleepSessionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where("start_time >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_time <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(start_time < ?) OR (start_time = ? AND id < ?)",
				cursor.StartTime, cursor.StartTime, cursor.ID,
			)
		}
	}

	query = query.Limit(pagination.NormalizeLimit(filter.Limit) + 1)

	var sessions []domain.SleepSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sleepSessionRepository) ListStartedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSession, error) {
	var sessions []domain.SleepSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, from, to).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sleepSessionRepository) HasOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SleepSession{}).
		Where("user_id = ?", userID).
		Where("start_time < ?", end).
		Where("end_time > ?", start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByClientRequestID returns nil, nil when no session carries the ID.
func (r *sleepSessionRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSession, error) {
	var session domain.SleepSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}
