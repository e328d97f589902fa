package repository

import (
	"context"
	"time"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReadingRepository reads the raw per-sample series synced from the ring.
// Every List method returns rows with recorded_at in [from, to), oldest first.
type ReadingRepository interface {
	ListHeartRate(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HeartRateReading, error)
	ListHRV(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HRVReading, error)
	ListSpO2(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SpO2Reading, error)
	ListTemperature(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.TemperatureReading, error)
	// ListDailySummaries filters on the local date column, both ends inclusive.
	ListDailySummaries(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.DailySummary, error)
}

type readingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(db *gorm.DB) ReadingRepository {
	return &readingRepository{db: db}
}

func (r *readingRepository) recordedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recorded_at >= ? AND recorded_at < ?", userID, from, to).
		Order("recorded_at ASC")
}

func (r *readingRepository) ListHeartRate(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HeartRateReading, error) {
	var rows []domain.HeartRateReading
	if err := r.recordedBetween(ctx, userID, from, to).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *readingRepository) ListHRV(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HRVReading, error) {
	var rows []domain.HRVReading
	if err := r.recordedBetween(ctx, userID, from, to).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *readingRepository) ListSpO2(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SpO2Reading, error) {
	var rows []domain.SpO2Reading
	if err := r.recordedBetween(ctx, userID, from, to).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *readingRepository) ListTemperature(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.TemperatureReading, error) {
	var rows []domain.TemperatureReading
	if err := r.recordedBetween(ctx, userID, from, to).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *readingRepository) ListDailySummaries(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.DailySummary, error) {
	var rows []domain.DailySummary
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, fromDate, toDate).
		Order("date ASC").
		Order("updated_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
