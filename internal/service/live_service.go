package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/repository"
	"github.com/google/uuid"
)

// LiveSummaryStore keeps the latest pushed record per (metric, user) in
// memory. A record only answers for the day it was pushed on.
type LiveSummaryStore struct {
	mu      sync.RWMutex
	records map[historyKey]domain.DayRecord
}

func NewLiveSummaryStore() *LiveSummaryStore {
	return &LiveSummaryStore{records: make(map[historyKey]domain.DayRecord)}
}

// Put replaces the live record for the user and record kind.
func (s *LiveSummaryStore) Put(userID uuid.UUID, rec domain.DayRecord) {
	s.mu.Lock()
	s.records[historyKey{kind: rec.Kind(), userID: userID}] = rec
	s.mu.Unlock()
}

// LiveSummary implements LiveSummaryProvider.
func (s *LiveSummaryStore) LiveSummary(_ context.Context, kind domain.MetricKind, userID uuid.UUID, dateKey string) (domain.DayRecord, bool) {
	s.mu.RLock()
	rec, ok := s.records[historyKey{kind: kind, userID: userID}]
	s.mu.RUnlock()
	if !ok || rec.DateKey() != dateKey {
		return nil, false
	}
	return rec, true
}

// LiveService accepts "today so far" summaries from the device bridge.
type LiveService interface {
	Push(ctx context.Context, kind domain.MetricKind, userID uuid.UUID, req *domain.LiveSummaryRequest) (domain.DayRecord, error)
}

type liveService struct {
	store    *LiveSummaryStore
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewLiveService(store *LiveSummaryStore, userRepo repository.UserRepository, now func() time.Time) LiveService {
	if now == nil {
		now = time.Now
	}
	return &liveService{store: store, userRepo: userRepo, now: now}
}

func (s *liveService) Push(ctx context.Context, kind domain.MetricKind, userID uuid.UUID, req *domain.LiveSummaryRequest) (domain.DayRecord, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: load user: %v", domain.ErrStoreUnavailable, err)
	}

	loc := user.Location()
	rec, err := liveRecord(kind, domain.DateKey(s.now(), loc), loc, req)
	if err != nil {
		return nil, err
	}
	s.store.Put(userID, rec)
	return rec, nil
}

// liveRecord builds a day record of the given kind from a pushed summary,
// reusing the store aggregations where the payload carries raw readings.
func liveRecord(kind domain.MetricKind, dateKey string, loc *time.Location, req *domain.LiveSummaryRequest) (domain.DayRecord, error) {
	switch kind {
	case domain.MetricSleep:
		day := domain.DaySleep{
			Date:         dateKey,
			Score:        req.SleepScore,
			BedTime:      req.BedTime,
			WakeTime:     req.WakeTime,
			DeepMinutes:  req.DeepMinutes,
			LightMinutes: req.LightMinutes,
			REMMinutes:   req.REMMinutes,
			AwakeMinutes: req.AwakeMinutes,
			Segments:     req.Segments,
			RestingHR:    req.RestingHR,
		}
		if day.DeepMinutes+day.LightMinutes+day.REMMinutes+day.AwakeMinutes == 0 && len(req.Segments) > 0 {
			fillStageMinutes(&day, domain.TotalsFromSegments(req.Segments))
		}
		day.TotalSleepMinutes = day.DeepMinutes + day.LightMinutes + day.REMMinutes
		return day, nil

	case domain.MetricHeartRate:
		if len(req.Readings) > 0 {
			if day, ok := heartRateDay(dateKey, req.Readings, loc); ok {
				return day, nil
			}
		}
		return domain.DayHeartRate{
			Date:      dateKey,
			RestingHR: req.RestingHR,
			PeakHR:    req.PeakHR,
			AvgHR:     req.AvgHR,
		}, nil

	case domain.MetricHRV:
		day := domain.DayHRV{Date: dateKey, SDNN: req.SDNN, RMSSD: req.RMSSD}
		day.StressLabel, day.RecoveryLabel = HRVLabels(req.SDNN)
		return day, nil

	case domain.MetricSpO2:
		day, ok := spo2Day(dateKey, req.Readings)
		if !ok {
			return nil, fmt.Errorf("%w: spo2 summary needs at least one reading", domain.ErrInvalidInput)
		}
		return day, nil

	case domain.MetricTemperature:
		day, ok := temperatureDay(dateKey, req.Readings)
		if !ok {
			return nil, fmt.Errorf("%w: temperature summary needs at least one reading", domain.ErrInvalidInput)
		}
		return day, nil

	case domain.MetricActivity:
		return domain.DayActivity{
			Date:      dateKey,
			Steps:     req.Steps,
			DistanceM: req.DistanceM,
			Calories:  req.Calories,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMetric, kind)
}
