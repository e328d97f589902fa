package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

// DefaultHistoryDays is today plus the six previous local days.
const DefaultHistoryDays = 7

// LiveSummaryProvider supplies the on-device "today so far" record for a
// metric. It is consulted only when the store has nothing for today.
type LiveSummaryProvider interface {
	LiveSummary(ctx context.Context, kind domain.MetricKind, userID uuid.UUID, dateKey string) (domain.DayRecord, bool)
}

// HistoryService resolves day-bucketed metric history for a user.
type HistoryService interface {
	// Resolve returns the bucket for the history window. Buckets are cached
	// per (kind, user) for the life of the service; a failed load leaves any
	// cached bucket untouched.
	Resolve(ctx context.Context, kind domain.MetricKind, userID uuid.UUID) (*domain.DayBucket, error)
	// ResolveDay resolves a single day and reports where the record came from.
	ResolveDay(ctx context.Context, kind domain.MetricKind, userID uuid.UUID, dateKey string) (*domain.DayResolution, error)
	// Invalidate drops the cached bucket so the next Resolve reloads it.
	Invalidate(kind domain.MetricKind, userID uuid.UUID)
}

// HistoryConfig tunes the resolver.
type HistoryConfig struct {
	Days int
	// Now is the clock; defaults to time.Now.
	Now func() time.Time
}

type historyKey struct {
	kind   domain.MetricKind
	userID uuid.UUID
}

func (k historyKey) String() string {
	return string(k.kind) + ":" + k.userID.String()
}

type historyEntry struct {
	bucket *domain.DayBucket
	loc    *time.Location
}

type historyService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SleepSessionRepository
	readingRepo repository.ReadingRepository
	live        LiveSummaryProvider
	days        int
	now         func() time.Time

	mu    sync.RWMutex
	cache map[historyKey]historyEntry
	group singleflight.Group
}

// NewHistoryService creates a HistoryService. live may be nil, in which case
// today's missing days resolve to SourceNone.
func NewHistoryService(
	userRepo repository.UserRepository,
	sessionRepo repository.SleepSessionRepository,
	readingRepo repository.ReadingRepository,
	live LiveSummaryProvider,
	cfg HistoryConfig,
) HistoryService {
	if cfg.Days <= 0 {
		cfg.Days = DefaultHistoryDays
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &historyService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		readingRepo: readingRepo,
		live:        live,
		days:        cfg.Days,
		now:         cfg.Now,
		cache:       make(map[historyKey]historyEntry),
	}
}

func (s *historyService) Resolve(ctx context.Context, kind domain.MetricKind, userID uuid.UUID) (*domain.DayBucket, error) {
	entry, err := s.resolve(ctx, kind, userID)
	if err != nil {
		return nil, err
	}
	return entry.bucket, nil
}

func (s *historyService) resolve(ctx context.Context, kind domain.MetricKind, userID uuid.UUID) (historyEntry, error) {
	if _, err := domain.ParseMetricKind(string(kind)); err != nil {
		return historyEntry{}, err
	}

	key := historyKey{kind: kind, userID: userID}
	if entry, ok := s.cached(key); ok {
		return entry, nil
	}

	v, err, shared := s.group.Do(key.String(), func() (any, error) {
		if entry, ok := s.cached(key); ok {
			return entry, nil
		}
		entry, err := s.load(context.WithoutCancel(ctx), kind, userID)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[key] = entry
		s.mu.Unlock()
		return entry, nil
	})
	if err != nil {
		return historyEntry{}, err
	}
	if shared {
		log.Printf("[history] coalesced resolution for %s", key)
	}
	return v.(historyEntry), nil
}

func (s *historyService) cached(key historyKey) (historyEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[key]
	return entry, ok
}

func (s *historyService) Invalidate(kind domain.MetricKind, userID uuid.UUID) {
	s.mu.Lock()
	delete(s.cache, historyKey{kind: kind, userID: userID})
	s.mu.Unlock()
}

func (s *historyService) load(ctx context.Context, kind domain.MetricKind, userID uuid.UUID) (historyEntry, error) {
	tracer := otel.Tracer("ring-analytics/history")
	ctx, span := tracer.Start(ctx, "HistoryService.Resolve",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("metric.kind", string(kind)),
			attribute.Int("window.days", s.days),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.ErrUnauthenticated
		} else {
			err = fmt.Errorf("%w: load user: %v", domain.ErrStoreUnavailable, err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return historyEntry{}, err
	}

	loc := user.Location()
	from, to := s.window(loc)
	span.SetAttributes(
		attribute.String("window.from", from.Format(time.RFC3339)),
		attribute.String("window.to", to.Format(time.RFC3339)),
	)

	bucket, err := s.query(ctx, kind, userID, from, to, loc)
	if err != nil {
		err = fmt.Errorf("%w: %s history: %v", domain.ErrStoreUnavailable, kind, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return historyEntry{}, err
	}

	span.SetAttributes(attribute.Int("bucket.days", bucket.Len()))
	if outputJSON, err := json.Marshal(bucket.Keys()); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return historyEntry{bucket: &bucket, loc: loc}, nil
}

// window returns [local midnight of the oldest day, local midnight after today).
func (s *historyService) window(loc *time.Location) (time.Time, time.Time) {
	now := s.now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return today.AddDate(0, 0, -(s.days - 1)), today.AddDate(0, 0, 1)
}

func (s *historyService) query(ctx context.Context, kind domain.MetricKind, userID uuid.UUID, from, to time.Time, loc *time.Location) (domain.DayBucket, error) {
	switch kind {
	case domain.MetricSleep:
		rows, err := s.sessionRepo.ListStartedBetween(ctx, userID, from, to)
		if err != nil {
			return domain.DayBucket{}, err
		}
		return sleepBucket(rows, loc), nil
	case domain.MetricHeartRate:
		rows, err := s.readingRepo.ListHeartRate(ctx, userID, from, to)
		if err != nil {
			return domain.DayBucket{}, err
		}
		return heartRateBucket(rows, loc), nil
	case domain.MetricHRV:
		rows, err := s.readingRepo.ListHRV(ctx, userID, from, to)
		if err != nil {
			return domain.DayBucket{}, err
		}
		return hrvBucket(rows, loc), nil
	case domain.MetricSpO2:
		rows, err := s.readingRepo.ListSpO2(ctx, userID, from, to)
		if err != nil {
			return domain.DayBucket{}, err
		}
		return spo2Bucket(rows, loc), nil
	case domain.MetricTemperature:
		rows, err := s.readingRepo.ListTemperature(ctx, userID, from, to)
		if err != nil {
			return domain.DayBucket{}, err
		}
		return temperatureBucket(rows, loc), nil
	case domain.MetricActivity:
		// to is the midnight after today; the date column is inclusive.
		rows, err := s.readingRepo.ListDailySummaries(ctx, userID,
			from.Format(domain.DateKeyLayout), to.AddDate(0, 0, -1).Format(domain.DateKeyLayout))
		if err != nil {
			return domain.DayBucket{}, err
		}
		return activityBucket(rows), nil
	default:
		return domain.DayBucket{}, fmt.Errorf("%w: %q", domain.ErrUnknownMetric, kind)
	}
}

func (s *historyService) ResolveDay(ctx context.Context, kind domain.MetricKind, userID uuid.UUID, dateKey string) (*domain.DayResolution, error) {
	if _, err := time.Parse(domain.DateKeyLayout, dateKey); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	entry, err := s.resolve(ctx, kind, userID)
	if err != nil {
		return nil, err
	}

	resolution := &domain.DayResolution{Metric: kind, DateKey: dateKey, Source: domain.SourceNone}
	if rec, ok := entry.bucket.Get(dateKey); ok {
		resolution.Source = domain.SourceStore
		resolution.Record = rec
		return resolution, nil
	}

	today := domain.DateKey(s.now(), entry.loc)
	if dateKey == today && s.live != nil {
		if rec, ok := s.live.LiveSummary(ctx, kind, userID, dateKey); ok && rec != nil {
			resolution.Source = domain.SourceLiveFallback
			resolution.Record = rec
		}
	}
	return resolution, nil
}
