package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/repository"
	"github.com/blaisecz/ring-analytics/pkg/pagination"
	"github.com/google/uuid"
)

type SleepSessionService interface {
	// Create stores a synced night. The bool is true when an earlier session
	// with the same client_request_id is returned instead.
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, bool, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error)
}

type sleepSessionService struct {
	repo     repository.SleepSessionRepository
	userRepo repository.UserRepository
	history  HistoryService
}

// NewSleepSessionService creates a SleepSessionService. history may be nil;
// otherwise the user's cached sleep bucket is dropped after each new session.
func NewSleepSessionService(repo repository.SleepSessionRepository, userRepo repository.UserRepository, history HistoryService) SleepSessionService {
	return &sleepSessionService{
		repo:     repo,
		userRepo: userRepo,
		history:  history,
	}
}

func (s *sleepSessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, bool, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	start := req.StartTime.UTC()
	end := req.EndTime.UTC()
	if !end.After(start) {
		return nil, false, domain.ErrInvalidInput
	}

	segments, err := normalizeSegments(req.Segments, start, end)
	if err != nil {
		return nil, false, err
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, userID, start, end)
	if err != nil {
		return nil, false, err
	}
	if hasOverlap {
		return nil, false, domain.ErrOverlappingSleep
	}

	detail := domain.SleepDetail{RestingHR: req.RestingHR}
	var totals domain.StageMinutes
	for _, seg := range segments {
		detail.Segments = append(detail.Segments, domain.SleepSegmentJSON{
			Stage:     string(seg.Stage),
			StartTime: seg.StartTime,
			EndTime:   seg.EndTime,
		})
		totals.Add(seg.Stage, seg.Duration().Minutes())
	}
	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return nil, false, fmt.Errorf("encode sleep detail: %w", err)
	}

	session := &domain.SleepSession{
		UserID:          userID,
		StartTime:       start,
		EndTime:         end,
		DeepMin:         int(math.Round(totals.Deep)),
		LightMin:        int(math.Round(totals.Light)),
		RemMin:          int(math.Round(totals.REM)),
		AwakeMin:        int(math.Round(totals.Awake)),
		SleepScore:      req.SleepScore,
		DetailJSON:      detailJSON,
		ClientRequestID: req.ClientRequestID,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		// A concurrent retry of the same sync won the insert.
		if errors.Is(err, domain.ErrConflict) && req.ClientRequestID != nil {
			existing, getErr := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
			if getErr == nil && existing != nil {
				return existing, true, nil
			}
		}
		return nil, false, err
	}

	if s.history != nil {
		s.history.Invalidate(domain.MetricSleep, userID)
	}
	return session, false, nil
}

// normalizeSegments converts request segments to UTC, sorts them and rejects
// overlaps or segments outside [start, end].
func normalizeSegments(in []domain.SegmentRequest, start, end time.Time) ([]domain.SleepSegment, error) {
	segments := make([]domain.SleepSegment, 0, len(in))
	for _, seg := range in {
		segments = append(segments, domain.SleepSegment{
			Stage:     domain.ParseSleepStage(seg.Stage),
			StartTime: seg.StartTime.UTC(),
			EndTime:   seg.EndTime.UTC(),
		})
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartTime.Before(segments[j].StartTime)
	})

	for i, seg := range segments {
		if seg.EndTime.Before(seg.StartTime) {
			return nil, fmt.Errorf("%w: segment %d ends before it starts", domain.ErrInvalidInput, i)
		}
		if seg.StartTime.Before(start) || seg.EndTime.After(end) {
			return nil, fmt.Errorf("%w: segment %d lies outside the session", domain.ErrInvalidInput, i)
		}
		if i > 0 && seg.StartTime.Before(segments[i-1].EndTime) {
			return nil, domain.ErrOverlappingSegments
		}
	}
	return segments, nil
}

func (s *sleepSessionService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if filter.Cursor != "" {
		if _, err := pagination.DecodeCursor(filter.Cursor); err != nil {
			return nil, errors.Join(domain.ErrInvalidInput, err)
		}
	}

	sessions, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	sessions, hasMore := pagination.Trim(sessions, filter.Limit)

	response := &domain.SleepSessionListResponse{
		Data:       make([]domain.SleepSessionResponse, len(sessions)),
		Pagination: domain.PaginationResponse{HasMore: hasMore},
	}
	for i := range sessions {
		response.Data[i] = sessions[i].ToResponse()
	}

	if hasMore && len(sessions) > 0 {
		last := sessions[len(sessions)-1]
		cursor := &pagination.Cursor{ID: last.ID, StartTime: last.StartTime}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
