package handler

import (
	"context"
	"time"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/langfuse"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockSleepSessionService is a mock implementation of SleepSessionService
type MockSleepSessionService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, bool, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error)
}

func (m *MockSleepSessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepSession{
		ID:         uuid.New(),
		UserID:     userID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		SleepScore: req.SleepScore,
		CreatedAt:  time.Now(),
	}, false, nil
}

func (m *MockSleepSessionService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepSessionListResponse{
		Data:       []domain.SleepSessionResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockHistoryService is a mock implementation of HistoryService
type MockHistoryService struct {
	bucket     *domain.DayBucket
	resolution *domain.DayResolution
	err        error
}

func (m *MockHistoryService) Resolve(ctx context.Context, kind domain.MetricKind, userID uuid.UUID) (*domain.DayBucket, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.bucket != nil {
		return m.bucket, nil
	}
	bucket := domain.NewDayBucket(kind)
	return &bucket, nil
}

func (m *MockHistoryService) ResolveDay(ctx context.Context, kind domain.MetricKind, userID uuid.UUID, dateKey string) (*domain.DayResolution, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.resolution != nil {
		return m.resolution, nil
	}
	return &domain.DayResolution{Metric: kind, DateKey: dateKey, Source: domain.SourceNone}, nil
}

func (m *MockHistoryService) Invalidate(kind domain.MetricKind, userID uuid.UUID) {}

// MockLiveService is a mock implementation of LiveService
type MockLiveService struct {
	err error
	got *domain.LiveSummaryRequest
}

func (m *MockLiveService) Push(ctx context.Context, kind domain.MetricKind, userID uuid.UUID, req *domain.LiveSummaryRequest) (domain.DayRecord, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return domain.DayActivity{Date: "2024-01-16", Steps: req.Steps}, nil
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	night     *domain.NightReport
	readiness *domain.ReadinessReport
	err       error
}

func (m *MockAnalysisService) AnalyzeNight(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.NightReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.night != nil {
		return m.night, nil
	}
	return &domain.NightReport{Date: dateKey, Source: domain.SourceStore}, nil
}

func (m *MockAnalysisService) Readiness(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.ReadinessReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.readiness != nil {
		return m.readiness, nil
	}
	return &domain.ReadinessReport{Date: dateKey}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	traceID string
	err     error
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.InsightsResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.InsightsResponse{
		Night: domain.NightReport{Date: dateKey},
		Insights: domain.InsightsOutput{
			Summary:      "Solid night with plenty of deep sleep.",
			Observations: []string{"Deep sleep came early."},
			Guidance:     []string{"Keep the same bedtime."},
		},
		TraceID: m.traceID,
	}, nil
}

// mockLangfuseClient for testing
type mockLangfuseClient struct {
	enabled bool
	scores  []langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

func (m *mockLangfuseClient) Flush(ctx context.Context) error {
	return nil
}

// withURLParams attaches chi URL params to a request.
func withURLParams(ctx context.Context, params map[string]string) context.Context {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}
