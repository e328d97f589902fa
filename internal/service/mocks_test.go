package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/langfuse"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// MockSleepSessionRepository is a mock implementation of SleepSessionRepository
type MockSleepSessionRepository struct {
	mu              sync.Mutex
	sessions        map[uuid.UUID]*domain.SleepSession
	clientRequestID map[string]*domain.SleepSession
	listResult      []domain.SleepSession
	calls           int
	delay           time.Duration
	err             error
	// raced is stored by Create, which then reports a unique violation,
	// as if a concurrent request had inserted it first.
	raced *domain.SleepSession
}

func NewMockSleepSessionRepository() *MockSleepSessionRepository {
	return &MockSleepSessionRepository{
		sessions:        make(map[uuid.UUID]*domain.SleepSession),
		clientRequestID: make(map[string]*domain.SleepSession),
	}
}

func (m *MockSleepSessionRepository) add(session domain.SleepSession) {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	m.sessions[session.ID] = &session
}

func (m *MockSleepSessionRepository) Create(ctx context.Context, session *domain.SleepSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.raced != nil {
		m.sessions[m.raced.ID] = m.raced
		m.clientRequestID[m.raced.UserID.String()+":"+*m.raced.ClientRequestID] = m.raced
		return fmt.Errorf("%w: idx_sleep_session_client_request", domain.ErrConflict)
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.CreatedAt = time.Now()
	m.sessions[session.ID] = session
	if session.ClientRequestID != nil {
		m.clientRequestID[session.UserID.String()+":"+*session.ClientRequestID] = session
	}
	return nil
}

func (m *MockSleepSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (m *MockSleepSessionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepSession, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.After(result[j].StartTime) })
	return result, nil
}

func (m *MockSleepSessionRepository) ListStartedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSession, error) {
	m.mu.Lock()
	m.calls++
	delay, err := m.delay, m.err
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.SleepSession
	for _, s := range m.sessions {
		if s.UserID == userID && !s.StartTime.Before(from) && s.StartTime.Before(to) {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.Before(result[j].StartTime) })
	return result, nil
}

func (m *MockSleepSessionRepository) HasOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for _, s := range m.sessions {
		if s.UserID != userID {
			continue
		}
		if start.Before(s.EndTime) && end.After(s.StartTime) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockSleepSessionRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	session, ok := m.clientRequestID[userID.String()+":"+clientRequestID]
	if !ok {
		return nil, nil
	}
	return session, nil
}

func (m *MockSleepSessionRepository) SetError(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

func (m *MockSleepSessionRepository) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockReadingRepository is a mock implementation of ReadingRepository
type MockReadingRepository struct {
	mu          sync.Mutex
	heartRate   []domain.HeartRateReading
	hrv         []domain.HRVReading
	spo2        []domain.SpO2Reading
	temperature []domain.TemperatureReading
	daily       []domain.DailySummary
	err         error
}

func NewMockReadingRepository() *MockReadingRepository {
	return &MockReadingRepository{}
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func (m *MockReadingRepository) ListHeartRate(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HeartRateReading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.HeartRateReading
	for _, r := range m.heartRate {
		if r.UserID == userID && inRange(r.RecordedAt, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockReadingRepository) ListHRV(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HRVReading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.HRVReading
	for _, r := range m.hrv {
		if r.UserID == userID && inRange(r.RecordedAt, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockReadingRepository) ListSpO2(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SpO2Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.SpO2Reading
	for _, r := range m.spo2 {
		if r.UserID == userID && inRange(r.RecordedAt, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockReadingRepository) ListTemperature(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.TemperatureReading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.TemperatureReading
	for _, r := range m.temperature {
		if r.UserID == userID && inRange(r.RecordedAt, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockReadingRepository) ListDailySummaries(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.DailySummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.DailySummary
	for _, r := range m.daily {
		if r.UserID == userID && r.DateKey() >= fromDate && r.DateKey() <= toDate {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockReadingRepository) SetError(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output *domain.InsightsOutput
	err    error
	got    *domain.InsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.InsightsOutput, error) {
	m.got = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	return "trace-" + in.Name, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	return nil
}

func (m *MockLangfuseClient) Flush(ctx context.Context) error {
	return nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
