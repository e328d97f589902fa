package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/google/uuid"
)

func TestHistoryHandler_GetHistory(t *testing.T) {
	userID := uuid.New().String()
	bucket := domain.NewDayBucket(domain.MetricActivity)
	bucket.Days["2024-01-14"] = domain.DayActivity{Date: "2024-01-14", Steps: 8000}
	bucket.Days["2024-01-16"] = domain.DayActivity{Date: "2024-01-16", Steps: 3000}

	tests := []struct {
		name           string
		userID         string
		metric         string
		history        *MockHistoryService
		wantStatusCode int
	}{
		{"bucket", userID, "activity", &MockHistoryService{bucket: &bucket}, http.StatusOK},
		{"unknown metric", userID, "glucose", &MockHistoryService{}, http.StatusNotFound},
		{"invalid user ID", "nope", "activity", &MockHistoryService{}, http.StatusBadRequest},
		{"unknown user", userID, "activity", &MockHistoryService{err: domain.ErrUnauthenticated}, http.StatusUnauthorized},
		{"store down", userID, "activity", &MockHistoryService{err: fmt.Errorf("%w: timeout", domain.ErrStoreUnavailable)}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHistoryHandler(tt.history, &MockLiveService{})

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+tt.userID+"/history/"+tt.metric, nil)
			req = req.WithContext(withURLParams(req.Context(), map[string]string{"userId": tt.userID, "metric": tt.metric}))
			rec := httptest.NewRecorder()

			handler.GetHistory(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("GetHistory() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode != http.StatusOK {
				return
			}

			var response struct {
				Metric string         `json:"metric"`
				Dates  []string       `json:"dates"`
				Days   map[string]any `json:"days"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(response.Dates) != 2 || response.Dates[0] != "2024-01-16" {
				t.Errorf("Dates = %v, want most recent first", response.Dates)
			}
			if len(response.Days) != 2 {
				t.Errorf("Days has %d entries, want 2", len(response.Days))
			}
		})
	}
}

func TestHistoryHandler_GetDay(t *testing.T) {
	userID := uuid.New().String()
	live := &domain.DayResolution{
		Metric:  domain.MetricActivity,
		DateKey: "2024-01-16",
		Source:  domain.SourceLiveFallback,
		Record:  domain.DayActivity{Date: "2024-01-16", Steps: 4100},
	}

	tests := []struct {
		name           string
		date           string
		history        *MockHistoryService
		wantStatusCode int
		wantSource     domain.HistorySource
	}{
		{"live fallback", "2024-01-16", &MockHistoryService{resolution: live}, http.StatusOK, domain.SourceLiveFallback},
		{"no data", "2024-01-12", &MockHistoryService{}, http.StatusOK, domain.SourceNone},
		{"bad date", "16-01-2024", &MockHistoryService{}, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHistoryHandler(tt.history, &MockLiveService{})

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID+"/history/activity/"+tt.date, nil)
			req = req.WithContext(withURLParams(req.Context(), map[string]string{
				"userId": userID, "metric": "activity", "date": tt.date,
			}))
			rec := httptest.NewRecorder()

			handler.GetDay(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("GetDay() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantSource == "" {
				return
			}
			var response struct {
				Source domain.HistorySource `json:"source"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if response.Source != tt.wantSource {
				t.Errorf("source = %s, want %s", response.Source, tt.wantSource)
			}
		})
	}
}

func TestHistoryHandler_PushLive(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name           string
		metric         string
		body           string
		live           *MockLiveService
		wantStatusCode int
	}{
		{"activity", "activity", `{"steps": 4100}`, &MockLiveService{}, http.StatusOK},
		{"negative steps", "activity", `{"steps": -5}`, &MockLiveService{}, http.StatusUnprocessableEntity},
		{"invalid JSON", "activity", `{`, &MockLiveService{}, http.StatusBadRequest},
		{"unknown metric", "glucose", `{}`, &MockLiveService{}, http.StatusNotFound},
		{"missing readings", "spo2", `{}`, &MockLiveService{err: fmt.Errorf("%w: spo2 summary needs at least one reading", domain.ErrInvalidInput)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHistoryHandler(&MockHistoryService{}, tt.live)

			req := httptest.NewRequest(http.MethodPut, "/v1/users/"+userID+"/live/"+tt.metric, bytes.NewBufferString(tt.body))
			req = req.WithContext(withURLParams(req.Context(), map[string]string{"userId": userID, "metric": tt.metric}))
			rec := httptest.NewRecorder()

			handler.PushLive(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("PushLive() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
