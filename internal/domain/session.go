package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreateSleepSessionRequest is the request body for syncing a night.
// @Description Night synced from the ring with its device stage timeline.
type CreateSleepSessionRequest struct {
	// Night start (RFC3339)
	StartTime time.Time `json:"start_time" validate:"required" example:"2024-01-15T23:00:00Z"`
	// Night end (must be after start_time)
	EndTime time.Time `json:"end_time" validate:"required,gtfield=StartTime" example:"2024-01-16T07:00:00Z"`
	// Device sleep score (0-100, 0 when the ring did not score the night)
	SleepScore int `json:"sleep_score" validate:"min=0,max=100" example:"82"`
	// Overnight resting heart rate (bpm)
	RestingHR int `json:"resting_hr" validate:"min=0,max=250" example:"52"`
	// Device stage timeline
	Segments []SegmentRequest `json:"segments" validate:"dive"`
	// Optional client-generated ID for idempotent sync (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"sync-2024-01-16"`
}

// SegmentRequest is one stage interval in a sync payload.
type SegmentRequest struct {
	Stage     string    `json:"stage" validate:"required,oneof=awake light deep rem unknown sober" example:"deep"`
	StartTime time.Time `json:"start_time" validate:"required" example:"2024-01-16T01:00:00Z"`
	EndTime   time.Time `json:"end_time" validate:"required,gtefield=StartTime" example:"2024-01-16T01:45:00Z"`
}

// SleepSessionResponse is the API view of a stored night.
// @Description Stored night with stage totals.
type SleepSessionResponse struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"user_id"`
	StartTime       time.Time      `json:"start_time"`
	EndTime         time.Time      `json:"end_time"`
	DeepMin         int            `json:"deep_min"`
	LightMin        int            `json:"light_min"`
	RemMin          int            `json:"rem_min"`
	AwakeMin        int            `json:"awake_min"`
	SleepScore      int            `json:"sleep_score"`
	Segments        []SleepSegment `json:"segments"`
	ClientRequestID *string        `json:"client_request_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (s *SleepSession) ToResponse() SleepSessionResponse {
	return SleepSessionResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DeepMin:         s.DeepMin,
		LightMin:        s.LightMin,
		RemMin:          s.RemMin,
		AwakeMin:        s.AwakeMin,
		SleepScore:      s.SleepScore,
		Segments:        s.Segments(),
		ClientRequestID: s.ClientRequestID,
		CreatedAt:       s.CreatedAt,
	}
}

// SleepSessionListResponse is a page of stored nights.
type SleepSessionListResponse struct {
	Data       []SleepSessionResponse `json:"data"`
	Pagination PaginationResponse     `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more" example:"true"`
}

// SleepSessionFilter contains filter parameters for listing nights.
type SleepSessionFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
