package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SleepSession is one synced night as stored by the mobile client.
type SleepSession struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_sleep_sessions_user_start" json:"user_id"`
	StartTime       time.Time       `gorm:"not null;index:idx_sleep_sessions_user_start,sort:desc" json:"start_time"`
	EndTime         time.Time       `gorm:"not null" json:"end_time"`
	DeepMin         int             `gorm:"not null;default:0" json:"deep_min"`
	LightMin        int             `gorm:"not null;default:0" json:"light_min"`
	RemMin          int             `gorm:"not null;default:0" json:"rem_min"`
	AwakeMin        int             `gorm:"not null;default:0" json:"awake_min"`
	SleepScore      int             `gorm:"type:smallint;not null;default:0" json:"sleep_score"`
	DetailJSON      json.RawMessage `gorm:"type:jsonb" json:"detail_json,omitempty"`
	ClientRequestID *string         `gorm:"type:varchar(255);uniqueIndex:idx_sleep_session_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepSession) TableName() string {
	return "sleep_sessions"
}

// SleepDetail is the JSON document stored in SleepSession.DetailJSON.
type SleepDetail struct {
	Segments  []SleepSegmentJSON `json:"segments"`
	RestingHR int                `json:"restingHR,omitempty"`
}

// SleepSegmentJSON is the stored form of a segment; stage names are free-form.
type SleepSegmentJSON struct {
	Stage     string    `json:"stage"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Detail decodes DetailJSON, which is either {"segments": [...]} or a bare
// segment array. Undecodable documents yield an empty detail.
func (s *SleepSession) Detail() SleepDetail {
	var detail SleepDetail
	if len(s.DetailJSON) == 0 {
		return detail
	}
	if err := json.Unmarshal(s.DetailJSON, &detail); err == nil {
		return detail
	}
	var bare []SleepSegmentJSON
	if err := json.Unmarshal(s.DetailJSON, &bare); err == nil {
		detail.Segments = bare
	}
	return detail
}

// Segments returns the decoded stage timeline, skipping zero timestamps.
func (s *SleepSession) Segments() []SleepSegment {
	detail := s.Detail()
	out := make([]SleepSegment, 0, len(detail.Segments))
	for _, seg := range detail.Segments {
		if seg.StartTime.IsZero() || seg.EndTime.IsZero() {
			continue
		}
		out = append(out, SleepSegment{
			Stage:     ParseSleepStage(seg.Stage),
			StartTime: seg.StartTime,
			EndTime:   seg.EndTime,
		})
	}
	return out
}

type HeartRateReading struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_hr_user_recorded" json:"user_id"`
	HeartRate  int       `gorm:"not null" json:"heart_rate"`
	RecordedAt time.Time `gorm:"not null;index:idx_hr_user_recorded" json:"recorded_at"`
}

func (HeartRateReading) TableName() string {
	return "heart_rate_readings"
}

type HRVReading struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_hrv_user_recorded" json:"user_id"`
	SDNN       *float64  `json:"sdnn"`
	RMSSD      *float64  `json:"rmssd"`
	PNN50      *float64  `json:"pnn50"`
	LF         *float64  `json:"lf"`
	HF         *float64  `json:"hf"`
	LFHFRatio  *float64  `gorm:"column:lf_hf_ratio" json:"lf_hf_ratio"`
	RecordedAt time.Time `gorm:"not null;index:idx_hrv_user_recorded" json:"recorded_at"`
}

func (HRVReading) TableName() string {
	return "hrv_readings"
}

type SpO2Reading struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_spo2_user_recorded" json:"user_id"`
	SpO2       float64   `gorm:"column:spo2;not null" json:"spo2"`
	RecordedAt time.Time `gorm:"not null;index:idx_spo2_user_recorded" json:"recorded_at"`
}

func (SpO2Reading) TableName() string {
	return "spo2_readings"
}

type TemperatureReading struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_temp_user_recorded" json:"user_id"`
	TemperatureC float64   `gorm:"column:temperature_c;not null" json:"temperature_c"`
	RecordedAt   time.Time `gorm:"not null;index:idx_temp_user_recorded" json:"recorded_at"`
}

func (TemperatureReading) TableName() string {
	return "temperature_readings"
}

// DailySummary is already aggregated per local date by the device sync.
type DailySummary struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_daily_user_date" json:"user_id"`
	Date           string    `gorm:"type:date;not null;index:idx_daily_user_date" json:"date"`
	TotalSteps     int       `gorm:"not null;default:0" json:"total_steps"`
	TotalDistanceM float64   `gorm:"column:total_distance_m;not null;default:0" json:"total_distance_m"`
	TotalCalories  float64   `gorm:"not null;default:0" json:"total_calories"`
	SleepTotalMin  *int      `json:"sleep_total_min"`
	HRAvg          *int      `gorm:"column:hr_avg" json:"hr_avg"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DailySummary) TableName() string {
	return "daily_summaries"
}

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{
		&User{},
		&SleepSession{},
		&HeartRateReading{},
		&HRVReading{},
		&SpO2Reading{},
		&TemperatureReading{},
		&DailySummary{},
	}
}

// DateKey normalises Date to YYYY-MM-DD; drivers may return a full timestamp
// for date columns.
func (d DailySummary) DateKey() string {
	if len(d.Date) >= len(DateKeyLayout) {
		return d.Date[:len(DateKeyLayout)]
	}
	return d.Date
}
