package domain

import "time"

// LiveSummaryRequest is a "today so far" summary pushed by the device bridge.
// Only the fields relevant to the metric in the URL are read.
type LiveSummaryRequest struct {
	// Sleep
	SleepScore   int            `json:"sleep_score" validate:"min=0,max=100"`
	DeepMinutes  int            `json:"deep_minutes" validate:"min=0"`
	LightMinutes int            `json:"light_minutes" validate:"min=0"`
	REMMinutes   int            `json:"rem_minutes" validate:"min=0"`
	AwakeMinutes int            `json:"awake_minutes" validate:"min=0"`
	Segments     []SleepSegment `json:"segments,omitempty"`
	BedTime      *time.Time     `json:"bed_time,omitempty"`
	WakeTime     *time.Time     `json:"wake_time,omitempty"`

	// Heart rate
	RestingHR int `json:"resting_hr" validate:"min=0,max=250"`
	PeakHR    int `json:"peak_hr" validate:"min=0,max=250"`
	AvgHR     int `json:"avg_hr" validate:"min=0,max=250"`

	// HRV
	SDNN  *float64 `json:"sdnn,omitempty" validate:"omitempty,min=0"`
	RMSSD *float64 `json:"rmssd,omitempty" validate:"omitempty,min=0"`

	// SpO2 / temperature
	Readings []Sample `json:"readings,omitempty"`

	// Activity
	Steps     int     `json:"steps" validate:"min=0"`
	DistanceM float64 `json:"distance_m" validate:"min=0"`
	Calories  float64 `json:"calories" validate:"min=0"`
}
