package domain

import (
	"strings"
	"time"
)

// SleepStage is a sleep-stage label shared by the device timeline and the
// heart-rate classifier.
// @Description Sleep stage: awake, light, deep, rem or unknown.
type SleepStage string

const (
	StageAwake   SleepStage = "awake"
	StageLight   SleepStage = "light"
	StageDeep    SleepStage = "deep"
	StageREM     SleepStage = "rem"
	StageUnknown SleepStage = "unknown"
)

// ScoredStages are the stages that carry duration totals in scores and
// agreement analysis. Unknown is never scored.
var ScoredStages = []SleepStage{StageAwake, StageLight, StageDeep, StageREM}

// ParseSleepStage maps free-form stage names (including the ring SDK's
// "sober" and "unweared") onto SleepStage.
func ParseSleepStage(s string) SleepStage {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "awake", "sober", "wake":
		return StageAwake
	case "light", "core":
		return StageLight
	case "deep":
		return StageDeep
	case "rem":
		return StageREM
	default:
		return StageUnknown
	}
}

// Sample is a single timestamped reading: heart rate in bpm or HRV SDNN in ms.
type Sample struct {
	Timestamp time.Time `json:"timestamp" example:"2024-01-16T02:15:00Z"`
	Value     float64   `json:"value" example:"54"`
}

// SleepSegment is one interval of a night's stage timeline.
// @Description A contiguous interval assigned to one sleep stage.
type SleepSegment struct {
	Stage     SleepStage `json:"stage" example:"deep"`
	StartTime time.Time  `json:"start_time" example:"2024-01-16T01:00:00Z"`
	EndTime   time.Time  `json:"end_time" example:"2024-01-16T01:45:00Z"`
}

// Duration is EndTime - StartTime, never negative.
func (s SleepSegment) Duration() time.Duration {
	d := s.EndTime.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// ClassifiedStage is a segment produced by the heart-rate classifier.
// @Description Classifier output interval with a heuristic confidence in [0,1].
type ClassifiedStage struct {
	SleepSegment
	Confidence float64 `json:"confidence" example:"0.82"`
}

// StageMinutes holds per-stage duration totals in minutes.
type StageMinutes struct {
	Awake float64 `json:"awake"`
	Light float64 `json:"light"`
	Deep  float64 `json:"deep"`
	REM   float64 `json:"rem"`
}

// Get returns the total for a stage. Unknown always reports 0.
func (m StageMinutes) Get(stage SleepStage) float64 {
	switch stage {
	case StageAwake:
		return m.Awake
	case StageLight:
		return m.Light
	case StageDeep:
		return m.Deep
	case StageREM:
		return m.REM
	}
	return 0
}

// Add accumulates minutes onto a stage total. Unknown is dropped.
func (m *StageMinutes) Add(stage SleepStage, minutes float64) {
	switch stage {
	case StageAwake:
		m.Awake += minutes
	case StageLight:
		m.Light += minutes
	case StageDeep:
		m.Deep += minutes
	case StageREM:
		m.REM += minutes
	}
}

// Asleep is light + deep + REM.
func (m StageMinutes) Asleep() float64 {
	return m.Light + m.Deep + m.REM
}

// Total is asleep + awake.
func (m StageMinutes) Total() float64 {
	return m.Asleep() + m.Awake
}

// TotalsFromSegments sums segment durations per stage.
func TotalsFromSegments(segments []SleepSegment) StageMinutes {
	var totals StageMinutes
	for _, seg := range segments {
		totals.Add(seg.Stage, seg.Duration().Minutes())
	}
	return totals
}

// TotalsFromClassified sums classified interval durations per stage.
func TotalsFromClassified(stages []ClassifiedStage) StageMinutes {
	var totals StageMinutes
	for _, st := range stages {
		totals.Add(st.Stage, st.Duration().Minutes())
	}
	return totals
}
