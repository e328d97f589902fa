package domain

import "time"

// SleepArchitecture describes timing, efficiency and stage proportions of a night.
// @Description Sleep architecture derived from a stage timeline.
type SleepArchitecture struct {
	SleepOnset        time.Time    `json:"sleep_onset"`
	WakeTime          time.Time    `json:"wake_time"`
	TimeInBedMinutes  float64      `json:"time_in_bed_minutes" example:"480"`
	TotalSleepMinutes float64      `json:"total_sleep_minutes" example:"450"`
	EfficiencyPct     float64      `json:"efficiency_pct" example:"93.8"`
	WASOMinutes       float64      `json:"waso_minutes" example:"30"`
	Stages            StageMinutes `json:"stages"`
	LightPct          float64      `json:"light_pct" example:"64.4"`
	DeepPct           float64      `json:"deep_pct" example:"20"`
	REMPct            float64      `json:"rem_pct" example:"15.6"`
	SleepCycles       int          `json:"sleep_cycles" example:"5"`
	CycleQuality      SleepQuality `json:"cycle_quality" example:"Good"`
	DeepRating        string       `json:"deep_vs_optimal" example:"Normal"`
	REMRating         string       `json:"rem_vs_optimal" example:"Low"`
	EfficiencyRating  string       `json:"efficiency_vs_optimal" example:"Excellent"`
}

// NightReport bundles everything the engine derives for one night.
// @Description Classifier output, agreement with the ring, scores and architecture for a night.
type NightReport struct {
	Date            string             `json:"date" example:"2024-01-16"`
	Source          HistorySource      `json:"source" example:"store"`
	Baseline        Baseline           `json:"baseline"`
	Classified      []ClassifiedStage  `json:"classified"`
	Reference       []SleepSegment     `json:"reference"`
	Agreement       AgreementResult    `json:"agreement"`
	DeviceScore     SleepScore         `json:"device_score"`
	ClassifiedScore SleepScore         `json:"classified_score"`
	Architecture    *SleepArchitecture `json:"architecture,omitempty"`
	SampleCount     int                `json:"sample_count" example:"96"`
	LowConfidence   bool               `json:"low_confidence" example:"false"`
}

// Baseline summarises a numeric series.
// @Description Mean, min, max and population standard deviation of a series.
type Baseline struct {
	Count  int     `json:"count" example:"96"`
	Mean   float64 `json:"mean" example:"56.2"`
	Min    float64 `json:"min" example:"47"`
	Max    float64 `json:"max" example:"78"`
	StdDev float64 `json:"std_dev" example:"5.1"`
}

// ReadinessReport is the readiness score for a date with the inputs used.
// @Description Readiness for a day with its inputs and sources.
type ReadinessReport struct {
	Date           string         `json:"date" example:"2024-01-16"`
	Score          ReadinessScore `json:"score"`
	SleepScore     int            `json:"sleep_score" example:"88"`
	RestingHR      int            `json:"resting_hr" example:"52"`
	Steps          int            `json:"steps" example:"6400"`
	SleepLabel     string         `json:"sleep_label" example:"Excellent"`
	HRLabel        string         `json:"hr_label" example:"Excellent"`
	SleepSource    HistorySource  `json:"sleep_source" example:"store"`
	HRSource       HistorySource  `json:"hr_source" example:"store"`
	ActivitySource HistorySource  `json:"activity_source" example:"live_fallback"`
}

// SleepScoreRequest is the body for the stateless sleep scorer. Negative
// values are clamped by the scorer rather than rejected.
type SleepScoreRequest struct {
	TotalMinutes int `json:"total_minutes" example:"480"`
	DeepMinutes  int `json:"deep_minutes" example:"90"`
	LightMinutes int `json:"light_minutes" example:"290"`
	REMMinutes   int `json:"rem_minutes" example:"70"`
	AwakeMinutes int `json:"awake_minutes" example:"30"`
}

// ReadinessRequest is the body for the stateless readiness scorer.
type ReadinessRequest struct {
	SleepScore int `json:"sleep_score" example:"88"`
	RestingHR  int `json:"resting_hr" example:"52"`
	StepsToday int `json:"steps_today" example:"6400"`
}

// ClassifyRequest is the body for the stateless classifier.
type ClassifyRequest struct {
	NightStart time.Time `json:"night_start" validate:"required"`
	NightEnd   time.Time `json:"night_end" validate:"required,gtfield=NightStart"`
	Samples    []Sample  `json:"samples"`
}

// ClassifyResponse is the stateless classifier's output.
// @Description Classified timeline with per-stage totals and the night's baseline.
type ClassifyResponse struct {
	Classified []ClassifiedStage `json:"classified"`
	Totals     StageMinutes      `json:"totals"`
	Baseline   Baseline          `json:"baseline"`
}

// AgreementRequest is the body for the stateless agreement analyzer.
type AgreementRequest struct {
	Classified []ClassifiedStage `json:"classified"`
	Reference  []SleepSegment    `json:"reference"`
}

// InsightsOutput is the structured narrative returned by the LLM.
// @Description LLM-generated, non-medical commentary on a night.
type InsightsOutput struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}

// InsightsContext is serialised into the LLM prompt.
type InsightsContext struct {
	Night     NightReport     `json:"night"`
	Readiness ReadinessReport `json:"readiness"`
}

// InsightsResponse is the response for the insights endpoint.
type InsightsResponse struct {
	Night     NightReport     `json:"night"`
	Readiness ReadinessReport `json:"readiness"`
	Insights  InsightsOutput  `json:"insights"`
	TraceID   string          `json:"trace_id,omitempty"`
}
