package domain

import (
	"fmt"
	"sort"
	"time"
)

// DateKeyLayout is the calendar-day key format used by day buckets.
const DateKeyLayout = "2006-01-02"

// DateKey formats t as a local calendar-day key in loc.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateKeyLayout)
}

// MetricKind selects which history the resolver loads.
type MetricKind string

const (
	MetricSleep       MetricKind = "sleep"
	MetricHeartRate   MetricKind = "heart-rate"
	MetricHRV         MetricKind = "hrv"
	MetricSpO2        MetricKind = "spo2"
	MetricTemperature MetricKind = "temperature"
	MetricActivity    MetricKind = "activity"
)

// MetricKinds lists every supported kind.
var MetricKinds = []MetricKind{MetricSleep, MetricHeartRate, MetricHRV, MetricSpO2, MetricTemperature, MetricActivity}

// ParseMetricKind validates a metric name from a URL or config.
func ParseMetricKind(s string) (MetricKind, error) {
	for _, k := range MetricKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// DayRecord is the per-day aggregate stored in a DayBucket.
type DayRecord interface {
	Kind() MetricKind
	DateKey() string
}

// DayBucket maps a local calendar-day key to exactly one record.
type DayBucket struct {
	Metric MetricKind           `json:"metric"`
	Days   map[string]DayRecord `json:"days"`
}

// NewDayBucket creates an empty bucket for kind.
func NewDayBucket(kind MetricKind) DayBucket {
	return DayBucket{Metric: kind, Days: make(map[string]DayRecord)}
}

// Len is the number of days present.
func (b DayBucket) Len() int {
	return len(b.Days)
}

// Get returns the record for a day key.
func (b DayBucket) Get(dateKey string) (DayRecord, bool) {
	rec, ok := b.Days[dateKey]
	return rec, ok
}

// Keys returns day keys sorted most recent first.
func (b DayBucket) Keys() []string {
	keys := make([]string, 0, len(b.Days))
	for k := range b.Days {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// HistoryResponse is the API view of a DayBucket.
// @Description Day-keyed history for one metric; dates are most recent first.
type HistoryResponse struct {
	Metric MetricKind           `json:"metric" example:"sleep"`
	Dates  []string             `json:"dates"`
	Days   map[string]DayRecord `json:"days" swaggertype:"object"`
}

// ToResponse converts the bucket for the API.
func (b DayBucket) ToResponse() HistoryResponse {
	return HistoryResponse{Metric: b.Metric, Dates: b.Keys(), Days: b.Days}
}

// HistorySource tags where a resolved day came from.
type HistorySource string

const (
	SourceStore        HistorySource = "store"
	SourceLiveFallback HistorySource = "live_fallback"
	SourceNone         HistorySource = "none"
)

// DayResolution is a single resolved day with its provenance.
// @Description A day's record plus the source it was resolved from.
type DayResolution struct {
	Metric  MetricKind    `json:"metric" example:"sleep"`
	DateKey string        `json:"date" example:"2024-01-16"`
	Source  HistorySource `json:"source" example:"store"`
	Record  DayRecord     `json:"record,omitempty" swaggertype:"object"`
}

// HourlyPoint is an hour-of-day average.
type HourlyPoint struct {
	Hour      int     `json:"hour" example:"3"`
	HeartRate float64 `json:"heart_rate" example:"52.5"`
}

// DaySleep is the sleep record for one night, keyed by its local start date.
type DaySleep struct {
	Date              string         `json:"date"`
	Score             int            `json:"score"`
	TotalSleepMinutes int            `json:"total_sleep_minutes"`
	BedTime           *time.Time     `json:"bed_time,omitempty"`
	WakeTime          *time.Time     `json:"wake_time,omitempty"`
	DeepMinutes       int            `json:"deep_minutes"`
	LightMinutes      int            `json:"light_minutes"`
	REMMinutes        int            `json:"rem_minutes"`
	AwakeMinutes      int            `json:"awake_minutes"`
	Segments          []SleepSegment `json:"segments"`
	RestingHR         int            `json:"resting_hr"`
}

func (d DaySleep) Kind() MetricKind { return MetricSleep }
func (d DaySleep) DateKey() string  { return d.Date }

// Totals returns the stage minutes as floats.
func (d DaySleep) Totals() StageMinutes {
	return StageMinutes{
		Awake: float64(d.AwakeMinutes),
		Light: float64(d.LightMinutes),
		Deep:  float64(d.DeepMinutes),
		REM:   float64(d.REMMinutes),
	}
}

// DayHeartRate aggregates a day of heart-rate readings.
type DayHeartRate struct {
	Date         string        `json:"date"`
	HourlyPoints []HourlyPoint `json:"hourly_points"`
	RestingHR    int           `json:"resting_hr"`
	PeakHR       int           `json:"peak_hr"`
	AvgHR        int           `json:"avg_hr"`
	SampleCount  int           `json:"sample_count"`
}

func (d DayHeartRate) Kind() MetricKind { return MetricHeartRate }
func (d DayHeartRate) DateKey() string  { return d.Date }

// DayHRV is the most recent HRV measurement of a day.
type DayHRV struct {
	Date          string   `json:"date"`
	SDNN          *float64 `json:"sdnn"`
	RMSSD         *float64 `json:"rmssd"`
	PNN50         *float64 `json:"pnn50"`
	LF            *float64 `json:"lf"`
	HF            *float64 `json:"hf"`
	LFHFRatio     *float64 `json:"lf_hf_ratio"`
	StressLabel   string   `json:"stress_label"`
	RecoveryLabel string   `json:"recovery_label"`
}

func (d DayHRV) Kind() MetricKind { return MetricHRV }
func (d DayHRV) DateKey() string  { return d.Date }

// DaySpO2 aggregates a day of blood-oxygen readings.
type DaySpO2 struct {
	Date            string   `json:"date"`
	Readings        []Sample `json:"readings"`
	Avg             int      `json:"avg"`
	Min             float64  `json:"min"`
	Max             float64  `json:"max"`
	TimeBelowNormal int      `json:"time_below_normal"`
}

func (d DaySpO2) Kind() MetricKind { return MetricSpO2 }
func (d DaySpO2) DateKey() string  { return d.Date }

// DayTemperature aggregates a day of skin-temperature readings (Celsius).
type DayTemperature struct {
	Date     string   `json:"date"`
	Readings []Sample `json:"readings"`
	Avg      float64  `json:"avg"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Current  float64  `json:"current"`
}

func (d DayTemperature) Kind() MetricKind { return MetricTemperature }
func (d DayTemperature) DateKey() string  { return d.Date }

// DayActivity is a daily activity summary.
type DayActivity struct {
	Date          string  `json:"date"`
	Steps         int     `json:"steps"`
	DistanceM     float64 `json:"distance_m"`
	Calories      float64 `json:"calories"`
	SleepTotalMin *int    `json:"sleep_total_min"`
	HRAvg         *int    `json:"hr_avg"`
}

func (d DayActivity) Kind() MetricKind { return MetricActivity }
func (d DayActivity) DateKey() string  { return d.Date }
