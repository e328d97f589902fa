package service

import (
	"math"
	"sort"
	"time"

	"github.com/blaisecz/ring-analytics/internal/analytics"
	"github.com/blaisecz/ring-analytics/internal/domain"
)

// NormalSpO2 is the saturation below which a reading counts as below normal.
const NormalSpO2 = 95.0

// latestPerDay groups rows by day key and keeps the row with the greatest
// timestamp in each group. On equal timestamps the later row wins.
func latestPerDay[T any](rows []T, dayKey func(T) string, at func(T) time.Time) map[string]T {
	groups := make(map[string][]T)
	for _, row := range rows {
		key := dayKey(row)
		groups[key] = append(groups[key], row)
	}

	latest := make(map[string]T, len(groups))
	for key, group := range groups {
		best := group[0]
		for _, row := range group[1:] {
			if !at(row).Before(at(best)) {
				best = row
			}
		}
		latest[key] = best
	}
	return latest
}

// groupByDay groups rows by day key, preserving input order within a day.
func groupByDay[T any](rows []T, dayKey func(T) string) map[string][]T {
	groups := make(map[string][]T)
	for _, row := range rows {
		key := dayKey(row)
		groups[key] = append(groups[key], row)
	}
	return groups
}

func sleepBucket(sessions []domain.SleepSession, loc *time.Location) domain.DayBucket {
	bucket := domain.NewDayBucket(domain.MetricSleep)
	latest := latestPerDay(sessions,
		func(s domain.SleepSession) string { return domain.DateKey(s.StartTime, loc) },
		func(s domain.SleepSession) time.Time { return s.StartTime },
	)
	for key, session := range latest {
		bucket.Days[key] = sleepDay(key, session)
	}
	return bucket
}

func sleepDay(dateKey string, s domain.SleepSession) domain.DaySleep {
	detail := s.Detail()
	segments := s.Segments()
	bed, wake := s.StartTime, s.EndTime

	day := domain.DaySleep{
		Date:         dateKey,
		Score:        s.SleepScore,
		BedTime:      &bed,
		WakeTime:     &wake,
		DeepMinutes:  s.DeepMin,
		LightMinutes: s.LightMin,
		REMMinutes:   s.RemMin,
		AwakeMinutes: s.AwakeMin,
		Segments:     segments,
		RestingHR:    detail.RestingHR,
	}
	if day.DeepMinutes+day.LightMinutes+day.REMMinutes+day.AwakeMinutes == 0 && len(segments) > 0 {
		fillStageMinutes(&day, domain.TotalsFromSegments(segments))
	}
	day.TotalSleepMinutes = day.DeepMinutes + day.LightMinutes + day.REMMinutes
	return day
}

func fillStageMinutes(day *domain.DaySleep, totals domain.StageMinutes) {
	day.DeepMinutes = int(math.Round(totals.Deep))
	day.LightMinutes = int(math.Round(totals.Light))
	day.REMMinutes = int(math.Round(totals.REM))
	day.AwakeMinutes = int(math.Round(totals.Awake))
}

func heartRateBucket(rows []domain.HeartRateReading, loc *time.Location) domain.DayBucket {
	bucket := domain.NewDayBucket(domain.MetricHeartRate)
	groups := groupByDay(rows, func(r domain.HeartRateReading) string { return domain.DateKey(r.RecordedAt, loc) })

	for key, group := range groups {
		samples := make([]domain.Sample, 0, len(group))
		for _, r := range group {
			samples = append(samples, domain.Sample{Timestamp: r.RecordedAt, Value: float64(r.HeartRate)})
		}
		if day, ok := heartRateDay(key, samples, loc); ok {
			bucket.Days[key] = day
		}
	}
	return bucket
}

// heartRateDay aggregates one day of samples. Days without a positive
// reading yield false.
func heartRateDay(dateKey string, samples []domain.Sample, loc *time.Location) (domain.DayHeartRate, bool) {
	hourly := make(map[int][]float64)
	valid := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Value <= 0 {
			continue
		}
		valid = append(valid, s.Value)
		hour := s.Timestamp.In(loc).Hour()
		hourly[hour] = append(hourly[hour], s.Value)
	}
	if len(valid) == 0 {
		return domain.DayHeartRate{}, false
	}

	points := make([]domain.HourlyPoint, 0, len(hourly))
	for hour, values := range hourly {
		points = append(points, domain.HourlyPoint{
			Hour:      hour,
			HeartRate: math.Round(analytics.ComputeBaseline(values).Mean*10) / 10,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Hour < points[j].Hour })

	stats := analytics.ComputeBaseline(valid)
	return domain.DayHeartRate{
		Date:         dateKey,
		HourlyPoints: points,
		RestingHR:    int(stats.Min),
		PeakHR:       int(stats.Max),
		AvgHR:        int(math.Round(stats.Mean)),
		SampleCount:  len(valid),
	}, true
}

func hrvBucket(rows []domain.HRVReading, loc *time.Location) domain.DayBucket {
	bucket := domain.NewDayBucket(domain.MetricHRV)
	latest := latestPerDay(rows,
		func(r domain.HRVReading) string { return domain.DateKey(r.RecordedAt, loc) },
		func(r domain.HRVReading) time.Time { return r.RecordedAt },
	)
	for key, r := range latest {
		day := domain.DayHRV{
			Date:      key,
			SDNN:      r.SDNN,
			RMSSD:     r.RMSSD,
			PNN50:     r.PNN50,
			LF:        r.LF,
			HF:        r.HF,
			LFHFRatio: r.LFHFRatio,
		}
		day.StressLabel, day.RecoveryLabel = HRVLabels(r.SDNN)
		bucket.Days[key] = day
	}
	return bucket
}

// HRVLabels derives stress and recovery labels from SDNN in ms.
func HRVLabels(sdnn *float64) (stress, recovery string) {
	switch {
	case sdnn == nil:
		return "--", "--"
	case *sdnn >= 50:
		return "Low", "Optimal"
	case *sdnn >= 30:
		return "Moderate", "Fair"
	default:
		return "High", "Poor"
	}
}

func spo2Bucket(rows []domain.SpO2Reading, loc *time.Location) domain.DayBucket {
	bucket := domain.NewDayBucket(domain.MetricSpO2)
	groups := groupByDay(rows, func(r domain.SpO2Reading) string { return domain.DateKey(r.RecordedAt, loc) })
	for key, group := range groups {
		samples := make([]domain.Sample, 0, len(group))
		for _, r := range group {
			samples = append(samples, domain.Sample{Timestamp: r.RecordedAt, Value: r.SpO2})
		}
		if day, ok := spo2Day(key, samples); ok {
			bucket.Days[key] = day
		}
	}
	return bucket
}

func spo2Day(dateKey string, samples []domain.Sample) (domain.DaySpO2, bool) {
	readings := validSamples(samples)
	if len(readings) == 0 {
		return domain.DaySpO2{}, false
	}

	below := 0
	for _, s := range readings {
		if s.Value < NormalSpO2 {
			below++
		}
	}
	stats := analytics.ComputeBaseline(analytics.SampleValues(readings))
	return domain.DaySpO2{
		Date:            dateKey,
		Readings:        readings,
		Avg:             int(math.Round(stats.Mean)),
		Min:             stats.Min,
		Max:             stats.Max,
		TimeBelowNormal: below,
	}, true
}

func temperatureBucket(rows []domain.TemperatureReading, loc *time.Location) domain.DayBucket {
	bucket := domain.NewDayBucket(domain.MetricTemperature)
	groups := groupByDay(rows, func(r domain.TemperatureReading) string { return domain.DateKey(r.RecordedAt, loc) })
	for key, group := range groups {
		samples := make([]domain.Sample, 0, len(group))
		for _, r := range group {
			samples = append(samples, domain.Sample{Timestamp: r.RecordedAt, Value: r.TemperatureC})
		}
		if day, ok := temperatureDay(key, samples); ok {
			bucket.Days[key] = day
		}
	}
	return bucket
}

func temperatureDay(dateKey string, samples []domain.Sample) (domain.DayTemperature, bool) {
	readings := validSamples(samples)
	if len(readings) == 0 {
		return domain.DayTemperature{}, false
	}

	stats := analytics.ComputeBaseline(analytics.SampleValues(readings))
	return domain.DayTemperature{
		Date:     dateKey,
		Readings: readings,
		Avg:      math.Round(stats.Mean*10) / 10,
		Min:      stats.Min,
		Max:      stats.Max,
		Current:  readings[len(readings)-1].Value,
	}, true
}

func activityBucket(rows []domain.DailySummary) domain.DayBucket {
	bucket := domain.NewDayBucket(domain.MetricActivity)
	latest := latestPerDay(rows,
		func(r domain.DailySummary) string { return r.DateKey() },
		func(r domain.DailySummary) time.Time { return r.UpdatedAt },
	)
	for key, r := range latest {
		bucket.Days[key] = domain.DayActivity{
			Date:          key,
			Steps:         r.TotalSteps,
			DistanceM:     r.TotalDistanceM,
			Calories:      r.TotalCalories,
			SleepTotalMin: r.SleepTotalMin,
			HRAvg:         r.HRAvg,
		}
	}
	return bucket
}

// validSamples drops non-positive readings and sorts by time.
func validSamples(samples []domain.Sample) []domain.Sample {
	out := make([]domain.Sample, 0, len(samples))
	for _, s := range samples {
		if s.Value > 0 {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}
