package analytics

import (
	"sort"

	"github.com/blaisecz/ring-analytics/internal/domain"
)

// Typical adult proportions of total sleep time, in percent.
const (
	optimalDeepLow  = 13.0
	optimalDeepHigh = 23.0
	optimalREMLow   = 20.0
	optimalREMHigh  = 25.0
	optimalLightLow = 50.0
	optimalLightHi  = 65.0

	sleepCycleMinutes = 100.0
)

// Ratings used in SleepArchitecture.
const (
	RatingLow    = "Low"
	RatingNormal = "Normal"
	RatingHigh   = "High"
)

// AnalyzeArchitecture derives time in bed, efficiency, WASO and cycle
// estimates from a stage timeline. Unknown segments are ignored. It returns
// nil when the timeline contains no scored time.
func AnalyzeArchitecture(segments []domain.SleepSegment) *domain.SleepArchitecture {
	scored := make([]domain.SleepSegment, 0, len(segments))
	for _, seg := range segments {
		if seg.Stage != domain.StageUnknown && seg.Duration() > 0 {
			scored = append(scored, seg)
		}
	}
	if len(scored) == 0 {
		return nil
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].StartTime.Before(scored[j].StartTime)
	})

	totals := domain.TotalsFromSegments(scored)
	onset := scored[0].StartTime
	wake := scored[len(scored)-1].EndTime
	for _, seg := range scored {
		if seg.EndTime.After(wake) {
			wake = seg.EndTime
		}
	}

	tib := wake.Sub(onset).Minutes()
	tst := totals.Asleep()

	arch := &domain.SleepArchitecture{
		SleepOnset:        onset,
		WakeTime:          wake,
		TimeInBedMinutes:  round1(tib),
		TotalSleepMinutes: round1(tst),
		WASOMinutes:       round1(wakeAfterSleepOnset(scored)),
		Stages:            roundMinutes(totals),
	}
	if tib > 0 {
		arch.EfficiencyPct = round1(clampFloat(tst/tib*100, 0, 100))
	}
	if tst > 0 {
		arch.LightPct = round1(totals.Light / tst * 100)
		arch.DeepPct = round1(totals.Deep / tst * 100)
		arch.REMPct = round1(totals.REM / tst * 100)
	}
	arch.SleepCycles = roundInt(tst / sleepCycleMinutes)
	arch.CycleQuality = cycleQuality(arch.DeepPct, arch.REMPct, arch.LightPct)
	arch.DeepRating = rate(arch.DeepPct, optimalDeepLow, optimalDeepHigh)
	arch.REMRating = rate(arch.REMPct, optimalREMLow, optimalREMHigh)
	arch.EfficiencyRating = efficiencyRating(arch.EfficiencyPct)
	return arch
}

// wakeAfterSleepOnset sums awake time between the first and last asleep
// segment.
func wakeAfterSleepOnset(sorted []domain.SleepSegment) float64 {
	first, last := -1, -1
	for i, seg := range sorted {
		if seg.Stage != domain.StageAwake {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0
	}
	var waso float64
	for _, seg := range sorted[first : last+1] {
		if seg.Stage == domain.StageAwake {
			waso += seg.Duration().Minutes()
		}
	}
	return waso
}

func cycleQuality(deepPct, remPct, lightPct float64) domain.SleepQuality {
	points := 0
	switch {
	case deepPct >= optimalDeepLow && deepPct <= optimalDeepHigh:
		points += 35
	case deepPct >= 8:
		points += 20
	}
	switch {
	case remPct >= optimalREMLow && remPct <= optimalREMHigh:
		points += 35
	case remPct >= 15:
		points += 20
	}
	switch {
	case lightPct >= optimalLightLow && lightPct <= optimalLightHi:
		points += 30
	case lightPct >= 40:
		points += 15
	}
	return QualityLabel(points)
}

func rate(v, lo, hi float64) string {
	switch {
	case v < lo:
		return RatingLow
	case v > hi:
		return RatingHigh
	default:
		return RatingNormal
	}
}

func efficiencyRating(pct float64) string {
	switch {
	case pct >= 90:
		return "Excellent"
	case pct >= 85:
		return "Good"
	case pct >= 75:
		return "Fair"
	default:
		return "Poor"
	}
}
