package analytics

import (
	"math"

	"github.com/blaisecz/ring-analytics/internal/domain"
)

const (
	readinessSleepWeight  = 0.50
	readinessHRWeight     = 0.30
	readinessStrainWeight = 0.20

	// neutralHRComponent is used when no resting heart rate is known.
	neutralHRComponent = 50
	dailyStepGoal      = 10000
)

// ScoreReadiness combines sleep score, resting heart rate and today's step
// count into a 0-100 readiness total. With neither sleep score nor resting
// HR the result is the explicit no-data state rather than a low score.
func ScoreReadiness(sleepScore, restingHR, stepsToday int) domain.ReadinessScore {
	sleep := clampInt(sleepScore, 0, 100)

	hr := neutralHRComponent
	if restingHR > 0 {
		hr = clampInt(roundInt(float64(90-restingHR)/50*100), 0, 100)
	}

	activity := min(100, roundInt(float64(max(stepsToday, 0))/dailyStepGoal*100))
	strain := 100 - activity

	result := domain.ReadinessScore{
		SleepComponent:  sleep,
		HRComponent:     hr,
		StrainComponent: strain,
	}

	if sleep == 0 && restingHR <= 0 {
		result.NoData = true
		result.Recommendation = domain.RecommendNoData
		return result
	}

	total := float64(sleep)*readinessSleepWeight + float64(hr)*readinessHRWeight + float64(strain)*readinessStrainWeight
	result.Total = clampInt(roundInt(total), 0, 100)
	result.Recommendation = Recommendation(result.Total)
	return result
}

// Recommendation maps a readiness total onto a training recommendation.
func Recommendation(total int) domain.TrainingRecommendation {
	switch {
	case total >= 80:
		return domain.RecommendHighIntensity
	case total >= 60:
		return domain.RecommendModerate
	default:
		return domain.RecommendRest
	}
}

// HRLabel describes a resting heart rate; "--" when unknown.
func HRLabel(restingHR int) string {
	switch {
	case restingHR <= 0:
		return "--"
	case restingHR < 55:
		return "Excellent"
	case restingHR < 65:
		return "Good"
	case restingHR < 75:
		return "Fair"
	default:
		return "Elevated"
	}
}

// SleepLabel describes a sleep score; "--" when there is none.
func SleepLabel(score int) string {
	if score <= 0 {
		return "--"
	}
	return string(QualityLabel(score))
}

func roundInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
