package analytics

import "github.com/blaisecz/ring-analytics/internal/domain"

// Component names and maxima of the sleep score.
const (
	ComponentDuration = "duration"
	ComponentDeep     = "deep"
	ComponentAwake    = "awake"
	ComponentREM      = "rem"

	maxDurationPoints = 35
	maxDeepPoints     = 25
	maxAwakePoints    = 25
	maxREMPoints      = 15
)

// ScoreSleep scores a night from stage minutes. Percentages are of
// totalMinutes including awake time; light minutes only contribute through
// the total. Negative inputs are treated as zero.
func ScoreSleep(totalMinutes, deepMinutes, lightMinutes, remMinutes, awakeMinutes int) domain.SleepScore {
	total := max(totalMinutes, 0)
	deep := max(deepMinutes, 0)
	rem := max(remMinutes, 0)
	awake := max(awakeMinutes, 0)

	var deepPct, awakePct, remPct float64
	known := total > 0
	if known {
		deepPct = pct(deep, total)
		awakePct = pct(awake, total)
		remPct = pct(rem, total)
	}

	breakdown := domain.NewScoreBreakdown(
		domain.ScoreComponent{Name: ComponentDuration, Points: durationPoints(total), MaxPoints: maxDurationPoints},
		domain.ScoreComponent{Name: ComponentDeep, Points: deepPoints(deepPct, known), MaxPoints: maxDeepPoints},
		domain.ScoreComponent{Name: ComponentAwake, Points: awakePoints(awakePct, known), MaxPoints: maxAwakePoints},
		domain.ScoreComponent{Name: ComponentREM, Points: remPoints(remPct, known), MaxPoints: maxREMPoints},
	)
	return domain.SleepScore{ScoreBreakdown: breakdown, Quality: QualityLabel(breakdown.Total)}
}

// ScoreSleepTotals scores from StageMinutes, using asleep + awake as total.
func ScoreSleepTotals(m domain.StageMinutes) domain.SleepScore {
	return ScoreSleep(
		roundInt(m.Total()),
		roundInt(m.Deep),
		roundInt(m.Light),
		roundInt(m.REM),
		roundInt(m.Awake),
	)
}

// QualityLabel maps a total score onto its label.
func QualityLabel(total int) domain.SleepQuality {
	switch {
	case total >= 85:
		return domain.SleepQualityExcellent
	case total >= 70:
		return domain.SleepQualityGood
	case total >= 50:
		return domain.SleepQualityFair
	default:
		return domain.SleepQualityPoor
	}
}

func durationPoints(minutes int) int {
	switch {
	case minutes > 720:
		return 5
	case minutes > 600:
		return 15
	case minutes >= 420 && minutes <= 540:
		return 35
	case minutes >= 360:
		return 25
	case minutes >= 300:
		return 15
	default:
		return 5
	}
}

func deepPoints(p float64, known bool) int {
	switch {
	case !known:
		return 5
	case p >= 15 && p <= 25:
		return 25
	case (p >= 10 && p < 15) || (p > 25 && p <= 30):
		return 18
	case p >= 5 && p < 10:
		return 10
	default:
		return 5
	}
}

func awakePoints(p float64, known bool) int {
	switch {
	case !known:
		return 5
	case p <= 5:
		return 25
	case p <= 10:
		return 20
	case p <= 15:
		return 15
	case p <= 20:
		return 10
	default:
		return 5
	}
}

func remPoints(p float64, known bool) int {
	switch {
	case !known:
		return 5
	case p >= 20 && p <= 25:
		return 15
	case (p >= 15 && p < 20) || (p > 25 && p <= 30):
		return 12
	case p >= 10:
		return 8
	default:
		return 5
	}
}

func pct(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
