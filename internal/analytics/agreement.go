package analytics

import (
	"fmt"
	"math"

	"github.com/blaisecz/ring-analytics/internal/domain"
)

// NoteThreshold is the per-stage agreement at or below which Compare
// explains the disagreement.
const NoteThreshold = 80.0

// StageAgreement is 100 * (1 - |classified-reference| / max(reference, 1)),
// clamped to [0,100].
func StageAgreement(classified, reference float64) float64 {
	return clampFloat(100*(1-math.Abs(classified-reference)/math.Max(reference, 1)), 0, 100)
}

// Compare measures how closely the classified timeline matches the device
// reference. Overall agreement weights each stage by its reference duration,
// falling back to a plain mean when the reference is empty. Unknown time is
// ignored on both sides.
func Compare(classified []domain.ClassifiedStage, reference []domain.SleepSegment) domain.AgreementResult {
	return CompareTotals(domain.TotalsFromClassified(classified), domain.TotalsFromSegments(reference))
}

// CompareTotals is Compare on precomputed per-stage minutes.
func CompareTotals(classified, reference domain.StageMinutes) domain.AgreementResult {
	perStage := make(map[domain.SleepStage]float64, len(domain.ScoredStages))
	raw := make(map[domain.SleepStage]float64, len(domain.ScoredStages))

	var weighted, weights, plain float64
	for _, stage := range domain.ScoredStages {
		agreement := StageAgreement(classified.Get(stage), reference.Get(stage))
		raw[stage] = agreement
		perStage[stage] = round1(agreement)

		weighted += agreement * reference.Get(stage)
		weights += reference.Get(stage)
		plain += agreement
	}

	overall := plain / float64(len(domain.ScoredStages))
	if weights > 0 {
		overall = weighted / weights
	}
	overall = clampFloat(overall, 0, 100)

	return domain.AgreementResult{
		OverallMatch:      round1(overall),
		PerStage:          perStage,
		ClassifiedMinutes: roundMinutes(classified),
		ReferenceMinutes:  roundMinutes(reference),
		Notes:             agreementNotes(overall, raw, classified, reference),
	}
}

// Notes compare unrounded agreements against NoteThreshold.
func agreementNotes(overall float64, perStage map[domain.SleepStage]float64, classified, reference domain.StageMinutes) []string {
	notes := []string{}

	disagrees := false
	for _, stage := range domain.ScoredStages {
		if perStage[stage] <= NoteThreshold {
			disagrees = true
			break
		}
	}
	if !disagrees {
		return notes
	}

	switch {
	case overall >= 80:
		notes = append(notes, "High overall agreement with ring classification")
	case overall >= 60:
		notes = append(notes, "Moderate agreement; the ring also uses movement and temperature data")
	default:
		notes = append(notes, "Low agreement; the ring has accelerometer and temperature sensors the heart-rate classifier lacks")
	}

	for _, stage := range domain.ScoredStages {
		if perStage[stage] > NoteThreshold {
			continue
		}
		c, r := classified.Get(stage), reference.Get(stage)
		switch {
		case c < r/2:
			notes = append(notes, fmt.Sprintf("Custom analysis detected less %s than ring", stageNoun(stage)))
		case c > 2*r:
			notes = append(notes, fmt.Sprintf("Custom analysis detected more %s than ring", stageNoun(stage)))
		default:
			notes = append(notes, fmt.Sprintf("%s differs from ring by %.0f min", capitalize(stageNoun(stage)), math.Abs(c-r)))
		}
	}
	return notes
}

func stageNoun(stage domain.SleepStage) string {
	switch stage {
	case domain.StageAwake:
		return "awake time"
	case domain.StageLight:
		return "light sleep"
	case domain.StageDeep:
		return "deep sleep"
	case domain.StageREM:
		return "REM sleep"
	}
	return string(stage)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func roundMinutes(m domain.StageMinutes) domain.StageMinutes {
	return domain.StageMinutes{
		Awake: round1(m.Awake),
		Light: round1(m.Light),
		Deep:  round1(m.Deep),
		REM:   round1(m.REM),
	}
}
