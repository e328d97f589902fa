package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/ring-analytics/internal/domain"
)

type stageSpan struct {
	stage   domain.SleepStage
	minutes int
}

func timeline(start time.Time, spans ...stageSpan) []domain.SleepSegment {
	out := make([]domain.SleepSegment, 0, len(spans))
	cursor := start
	for _, s := range spans {
		end := cursor.Add(time.Duration(s.minutes) * time.Minute)
		out = append(out, domain.SleepSegment{Stage: s.stage, StartTime: cursor, EndTime: end})
		cursor = end
	}
	return out
}

func classifiedTimeline(start time.Time, spans ...stageSpan) []domain.ClassifiedStage {
	segs := timeline(start, spans...)
	out := make([]domain.ClassifiedStage, len(segs))
	for i, s := range segs {
		out[i] = domain.ClassifiedStage{SleepSegment: s, Confidence: 0.8}
	}
	return out
}

func TestCompare_LessDeepThanReference(t *testing.T) {
	reference := timeline(night,
		stageSpan{domain.StageLight, 200},
		stageSpan{domain.StageDeep, 100},
		stageSpan{domain.StageREM, 80},
		stageSpan{domain.StageAwake, 20},
	)
	classified := classifiedTimeline(night,
		stageSpan{domain.StageLight, 200},
		stageSpan{domain.StageDeep, 40},
		stageSpan{domain.StageUnknown, 60},
		stageSpan{domain.StageREM, 80},
		stageSpan{domain.StageAwake, 20},
	)

	result := Compare(classified, reference)

	if got := result.PerStage[domain.StageDeep]; got != 40 {
		t.Errorf("deep agreement = %v, want 40", got)
	}
	for _, stage := range []domain.SleepStage{domain.StageLight, domain.StageREM, domain.StageAwake} {
		if got := result.PerStage[stage]; got != 100 {
			t.Errorf("%s agreement = %v, want 100", stage, got)
		}
	}
	// (40*100 + 100*200 + 100*80 + 100*20) / 400
	if result.OverallMatch != 85 {
		t.Errorf("OverallMatch = %v, want 85", result.OverallMatch)
	}

	found := false
	for _, n := range result.Notes {
		if strings.Contains(n, "less deep sleep than ring") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing deep sleep note in %v", result.Notes)
	}
}

func TestCompare_MoreDeepThanReference(t *testing.T) {
	reference := timeline(night, stageSpan{domain.StageLight, 300}, stageSpan{domain.StageDeep, 30})
	classified := classifiedTimeline(night, stageSpan{domain.StageLight, 300}, stageSpan{domain.StageDeep, 90})

	result := Compare(classified, reference)

	found := false
	for _, n := range result.Notes {
		if strings.Contains(n, "more deep sleep than ring") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing deep sleep note in %v", result.Notes)
	}
}

func TestCompare_NoNotesWhenAllAgree(t *testing.T) {
	reference := timeline(night,
		stageSpan{domain.StageLight, 240},
		stageSpan{domain.StageDeep, 90},
		stageSpan{domain.StageREM, 90},
		stageSpan{domain.StageAwake, 30},
	)
	classified := classifiedTimeline(night,
		stageSpan{domain.StageLight, 230},
		stageSpan{domain.StageDeep, 95},
		stageSpan{domain.StageREM, 85},
		stageSpan{domain.StageAwake, 28},
	)

	result := Compare(classified, reference)

	if len(result.Notes) != 0 {
		t.Errorf("expected no notes, got %v", result.Notes)
	}
	if result.OverallMatch < 90 || result.OverallMatch > 100 {
		t.Errorf("OverallMatch = %v, want high agreement", result.OverallMatch)
	}
}

func TestCompareTotals_NoteThresholdUsesUnroundedAgreement(t *testing.T) {
	reference := domain.StageMinutes{Awake: 40, Light: 240, Deep: 90, REM: 90}

	tests := []struct {
		name      string
		awake     float64
		wantNotes bool
	}{
		{"just above threshold", 40 * (1 - 0.1999), false},
		{"just below threshold", 40 * (1 - 0.2001), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := reference
			classified.Awake = tt.awake

			result := CompareTotals(classified, reference)

			if got := result.PerStage[domain.StageAwake]; got != 80 {
				t.Errorf("awake agreement = %v, want 80 after rounding", got)
			}
			if gotNotes := len(result.Notes) > 0; gotNotes != tt.wantNotes {
				t.Errorf("notes = %v, want notes: %v", result.Notes, tt.wantNotes)
			}
		})
	}
}

func TestCompare_EmptyReferenceUsesUnweightedMean(t *testing.T) {
	classified := classifiedTimeline(night, stageSpan{domain.StageLight, 60})

	result := Compare(classified, nil)

	if got := result.PerStage[domain.StageLight]; got != 0 {
		t.Errorf("light agreement = %v, want 0", got)
	}
	// three empty stages agree fully, light not at all
	if result.OverallMatch != 75 {
		t.Errorf("OverallMatch = %v, want 75", result.OverallMatch)
	}
}

func TestCompare_Bounds(t *testing.T) {
	spans := [][]stageSpan{
		{{domain.StageDeep, 0}},
		{{domain.StageDeep, 500}, {domain.StageAwake, 1}},
		{{domain.StageLight, 1}, {domain.StageREM, 2}},
		{{domain.StageUnknown, 480}},
	}
	for i, c := range spans {
		for j, r := range spans {
			result := Compare(classifiedTimeline(night, c...), timeline(night, r...))
			if result.OverallMatch < 0 || result.OverallMatch > 100 {
				t.Errorf("case %d/%d OverallMatch = %v out of range", i, j, result.OverallMatch)
			}
			for stage, v := range result.PerStage {
				if v < 0 || v > 100 {
					t.Errorf("case %d/%d %s agreement = %v out of range", i, j, stage, v)
				}
			}
		}
	}
}

func TestStageAgreement(t *testing.T) {
	tests := []struct {
		classified, reference, want float64
	}{
		{40, 100, 40},
		{100, 100, 100},
		{300, 100, 0},
		{0, 0, 100},
		{0.5, 0, 50},
	}
	for _, tt := range tests {
		if got := StageAgreement(tt.classified, tt.reference); got != tt.want {
			t.Errorf("StageAgreement(%v, %v) = %v, want %v", tt.classified, tt.reference, got, tt.want)
		}
	}
}
