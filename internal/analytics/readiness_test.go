package analytics

import (
	"testing"

	"github.com/blaisecz/ring-analytics/internal/domain"
)

func TestScoreReadiness(t *testing.T) {
	tests := []struct {
		name       string
		sleep      int
		restingHR  int
		steps      int
		wantTotal  int
		wantHR     int
		wantStrain int
		wantRec    domain.TrainingRecommendation
		wantNoData bool
	}{
		{
			name: "no data", sleep: 0, restingHR: 0, steps: 0,
			wantTotal: 0, wantHR: 50, wantStrain: 100, wantRec: domain.RecommendNoData, wantNoData: true,
		},
		{
			name: "typical day", sleep: 88, restingHR: 52, steps: 6400,
			wantTotal: 74, wantHR: 76, wantStrain: 36, wantRec: domain.RecommendModerate,
		},
		{
			name: "unknown resting hr is neutral", sleep: 80, restingHR: 0, steps: 0,
			wantTotal: 75, wantHR: 50, wantStrain: 100, wantRec: domain.RecommendModerate,
		},
		{
			name: "athlete fresh", sleep: 96, restingHR: 40, steps: 1000,
			wantTotal: 96, wantHR: 100, wantStrain: 90, wantRec: domain.RecommendHighIntensity,
		},
		{
			name: "elevated hr heavy load", sleep: 40, restingHR: 95, steps: 25000,
			wantTotal: 20, wantHR: 0, wantStrain: 0, wantRec: domain.RecommendRest,
		},
		{
			name: "resting hr without sleep is scored", sleep: 0, restingHR: 60, steps: 5000,
			wantTotal: 28, wantHR: 60, wantStrain: 50, wantRec: domain.RecommendRest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreReadiness(tt.sleep, tt.restingHR, tt.steps)
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", got.Total, tt.wantTotal)
			}
			if got.HRComponent != tt.wantHR {
				t.Errorf("HRComponent = %d, want %d", got.HRComponent, tt.wantHR)
			}
			if got.StrainComponent != tt.wantStrain {
				t.Errorf("StrainComponent = %d, want %d", got.StrainComponent, tt.wantStrain)
			}
			if got.Recommendation != tt.wantRec {
				t.Errorf("Recommendation = %s, want %s", got.Recommendation, tt.wantRec)
			}
			if got.NoData != tt.wantNoData {
				t.Errorf("NoData = %v, want %v", got.NoData, tt.wantNoData)
			}
		})
	}
}

func TestScoreReadiness_MonotonicInSleep(t *testing.T) {
	for _, rhr := range []int{0, 48, 60, 80} {
		prev := -1
		for sleep := 1; sleep <= 100; sleep++ {
			got := ScoreReadiness(sleep, rhr, 4000).Total
			if got < prev {
				t.Fatalf("rhr %d: total dropped from %d to %d at sleep %d", rhr, prev, got, sleep)
			}
			if got < 0 || got > 100 {
				t.Fatalf("total %d out of range", got)
			}
			prev = got
		}
	}
}

func TestScoreReadiness_MonotonicInRestingHR(t *testing.T) {
	prev := 101
	for rhr := 30; rhr <= 120; rhr++ {
		got := ScoreReadiness(70, rhr, 4000).Total
		if got > prev {
			t.Fatalf("total rose from %d to %d as resting hr rose to %d", prev, got, rhr)
		}
		prev = got
	}
}

func TestHRLabel(t *testing.T) {
	tests := map[int]string{0: "--", 50: "Excellent", 55: "Good", 64: "Good", 65: "Fair", 75: "Elevated"}
	for rhr, want := range tests {
		if got := HRLabel(rhr); got != want {
			t.Errorf("HRLabel(%d) = %q, want %q", rhr, got, want)
		}
	}
}

func TestSleepLabel(t *testing.T) {
	if got := SleepLabel(0); got != "--" {
		t.Errorf("SleepLabel(0) = %q, want --", got)
	}
	if got := SleepLabel(88); got != "Excellent" {
		t.Errorf("SleepLabel(88) = %q, want Excellent", got)
	}
}
