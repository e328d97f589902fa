package analytics

import (
	"sort"
	"time"

	"github.com/blaisecz/ring-analytics/internal/domain"
)

const (
	// MinStageConfidence and MaxStageConfidence bound every classified
	// interval; the classifier is a heuristic and never claims certainty.
	MinStageConfidence = 0.3
	MaxStageConfidence = 0.95
)

// ClassifierConfig holds the heart-rate thresholds used to label samples.
// Offsets are in bpm relative to the night's mean heart rate.
type ClassifierConfig struct {
	DeepDropBPM       float64
	LightDropBPM      float64
	REMRiseBPM        float64
	AwakeRiseBPM      float64
	REMVariabilityBPM float64
	// VariabilityWindow is the number of trailing samples (current included)
	// used for local variability.
	VariabilityWindow int
	// MinInterval is the shortest interval kept; shorter ones fold into the
	// preceding interval.
	MinInterval time.Duration
	// SampleSpan is the longest stretch a single sample may cover. Longer
	// gaps between samples become Unknown.
	SampleSpan time.Duration
}

// DefaultClassifierConfig returns the stock thresholds.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		DeepDropBPM:       10,
		LightDropBPM:      3,
		REMRiseBPM:        8,
		AwakeRiseBPM:      15,
		REMVariabilityBPM: 3,
		VariabilityWindow: 6,
		MinInterval:       3 * time.Minute,
		SampleSpan:        10 * time.Minute,
	}
}

// Classifier labels overnight heart-rate samples with sleep stages.
type Classifier struct {
	cfg ClassifierConfig
}

// NewClassifier returns a classifier; zero fields in cfg take their defaults.
func NewClassifier(cfg ClassifierConfig) *Classifier {
	def := DefaultClassifierConfig()
	if cfg.DeepDropBPM <= 0 {
		cfg.DeepDropBPM = def.DeepDropBPM
	}
	if cfg.LightDropBPM <= 0 {
		cfg.LightDropBPM = def.LightDropBPM
	}
	if cfg.REMRiseBPM <= 0 {
		cfg.REMRiseBPM = def.REMRiseBPM
	}
	if cfg.AwakeRiseBPM <= 0 {
		cfg.AwakeRiseBPM = def.AwakeRiseBPM
	}
	if cfg.REMVariabilityBPM <= 0 {
		cfg.REMVariabilityBPM = def.REMVariabilityBPM
	}
	if cfg.VariabilityWindow <= 0 {
		cfg.VariabilityWindow = def.VariabilityWindow
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = def.MinInterval
	}
	if cfg.SampleSpan <= 0 {
		cfg.SampleSpan = def.SampleSpan
	}
	return &Classifier{cfg: cfg}
}

// Config returns the effective thresholds.
func (c *Classifier) Config() ClassifierConfig {
	return c.cfg
}

// ClassifySample labels one reading against the night's baseline.
func (c *Classifier) ClassifySample(value, baseline, localVariability float64) domain.SleepStage {
	switch {
	case value <= baseline-c.cfg.DeepDropBPM:
		return domain.StageDeep
	case value <= baseline-c.cfg.LightDropBPM:
		return domain.StageLight
	case value > baseline+c.cfg.REMRiseBPM && localVariability >= c.cfg.REMVariabilityBPM:
		return domain.StageREM
	case value > baseline+c.cfg.AwakeRiseBPM:
		return domain.StageAwake
	default:
		return domain.StageLight
	}
}

// StageConfidence is 1 - variability/baseline clamped to
// [MinStageConfidence, MaxStageConfidence].
func StageConfidence(intervalVariability, baseline float64) float64 {
	if baseline <= 0 {
		return MinStageConfidence
	}
	return clampFloat(1-intervalVariability/baseline, MinStageConfidence, MaxStageConfidence)
}

type interval struct {
	stage  domain.SleepStage
	start  time.Time
	end    time.Time
	values []float64
}

func (iv interval) duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Classify returns stages covering [nightStart, nightEnd] with no gaps or
// overlaps. Time without samples is Unknown. An empty or inverted range
// yields nil.
func (c *Classifier) Classify(samples []domain.Sample, nightStart, nightEnd time.Time) []domain.ClassifiedStage {
	if !nightEnd.After(nightStart) {
		return nil
	}

	inRange := samplesInRange(samples, nightStart, nightEnd)
	baseline := ComputeBaseline(SampleValues(inRange))

	if len(inRange) == 0 || baseline.Mean <= 0 {
		return []domain.ClassifiedStage{{
			SleepSegment: domain.SleepSegment{Stage: domain.StageUnknown, StartTime: nightStart, EndTime: nightEnd},
		}}
	}

	intervals := c.sampleIntervals(inRange, baseline.Mean, nightStart, nightEnd)
	intervals = mergeAdjacent(intervals)
	intervals = c.absorbShort(intervals)

	out := make([]domain.ClassifiedStage, 0, len(intervals))
	for _, iv := range intervals {
		stage := domain.ClassifiedStage{
			SleepSegment: domain.SleepSegment{Stage: iv.stage, StartTime: iv.start, EndTime: iv.end},
		}
		if iv.stage != domain.StageUnknown {
			stage.Confidence = StageConfidence(ComputeBaseline(iv.values).StdDev, baseline.Mean)
		}
		out = append(out, stage)
	}
	return out
}

// NightBaseline is the baseline Classify uses: valid samples in
// [nightStart, nightEnd) only.
func NightBaseline(samples []domain.Sample, nightStart, nightEnd time.Time) domain.Baseline {
	return ComputeBaseline(SampleValues(samplesInRange(samples, nightStart, nightEnd)))
}

// samplesInRange keeps valid samples in [start, end), sorted by time.
func samplesInRange(samples []domain.Sample, start, end time.Time) []domain.Sample {
	out := make([]domain.Sample, 0, len(samples))
	for _, s := range samples {
		if s.Value <= 0 || s.Timestamp.Before(start) || !s.Timestamp.Before(end) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// sampleIntervals assigns each sample the time until the next sample (capped
// at SampleSpan) and fills uncovered time with Unknown.
func (c *Classifier) sampleIntervals(samples []domain.Sample, baseline float64, start, end time.Time) []interval {
	intervals := make([]interval, 0, len(samples)+2)
	cursor := start

	for i, s := range samples {
		if s.Timestamp.After(cursor) {
			intervals = append(intervals, interval{stage: domain.StageUnknown, start: cursor, end: s.Timestamp})
			cursor = s.Timestamp
		}

		ivEnd := s.Timestamp.Add(c.cfg.SampleSpan)
		if i+1 < len(samples) && samples[i+1].Timestamp.Before(ivEnd) {
			ivEnd = samples[i+1].Timestamp
		}
		if ivEnd.After(end) {
			ivEnd = end
		}
		if !ivEnd.After(cursor) {
			continue
		}

		local := c.localVariability(samples, i)
		intervals = append(intervals, interval{
			stage:  c.ClassifySample(s.Value, baseline, local),
			start:  cursor,
			end:    ivEnd,
			values: []float64{s.Value},
		})
		cursor = ivEnd
	}

	if end.After(cursor) {
		intervals = append(intervals, interval{stage: domain.StageUnknown, start: cursor, end: end})
	}
	return intervals
}

func (c *Classifier) localVariability(samples []domain.Sample, i int) float64 {
	from := i - c.cfg.VariabilityWindow + 1
	if from < 0 {
		from = 0
	}
	window := make([]float64, 0, i-from+1)
	for _, s := range samples[from : i+1] {
		window = append(window, s.Value)
	}
	return ComputeBaseline(window).StdDev
}

func mergeAdjacent(intervals []interval) []interval {
	if len(intervals) == 0 {
		return intervals
	}
	merged := []interval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if last.stage == iv.stage {
			last.end = iv.end
			last.values = append(last.values, iv.values...)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// absorbShort folds intervals shorter than MinInterval into the preceding
// interval (the following one when there is none), re-merging equal
// neighbours after each fold.
func (c *Classifier) absorbShort(intervals []interval) []interval {
	for len(intervals) > 1 {
		idx := -1
		for i, iv := range intervals {
			if iv.duration() < c.cfg.MinInterval {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}

		short := intervals[idx]
		if idx > 0 {
			prev := &intervals[idx-1]
			prev.end = short.end
			prev.values = append(prev.values, short.values...)
		} else {
			next := &intervals[1]
			next.start = short.start
			next.values = append(append([]float64{}, short.values...), next.values...)
		}
		intervals = append(intervals[:idx], intervals[idx+1:]...)
		intervals = mergeAdjacent(intervals)
	}
	return intervals
}
