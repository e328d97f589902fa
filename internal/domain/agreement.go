package domain

// AgreementResult compares a classified timeline with the device reference.
// @Description Duration-weighted agreement between classifier and ring.
type AgreementResult struct {
	// Overall match in percent (0-100)
	OverallMatch float64 `json:"overall_match" example:"76.4"`
	// Per-stage agreement in percent (0-100)
	PerStage map[SleepStage]float64 `json:"per_stage"`
	// Classified per-stage minutes
	ClassifiedMinutes StageMinutes `json:"classified_minutes"`
	// Reference per-stage minutes
	ReferenceMinutes StageMinutes `json:"reference_minutes"`
	Notes            []string     `json:"notes"`
}
