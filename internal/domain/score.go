package domain

// ScoreComponent is one auditable line of a composite score.
type ScoreComponent struct {
	Name      string `json:"name" example:"duration"`
	Points    int    `json:"points" example:"35"`
	MaxPoints int    `json:"max_points" example:"35"`
}

// ScoreBreakdown is a 0-100 total with the components it was built from.
// @Description Composite score where total equals the sum of component points.
type ScoreBreakdown struct {
	Total      int              `json:"total" example:"88"`
	Components []ScoreComponent `json:"components"`
}

// NewScoreBreakdown bounds every component to [0, MaxPoints], sums them and
// clamps the total to [0,100].
func NewScoreBreakdown(components ...ScoreComponent) ScoreBreakdown {
	out := make([]ScoreComponent, len(components))
	total := 0
	for i, c := range components {
		if c.Points < 0 {
			c.Points = 0
		}
		if c.MaxPoints > 0 && c.Points > c.MaxPoints {
			c.Points = c.MaxPoints
		}
		out[i] = c
		total += c.Points
	}
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	return ScoreBreakdown{Total: total, Components: out}
}

// Component looks up a component by name.
func (b ScoreBreakdown) Component(name string) (ScoreComponent, bool) {
	for _, c := range b.Components {
		if c.Name == name {
			return c, true
		}
	}
	return ScoreComponent{}, false
}

// SleepQuality is the label attached to a sleep score.
type SleepQuality string

const (
	SleepQualityExcellent SleepQuality = "Excellent"
	SleepQualityGood      SleepQuality = "Good"
	SleepQualityFair      SleepQuality = "Fair"
	SleepQualityPoor      SleepQuality = "Poor"
)

// SleepScore is the Sleep Quality Scorer result.
// @Description Sleep quality score with a four-part breakdown.
type SleepScore struct {
	ScoreBreakdown
	Quality SleepQuality `json:"quality" example:"Excellent"`
}

// TrainingRecommendation is derived from the readiness total.
type TrainingRecommendation string

const (
	RecommendHighIntensity TrainingRecommendation = "high_intensity"
	RecommendModerate      TrainingRecommendation = "moderate"
	RecommendRest          TrainingRecommendation = "rest_recover"
	RecommendNoData        TrainingRecommendation = "no_data"
)

// ReadinessScore is the Readiness Scorer result. NoData distinguishes "no
// usable input" from a genuinely low score.
// @Description Recovery/readiness score with weighted components.
type ReadinessScore struct {
	Total           int                    `json:"total" example:"74"`
	SleepComponent  int                    `json:"sleep_component" example:"88"`
	HRComponent     int                    `json:"hr_component" example:"60"`
	StrainComponent int                    `json:"strain_component" example:"55"`
	NoData          bool                   `json:"no_data" example:"false"`
	Recommendation  TrainingRecommendation `json:"recommendation" example:"moderate"`
}
