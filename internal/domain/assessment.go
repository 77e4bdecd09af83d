package domain

// Default values for RiskAssessment fields. Every code path that returns an
// assessment substitutes these for missing data, so callers always receive a
// fully populated record.
const (
	DefaultRiskLevel   = "Medium"
	DefaultDescription = "Analysis completed"
	DefaultAnalysis    = "Analysis completed"
	DefaultElevation   = 50.0
	DefaultDistance    = 1000.0
)

// DefaultRecommendations returns a fresh copy of the canned recommendation
// list so callers can't mutate the shared default.
func DefaultRecommendations() []string {
	return []string{
		"Monitor weather conditions",
		"Stay informed about local alerts",
	}
}

// RiskAssessment is the structured flood risk record produced for every
// analysis request. RiskLevel is a free-form string with expected values
// Low, Medium, High, or Very High; no enum is enforced.
type RiskAssessment struct {
	RiskLevel         string   `json:"risk_level"`
	Description       string   `json:"description"`
	Recommendations   []string `json:"recommendations"`
	Elevation         float64  `json:"elevation"`
	DistanceFromWater float64  `json:"distance_from_water"`
	Analysis          string   `json:"analysis"`
}

// defaultAssessment returns a record with every field at its default.
func defaultAssessment() RiskAssessment {
	return RiskAssessment{
		RiskLevel:         DefaultRiskLevel,
		Description:       DefaultDescription,
		Recommendations:   DefaultRecommendations(),
		Elevation:         DefaultElevation,
		DistanceFromWater: DefaultDistance,
		Analysis:          DefaultAnalysis,
	}
}
